package render

import (
	"fmt"
	"image"

	"github.com/SeanAsby/rustboyui/emucore"
)

// Frame bytes are big-endian with no alpha channel, in sRGB. Three pixel
// strides are understood: 2 (RGB555, SNES), 3 (RGB888) and 4 (RGBX, the
// fourth byte ignored).

// frameToImage interprets a raw frame buffer as an RGBA image. A short
// buffer or an unknown stride fails the conversion; the pump treats that
// as a skipped tick, never as fatal.
func frameToImage(buf []byte, format emucore.FrameFormat, dst *image.RGBA) error {
	need := format.BufferLen()
	if len(buf) < need {
		return fmt.Errorf("frame buffer too short: have %d, need %d", len(buf), need)
	}

	switch format.BytesPerPixel {
	case 2:
		convertRGB555(buf[:need], dst.Pix)
	case 3:
		convertRGB888(buf[:need], dst.Pix)
	case 4:
		convertRGBX(buf[:need], dst.Pix)
	default:
		return fmt.Errorf("unsupported pixel stride: %d bytes per pixel", format.BytesPerPixel)
	}
	return nil
}

// convertRGB555 expands big-endian 0RRRRRGG GGGBBBBB pixels to RGBA.
// The low 5-bit channels are widened to 8 bits by bit replication.
func convertRGB555(src, dst []byte) {
	for i, j := 0, 0; i+1 < len(src); i, j = i+2, j+4 {
		v := uint16(src[i])<<8 | uint16(src[i+1])
		r := uint8(v >> 10 & 0x1f)
		g := uint8(v >> 5 & 0x1f)
		b := uint8(v & 0x1f)
		dst[j] = r<<3 | r>>2
		dst[j+1] = g<<3 | g>>2
		dst[j+2] = b<<3 | b>>2
		dst[j+3] = 0xff
	}
}

func convertRGB888(src, dst []byte) {
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xff
	}
}

func convertRGBX(src, dst []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		dst[i] = src[i]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+2]
		dst[i+3] = 0xff
	}
}
