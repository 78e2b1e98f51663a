package render

import (
	"image"
	"testing"

	"github.com/SeanAsby/rustboyui/emucore"
)

func newDst(format emucore.FrameFormat) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, int(format.Width), int(format.Height)))
}

func TestFrameToImageRGB555(t *testing.T) {
	format := emucore.FrameFormat{Width: 2, Height: 1, BytesPerPixel: 2}

	// Big-endian 0RRRRRGG GGGBBBBB. First pixel: max red. Second: max blue.
	buf := []byte{
		0x7C, 0x00, // R=31 G=0 B=0
		0x00, 0x1F, // R=0 G=0 B=31
	}

	dst := newDst(format)
	if err := frameToImage(buf, format, dst); err != nil {
		t.Fatalf("frameToImage failed: %v", err)
	}

	// 5-bit channels widen by bit replication: 31 -> 255
	wantPix := []byte{
		0xFF, 0x00, 0x00, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
	}
	for i, want := range wantPix {
		if dst.Pix[i] != want {
			t.Errorf("Pix[%d] = %#02x, want %#02x", i, dst.Pix[i], want)
		}
	}
}

func TestFrameToImageRGB555MidtoneWidening(t *testing.T) {
	format := emucore.FrameFormat{Width: 1, Height: 1, BytesPerPixel: 2}

	// G=16 (0b10000): widened to 10000100 = 0x84
	buf := []byte{0x02, 0x00}

	dst := newDst(format)
	if err := frameToImage(buf, format, dst); err != nil {
		t.Fatalf("frameToImage failed: %v", err)
	}
	if dst.Pix[1] != 0x84 {
		t.Errorf("green channel = %#02x, want 0x84 (bit-replicated 16)", dst.Pix[1])
	}
}

func TestFrameToImageRGB888(t *testing.T) {
	format := emucore.FrameFormat{Width: 2, Height: 1, BytesPerPixel: 3}
	buf := []byte{
		0x12, 0x34, 0x56,
		0xAB, 0xCD, 0xEF,
	}

	dst := newDst(format)
	if err := frameToImage(buf, format, dst); err != nil {
		t.Fatalf("frameToImage failed: %v", err)
	}

	wantPix := []byte{
		0x12, 0x34, 0x56, 0xFF,
		0xAB, 0xCD, 0xEF, 0xFF,
	}
	for i, want := range wantPix {
		if dst.Pix[i] != want {
			t.Errorf("Pix[%d] = %#02x, want %#02x", i, dst.Pix[i], want)
		}
	}
}

func TestFrameToImageRGBXIgnoresFourthByte(t *testing.T) {
	format := emucore.FrameFormat{Width: 1, Height: 1, BytesPerPixel: 4}
	buf := []byte{0x10, 0x20, 0x30, 0x77} // fourth byte is padding, not alpha

	dst := newDst(format)
	if err := frameToImage(buf, format, dst); err != nil {
		t.Fatalf("frameToImage failed: %v", err)
	}

	wantPix := []byte{0x10, 0x20, 0x30, 0xFF}
	for i, want := range wantPix {
		if dst.Pix[i] != want {
			t.Errorf("Pix[%d] = %#02x, want %#02x", i, dst.Pix[i], want)
		}
	}
}

func TestFrameToImageShortBuffer(t *testing.T) {
	format := emucore.FrameFormat{Width: 4, Height: 4, BytesPerPixel: 2}
	buf := make([]byte, format.BufferLen()-1)

	dst := newDst(format)
	if err := frameToImage(buf, format, dst); err == nil {
		t.Error("Expected error for short buffer")
	}
}

func TestFrameToImageUnsupportedStride(t *testing.T) {
	format := emucore.FrameFormat{Width: 2, Height: 2, BytesPerPixel: 5}
	buf := make([]byte, format.BufferLen())

	dst := newDst(format)
	if err := frameToImage(buf, format, dst); err == nil {
		t.Error("Expected error for unsupported stride")
	}
}
