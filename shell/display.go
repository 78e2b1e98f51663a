package shell

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Display receives converted frames from the render pump and draws the
// latest one with aspect-ratio-preserving scaling. Frame ownership passes
// to the display on publish; each tick produces a fresh image so there is
// no aliasing with the pump's working buffer.
type Display struct {
	frame     *image.RGBA
	dirty     bool
	offscreen *ebiten.Image
	drawOpts  ebiten.DrawImageOptions
}

func NewDisplay() *Display {
	return &Display{}
}

// PublishFrame implements render.Sink.
func (d *Display) PublishFrame(img *image.RGBA) {
	d.frame = img
	d.dirty = true
}

// Clear drops the held frame so the next Draw paints nothing. Used when a
// session is torn down.
func (d *Display) Clear() {
	d.frame = nil
	d.dirty = false
	d.offscreen = nil
}

// HasFrame reports whether a frame has been published since the last Clear.
func (d *Display) HasFrame() bool {
	return d.frame != nil
}

// Draw renders the most recent frame centered on screen at the largest
// integer-free scale that preserves aspect ratio.
func (d *Display) Draw(screen *ebiten.Image) {
	if d.frame == nil {
		return
	}

	nativeW := d.frame.Rect.Dx()
	nativeH := d.frame.Rect.Dy()
	if nativeW == 0 || nativeH == 0 {
		return
	}

	if d.offscreen == nil || d.offscreen.Bounds().Dx() != nativeW || d.offscreen.Bounds().Dy() != nativeH {
		d.offscreen = ebiten.NewImage(nativeW, nativeH)
		d.dirty = true
	}
	if d.dirty {
		d.offscreen.WritePixels(d.frame.Pix)
		d.dirty = false
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(screenW) / float64(nativeW)
	scaleY := float64(screenH) / float64(nativeH)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	offsetX := (float64(screenW) - float64(nativeW)*scale) / 2
	offsetY := (float64(screenH) - float64(nativeH)*scale) / 2

	d.drawOpts = ebiten.DrawImageOptions{}
	d.drawOpts.GeoM.Scale(scale, scale)
	d.drawOpts.GeoM.Translate(offsetX, offsetY)
	d.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(d.offscreen, &d.drawOpts)
}
