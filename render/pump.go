// Package render drives a booted core at the display cadence. On every
// tick it pulls one emulated frame into a reused buffer, converts the raw
// pixels to an image, and hands the image to the display sink.
//
// The pump has no timer of its own: the shell's fixed 60 Hz update loop is
// the tick source, and tests call Tick directly. Everything happens on
// that single cooperative context.
package render

import (
	"fmt"
	"image"
	"log"

	"github.com/SeanAsby/rustboyui/emucore"
)

// Sink receives the image produced by each successful tick. It keeps at
// most the latest image and has no history; ownership of the image moves
// to the sink on publish.
type Sink interface {
	PublishFrame(img *image.RGBA)
}

// Pump owns the frame buffer for one core handle and produces at most one
// image per tick. The pump does not own the core; the session that created
// both controls their lifetimes.
type Pump struct {
	core   emucore.Core
	format emucore.FrameFormat
	buf    []byte
	sink   Sink

	stopped bool
	ticking bool
}

// NewPump creates a pump for a booted core. The frame format is queried
// once here and fixed for the pump's lifetime, as is the frame buffer.
func NewPump(core emucore.Core, sink Sink) (*Pump, error) {
	format := core.FrameFormat()
	n := format.BufferLen()
	if n <= 0 {
		return nil, fmt.Errorf("core reported empty frame format %dx%dx%d",
			format.Width, format.Height, format.BytesPerPixel)
	}
	return &Pump{
		core:   core,
		format: format,
		buf:    make([]byte, n),
		sink:   sink,
	}, nil
}

// SetSink swaps the display sink. A nil sink discards published frames.
func (p *Pump) SetSink(sink Sink) {
	p.sink = sink
}

// Format returns the frame format the pump was built with.
func (p *Pump) Format() emucore.FrameFormat {
	return p.format
}

// Tick advances the core by one frame and publishes the converted image.
// After Stop it does nothing, even for a tick that was already scheduled.
// A tick arriving while the previous one is still being processed is
// skipped rather than queued, so there is never more than one frame in
// flight.
//
// Conversion failures skip the publish for this tick only; the sink keeps
// whatever it was holding and the cadence continues.
func (p *Pump) Tick() {
	if p.stopped || p.ticking {
		return
	}
	p.ticking = true
	defer func() { p.ticking = false }()

	if len(p.buf) != p.format.BufferLen() {
		panic(fmt.Sprintf("render: frame buffer length %d does not match format %dx%dx%d",
			len(p.buf), p.format.Width, p.format.Height, p.format.BytesPerPixel))
	}
	p.core.AdvanceFrame(p.buf)

	img := image.NewRGBA(image.Rect(0, 0, int(p.format.Width), int(p.format.Height)))
	if err := frameToImage(p.buf, p.format, img); err != nil {
		log.Printf("frame conversion failed, keeping previous frame: %v", err)
		return
	}

	if p.sink != nil {
		p.sink.PublishFrame(img)
	}
}

// Stop invalidates the pump. No frames are produced afterwards; the sink
// is left holding its last published image.
func (p *Pump) Stop() {
	p.stopped = true
}

// Stopped reports whether Stop has been called.
func (p *Pump) Stopped() bool {
	return p.stopped
}
