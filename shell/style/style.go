// Package style holds the shell's theme: palette, font, spacing, and a
// handful of widget constructors shared by the picker screens.
package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Palette
var (
	Background        = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Dark blue-gray
	Surface           = color.NRGBA{0x25, 0x25, 0x3a, 0xff} // Slightly lighter
	Primary           = color.NRGBA{0x4a, 0x4a, 0x8a, 0xff} // Muted purple
	PrimaryHover      = color.NRGBA{0x5a, 0x5a, 0x9a, 0xff}
	Text              = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary     = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
	Border            = color.NRGBA{0x3a, 0x3a, 0x5a, 0xff}
	OverlayBackground = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Alpha applied per use
)

const fontSize = 14.0

// dpiScale is the device scale factor set from Layout
var dpiScale = 1.0

// Spacing values in physical pixels, recalculated when the DPI changes
var (
	DefaultSpacing      = 12
	SmallSpacing        = 6
	ButtonPaddingMedium = 10
	OverlayPadding      = 10
	OverlayMargin       = 16
)

// Px converts a logical pixel value to physical pixels.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// SetDPIScale sets the DPI scale factor and recalculates the spacing vars.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	DefaultSpacing = Px(12)
	SmallSpacing = Px(6)
	ButtonPaddingMedium = Px(10)
	OverlayPadding = Px(10)
	OverlayMargin = Px(16)

	refreshFontFace()
}

// sharedFontSource is the cached TrueType font source
var sharedFontSource *text.GoTextFaceSource

// fontFace is the cached font face
var fontFace text.Face

func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// refreshFontFace replaces the cached face in place. Existing widgets hold
// &fontFace (a pointer to the package var), so setting fontFace = nil would
// leave them with a nil face until the UI rebuild completes.
func refreshFontFace() {
	source := loadFontSource()
	if source != nil {
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   fontSize * dpiScale,
		}
	}
}

// FontFace returns the font face to use for UI text
func FontFace() *text.Face {
	if fontFace == nil {
		refreshFontFace()
	}
	return &fontFace
}

// ButtonImage creates the standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a prominent button image set
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
