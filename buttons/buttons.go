// Package buttons maps the registry's logical buttons onto console-native
// joypad codes. Each console family has one total mapping table over the
// logical button domain; buttons a console doesn't have translate to
// nothing and are dropped before they reach the session.
package buttons

import "github.com/SeanAsby/rustboyui/input"

// Family tags a console family's button set.
type Family int

const (
	SNES Family = iota
	GameBoy
)

// String returns the display name of the family.
func (f Family) String() string {
	switch f {
	case SNES:
		return "SNES"
	case GameBoy:
		return "Game Boy"
	default:
		return "Unknown"
	}
}

// Code is a console-native button code: the bit position of the button in
// the console's joypad register, passed through to the core untranslated.
type Code uint8

// SNES joypad bit order (B low, R high).
const (
	SNESB Code = iota
	SNESY
	SNESSelect
	SNESStart
	SNESUp
	SNESDown
	SNESLeft
	SNESRight
	SNESA
	SNESX
	SNESL
	SNESR
)

// Game Boy joypad bit order (directions low, start high).
const (
	GBRight Code = iota
	GBLeft
	GBUp
	GBDown
	GBA
	GBB
	GBSelect
	GBStart
)

// snesMap covers the full logical domain: every logical button has an SNES
// counterpart.
var snesMap = map[input.LogicalButton]Code{
	input.ButtonLeft:          SNESLeft,
	input.ButtonUp:            SNESUp,
	input.ButtonRight:         SNESRight,
	input.ButtonDown:          SNESDown,
	input.ButtonA:             SNESA,
	input.ButtonB:             SNESB,
	input.ButtonX:             SNESX,
	input.ButtonY:             SNESY,
	input.ButtonStart:         SNESStart,
	input.ButtonSelect:        SNESSelect,
	input.ButtonLeftShoulder:  SNESL,
	input.ButtonRightShoulder: SNESR,
}

// gameBoyMap is partial: no X/Y and no shoulders on a Game Boy.
var gameBoyMap = map[input.LogicalButton]Code{
	input.ButtonLeft:   GBLeft,
	input.ButtonUp:     GBUp,
	input.ButtonRight:  GBRight,
	input.ButtonDown:   GBDown,
	input.ButtonA:      GBA,
	input.ButtonB:      GBB,
	input.ButtonStart:  GBStart,
	input.ButtonSelect: GBSelect,
}

// Translate maps a logical button to a console-native code. The second
// return is false when the family has no such button; the caller drops the
// event in that case. Translate is pure and total over the logical domain.
func Translate(f Family, b input.LogicalButton) (Code, bool) {
	var table map[input.LogicalButton]Code
	switch f {
	case SNES:
		table = snesMap
	case GameBoy:
		table = gameBoyMap
	default:
		return 0, false
	}
	code, ok := table[b]
	return code, ok
}
