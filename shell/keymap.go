package shell

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SeanAsby/rustboyui/input"
)

// keyNameMap maps short key name strings to ebiten.Key values. Used to
// parse keyboard binding overrides from the config file.
var keyNameMap = map[string]ebiten.Key{
	"A":          ebiten.KeyA,
	"B":          ebiten.KeyB,
	"C":          ebiten.KeyC,
	"D":          ebiten.KeyD,
	"E":          ebiten.KeyE,
	"F":          ebiten.KeyF,
	"G":          ebiten.KeyG,
	"H":          ebiten.KeyH,
	"I":          ebiten.KeyI,
	"J":          ebiten.KeyJ,
	"K":          ebiten.KeyK,
	"L":          ebiten.KeyL,
	"M":          ebiten.KeyM,
	"N":          ebiten.KeyN,
	"O":          ebiten.KeyO,
	"P":          ebiten.KeyP,
	"Q":          ebiten.KeyQ,
	"R":          ebiten.KeyR,
	"S":          ebiten.KeyS,
	"T":          ebiten.KeyT,
	"U":          ebiten.KeyU,
	"V":          ebiten.KeyV,
	"W":          ebiten.KeyW,
	"X":          ebiten.KeyX,
	"Y":          ebiten.KeyY,
	"Z":          ebiten.KeyZ,
	"0":          ebiten.Key0,
	"1":          ebiten.Key1,
	"2":          ebiten.Key2,
	"3":          ebiten.Key3,
	"4":          ebiten.Key4,
	"5":          ebiten.Key5,
	"6":          ebiten.Key6,
	"7":          ebiten.Key7,
	"8":          ebiten.Key8,
	"9":          ebiten.Key9,
	"Enter":      ebiten.KeyEnter,
	"Backspace":  ebiten.KeyBackspace,
	"Space":      ebiten.KeySpace,
	"Escape":     ebiten.KeyEscape,
	"Tab":        ebiten.KeyTab,
	"F11":        ebiten.KeyF11,
	"Shift":      ebiten.KeyShift,
	"Comma":      ebiten.KeyComma,
	"Period":     ebiten.KeyPeriod,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"[":          ebiten.KeyLeftBracket,
	"]":          ebiten.KeyRightBracket,
}

// reservedKeys are keyboard keys the shell uses for non-gameplay functions.
// These cannot be bound to console buttons.
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape: true, // Back to picker
	ebiten.KeyTab:    true, // Controller picker
	ebiten.KeyF11:    true, // Fullscreen
}

// ParseKey converts a key name string to an ebiten.Key.
// Returns the key and true if the name is valid, or 0 and false otherwise.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNameMap[name]
	return k, ok
}

// logicalByName maps binding names (as stored in config overrides) to
// logical buttons.
var logicalByName = map[string]input.LogicalButton{}

func init() {
	for b := input.LogicalButton(0); b < input.NumLogicalButtons; b++ {
		logicalByName[b.String()] = b
	}
}

// defaultBindings is the built-in keyboard layout: arrows for the d-pad,
// the common Z/X/A/S cluster for face buttons, Q/W for shoulders.
var defaultBindings = map[ebiten.Key]input.LogicalButton{
	ebiten.KeyArrowUp:    input.ButtonUp,
	ebiten.KeyArrowDown:  input.ButtonDown,
	ebiten.KeyArrowLeft:  input.ButtonLeft,
	ebiten.KeyArrowRight: input.ButtonRight,
	ebiten.KeyX:          input.ButtonA,
	ebiten.KeyZ:          input.ButtonB,
	ebiten.KeyS:          input.ButtonX,
	ebiten.KeyA:          input.ButtonY,
	ebiten.KeyEnter:      input.ButtonStart,
	ebiten.KeyBackspace:  input.ButtonSelect,
	ebiten.KeyQ:          input.ButtonLeftShoulder,
	ebiten.KeyW:          input.ButtonRightShoulder,
}

// Keymap is the keyboard side of the input path. The registry delivers raw
// key transitions here (keyboards bypass the logical-button normalization),
// and the keymap turns bound keys into logical presses on the same receiver
// the gamepads use. Unbound keys are dropped.
type Keymap struct {
	bindings map[input.KeyCode]input.LogicalButton
	receiver input.Receiver
}

// NewKeymap builds a keymap from the default layout plus config overrides.
// Overrides are keyed by logical button name ("A", "Start", ...) with key
// name values; an override naming a reserved or unknown key is ignored.
func NewKeymap(overrides map[string]string) *Keymap {
	bindings := make(map[input.KeyCode]input.LogicalButton, len(defaultBindings))

	overridden := make(map[input.LogicalButton]ebiten.Key)
	for name, keyName := range overrides {
		b, ok := logicalByName[name]
		if !ok {
			continue
		}
		k, ok := ParseKey(keyName)
		if !ok || reservedKeys[k] {
			continue
		}
		overridden[b] = k
	}

	for key, b := range defaultBindings {
		if _, ok := overridden[b]; ok {
			continue
		}
		bindings[input.KeyCode(key)] = b
	}
	for b, key := range overridden {
		bindings[input.KeyCode(key)] = b
	}

	return &Keymap{bindings: bindings}
}

// SetReceiver sets where bound key presses go. A nil receiver drops them.
func (m *Keymap) SetReceiver(r input.Receiver) {
	m.receiver = r
}

// KeyDown implements input.KeyReceiver.
func (m *Keymap) KeyDown(key input.KeyCode, slot int) {
	b, ok := m.bindings[key]
	if !ok || m.receiver == nil {
		return
	}
	m.receiver.ButtonPressed(b, slot)
}

// KeyUp implements input.KeyReceiver.
func (m *Keymap) KeyUp(key input.KeyCode, slot int) {
	b, ok := m.bindings[key]
	if !ok || m.receiver == nil {
		return
	}
	m.receiver.ButtonUnpressed(b, slot)
}
