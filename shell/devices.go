package shell

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SeanAsby/rustboyui/input"
)

// gamepadSource adapts one ebiten gamepad to the registry's InputSource
// capability. Buttons are read through the standard layout so the logical
// mapping is stable across controller brands.
type gamepadSource struct {
	id ebiten.GamepadID
}

// standardButtons maps logical buttons to their standard-layout positions.
var standardButtons = [...]struct {
	logical input.LogicalButton
	pad     ebiten.StandardGamepadButton
}{
	{input.ButtonUp, ebiten.StandardGamepadButtonLeftTop},
	{input.ButtonDown, ebiten.StandardGamepadButtonLeftBottom},
	{input.ButtonLeft, ebiten.StandardGamepadButtonLeftLeft},
	{input.ButtonRight, ebiten.StandardGamepadButtonLeftRight},
	{input.ButtonA, ebiten.StandardGamepadButtonRightBottom},
	{input.ButtonB, ebiten.StandardGamepadButtonRightRight},
	{input.ButtonX, ebiten.StandardGamepadButtonRightLeft},
	{input.ButtonY, ebiten.StandardGamepadButtonRightTop},
	{input.ButtonLeftShoulder, ebiten.StandardGamepadButtonFrontTopLeft},
	{input.ButtonRightShoulder, ebiten.StandardGamepadButtonFrontTopRight},
	{input.ButtonStart, ebiten.StandardGamepadButtonCenterRight},
	{input.ButtonSelect, ebiten.StandardGamepadButtonCenterLeft},
}

func (g *gamepadSource) Device() input.PhysicalDevice {
	return input.PhysicalDevice{
		ID:      input.DeviceID(fmt.Sprintf("gamepad-%d", g.id)),
		Kind:    input.KindGamepad,
		Name:    ebiten.GamepadName(g.id),
		Battery: input.BatteryUnknown, // ebiten doesn't expose charge level
	}
}

func (g *gamepadSource) ReadState() input.State {
	var st input.State
	if !ebiten.IsStandardGamepadLayoutAvailable(g.id) {
		return st
	}

	for _, m := range standardButtons {
		if ebiten.IsStandardGamepadButtonPressed(g.id, m.pad) {
			st.Pressed[m.logical] = true
		}
	}

	// Left stick follows the d-pad. The registry's three-way rule only
	// treats full deflection (exactly +/-1) as a press, matching how the
	// consoles' own d-pads report. Vertical is negated: the registry's
	// convention is up-positive, ebiten's is down-positive.
	st.AxisX = ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	st.AxisY = -ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickVertical)

	return st
}

// keyboardSource adapts the host keyboard. Key codes are reported raw;
// the registry routes them to the KeyReceiver path rather than the
// logical-button path.
type keyboardSource struct {
	scratch []ebiten.Key
}

func (k *keyboardSource) Device() input.PhysicalDevice {
	return input.PhysicalDevice{
		ID:      "keyboard",
		Kind:    input.KindKeyboard,
		Name:    "Keyboard",
		Battery: input.BatteryUnknown,
	}
}

func (k *keyboardSource) ReadState() input.State {
	var st input.State
	k.scratch = inpututil.AppendPressedKeys(k.scratch[:0])
	for _, key := range k.scratch {
		st.Keys = append(st.Keys, input.KeyCode(key))
	}
	return st
}

// deviceScanner watches ebiten's gamepad hot-plug notifications and keeps
// the registry's device list in sync. The host keyboard is registered once
// at construction since it has no connect event of its own.
type deviceScanner struct {
	registry *input.Registry
	gamepads map[ebiten.GamepadID]input.DeviceID
	notify   func(msg string)

	scratch []ebiten.GamepadID
}

func newDeviceScanner(registry *input.Registry, notify func(string)) *deviceScanner {
	s := &deviceScanner{
		registry: registry,
		gamepads: make(map[ebiten.GamepadID]input.DeviceID),
		notify:   notify,
	}
	s.registry.Connect(&keyboardSource{})

	// Gamepads already attached at startup don't fire a just-connected
	// notification, so pick them up here.
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		s.connect(id)
	}
	return s
}

// Scan processes connect/disconnect transitions. Called once per update
// tick, before the registry poll.
func (s *deviceScanner) Scan() {
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(s.scratch[:0]) {
		s.connect(id)
	}

	for id, devID := range s.gamepads {
		if inpututil.IsGamepadJustDisconnected(id) {
			s.registry.Disconnect(devID)
			delete(s.gamepads, id)
			if s.notify != nil {
				s.notify("Controller disconnected")
			}
		}
	}
}

func (s *deviceScanner) connect(id ebiten.GamepadID) {
	if _, ok := s.gamepads[id]; ok {
		return
	}
	src := &gamepadSource{id: id}
	s.gamepads[id] = src.Device().ID
	s.registry.Connect(src)
	if s.notify != nil {
		s.notify(fmt.Sprintf("Controller connected: %s", ebiten.GamepadName(id)))
	}
}
