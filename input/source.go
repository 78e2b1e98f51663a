package input

// KeyCode is a raw keyboard key code as reported by the platform layer.
// Key codes are not normalized to logical buttons; they flow through the
// KeyReceiver path and are mapped by the shell's keyboard bindings.
type KeyCode int

// State is a point-in-time snapshot of one device's raw input.
//
// For gamepads, Pressed holds the digital state of each logical button
// (d-pad buttons included) and AxisX/AxisY hold the raw left-stick axis
// values. The registry combines the two: an axis value of exactly +1
// presses the positive direction of that axis, exactly -1 presses the
// negative direction, and anything else presses neither.
//
// For keyboards, Keys lists the key codes currently held.
type State struct {
	Pressed [NumLogicalButtons]bool
	AxisX   float64
	AxisY   float64
	Keys    []KeyCode
}

// InputSource is the capability a physical device adapter provides: an
// identity and a readable input snapshot. One adapter implementation
// exists per device kind; the registry owns the edge detection, so
// adapters just report current state.
type InputSource interface {
	// Device returns the device's identity. Slot is ignored; the registry
	// tracks slot assignment itself.
	Device() PhysicalDevice

	// ReadState returns the device's current raw input state.
	ReadState() State
}

// Receiver accepts normalized press/release events for gamepad devices.
// Events are edge-triggered: one call per actual state transition, in the
// order the transitions happened, never repeated while a button is held.
type Receiver interface {
	ButtonPressed(b LogicalButton, slot int)
	ButtonUnpressed(b LogicalButton, slot int)
}

// KeyReceiver accepts raw key transitions for keyboard devices.
type KeyReceiver interface {
	KeyDown(key KeyCode, slot int)
	KeyUp(key KeyCode, slot int)
}
