// Package input discovers physical input devices, normalizes their raw
// state into logical button transitions, and fans those transitions out to
// the active console session's receiver.
//
// Everything here runs on the host's single update context: connect and
// disconnect notifications, polling, and dispatch are never concurrent
// with each other, so the registry keeps no locks.
package input

// Registry tracks connected devices, their player slots, and their held
// input state. It performs edge detection against each device's previous
// snapshot so receivers only ever see actual press/release transitions.
type Registry struct {
	maxSlots int
	devices  []*deviceEntry

	// Receivers are non-owning references set by the shell; they are looked
	// up at dispatch time so teardown order doesn't matter.
	receiver    Receiver
	keyReceiver KeyReceiver
}

type deviceEntry struct {
	info PhysicalDevice
	src  InputSource

	held     [NumLogicalButtons]bool
	keysHeld map[KeyCode]bool
}

// NewRegistry creates a registry that wraps rotation at maxSlots players.
func NewRegistry(maxSlots int) *Registry {
	if maxSlots < 1 {
		maxSlots = 1
	}
	return &Registry{maxSlots: maxSlots}
}

// SetReceiver sets the receiver for gamepad button events. A nil receiver
// drops events.
func (r *Registry) SetReceiver(recv Receiver) {
	r.receiver = recv
}

// SetKeyReceiver sets the receiver for raw keyboard events. A nil receiver
// drops events.
func (r *Registry) SetKeyReceiver(recv KeyReceiver) {
	r.keyReceiver = recv
}

// SetMaxSlots updates the slot wrap point when the active console family
// changes. Existing assignments are kept; slots beyond the new maximum are
// simply ignored by the session until rotated back into range.
func (r *Registry) SetMaxSlots(n int) {
	if n < 1 {
		n = 1
	}
	r.maxSlots = n
}

// MaxSlots returns the current slot wrap point.
func (r *Registry) MaxSlots() int {
	return r.maxSlots
}

// Connect registers a device source. The device is assigned the lowest
// free player slot, or slot 1 when every slot is taken (two devices may
// share a slot; the last writer's input wins at the core).
func (r *Registry) Connect(src InputSource) {
	info := src.Device()
	info.Slot = r.defaultSlot()

	r.devices = append(r.devices, &deviceEntry{
		info:     info,
		src:      src,
		keysHeld: make(map[KeyCode]bool),
	})
}

// Disconnect removes the device with the given ID. Any buttons or keys the
// device held are released to the receivers first, so a disconnect mid-press
// never leaves a stuck input.
func (r *Registry) Disconnect(id DeviceID) {
	for i, e := range r.devices {
		if e.info.ID != id {
			continue
		}

		r.releaseHeld(e)
		r.devices = append(r.devices[:i], r.devices[i+1:]...)
		return
	}
}

// RotateSlot advances a device's player slot by one, wrapping at the
// registry's maximum. An unassigned device rotates to slot 1. Anything the
// device holds is released on the old slot first; a press that straddled
// the rotation would otherwise leave the old slot's button held at the
// core forever, since its release would arrive on the new slot.
func (r *Registry) RotateSlot(id DeviceID) {
	e := r.lookup(id)
	if e == nil {
		return
	}
	r.releaseHeld(e)
	if e.info.Slot == SlotNone {
		e.info.Slot = 1
		return
	}
	e.info.Slot = e.info.Slot%r.maxSlots + 1
}

// releaseHeld synthesizes release events for everything the device
// currently holds, attributed to its current slot, and clears the held
// state.
func (r *Registry) releaseHeld(e *deviceEntry) {
	for b := LogicalButton(0); b < NumLogicalButtons; b++ {
		if !e.held[b] {
			continue
		}
		e.held[b] = false
		if r.receiver != nil {
			r.receiver.ButtonUnpressed(b, e.info.Slot)
		}
	}
	for key, held := range e.keysHeld {
		if !held {
			continue
		}
		delete(e.keysHeld, key)
		if r.keyReceiver != nil {
			r.keyReceiver.KeyUp(key, e.info.Slot)
		}
	}
}

// Devices returns a snapshot of the connected devices for the shell's
// controller picker.
func (r *Registry) Devices() []PhysicalDevice {
	out := make([]PhysicalDevice, len(r.devices))
	for i, e := range r.devices {
		out[i] = e.info
	}
	return out
}

// Poll reads every device's current state, compares it with the previous
// snapshot, and dispatches one event per transition. Called once per
// update tick from the shell.
func (r *Registry) Poll() {
	for _, e := range r.devices {
		state := e.src.ReadState()
		e.info.Battery = e.src.Device().Battery

		if e.info.Kind == KindKeyboard {
			r.pollKeyboard(e, state)
		} else {
			r.pollGamepad(e, state)
		}
	}
}

func (r *Registry) pollGamepad(e *deviceEntry, state State) {
	for b := LogicalButton(0); b < NumLogicalButtons; b++ {
		pressed := effectivePressed(state, b)
		if pressed == e.held[b] {
			continue
		}
		e.held[b] = pressed
		if r.receiver == nil {
			continue
		}
		if pressed {
			r.receiver.ButtonPressed(b, e.info.Slot)
		} else {
			r.receiver.ButtonUnpressed(b, e.info.Slot)
		}
	}
}

func (r *Registry) pollKeyboard(e *deviceEntry, state State) {
	now := make(map[KeyCode]bool, len(state.Keys))
	for _, k := range state.Keys {
		now[k] = true
	}

	for k := range now {
		if !e.keysHeld[k] {
			e.keysHeld[k] = true
			if r.keyReceiver != nil {
				r.keyReceiver.KeyDown(k, e.info.Slot)
			}
		}
	}
	for k, held := range e.keysHeld {
		if held && !now[k] {
			delete(e.keysHeld, k)
			if r.keyReceiver != nil {
				r.keyReceiver.KeyUp(k, e.info.Slot)
			}
		}
	}
}

// effectivePressed combines a button's digital state with the axis
// contribution for the four directions. The axis classification is
// three-way: exactly +1 presses the positive direction of the axis
// (right, up), exactly -1 presses the negative direction (left, down),
// and any other value presses neither. When the axis leaves a pole the
// direction it was holding reads unpressed again, which is what lets the
// registry synthesize the release.
func effectivePressed(state State, b LogicalButton) bool {
	pressed := state.Pressed[b]
	switch b {
	case ButtonRight:
		pressed = pressed || state.AxisX == 1
	case ButtonLeft:
		pressed = pressed || state.AxisX == -1
	case ButtonUp:
		pressed = pressed || state.AxisY == 1
	case ButtonDown:
		pressed = pressed || state.AxisY == -1
	}
	return pressed
}

// defaultSlot picks the lowest slot in 1..maxSlots no device currently
// holds, falling back to slot 1 when everything is taken.
func (r *Registry) defaultSlot() int {
	taken := make(map[int]bool, len(r.devices))
	for _, e := range r.devices {
		taken[e.info.Slot] = true
	}
	for s := 1; s <= r.maxSlots; s++ {
		if !taken[s] {
			return s
		}
	}
	return 1
}

func (r *Registry) lookup(id DeviceID) *deviceEntry {
	for _, e := range r.devices {
		if e.info.ID == id {
			return e
		}
	}
	return nil
}
