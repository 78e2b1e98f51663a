package input

// DeviceID is a stable identifier for a physical input device. It must not
// change for the lifetime of a connection; a device that disconnects and
// reconnects may come back under a new ID.
type DeviceID string

// DeviceKind distinguishes the two raw input paths: gamepads are
// pre-normalized to logical buttons by their source adapter, keyboards
// deliver raw key codes to a separate receiver.
type DeviceKind int

const (
	KindKeyboard DeviceKind = iota
	KindGamepad
)

// String returns the display name of the device kind.
func (k DeviceKind) String() string {
	switch k {
	case KindKeyboard:
		return "Keyboard"
	case KindGamepad:
		return "Gamepad"
	default:
		return "Unknown"
	}
}

// BatteryUnknown is the battery level reported by devices that don't
// expose charge information.
const BatteryUnknown = -1

// PhysicalDevice is the registry's view of one connected device.
type PhysicalDevice struct {
	ID      DeviceID
	Kind    DeviceKind
	Name    string
	Battery float64 // 0..1, or BatteryUnknown

	// Slot is the assigned player slot (1..max), or SlotNone until a slot
	// is assigned or defaulted on connect.
	Slot int
}

// SlotNone marks a device with no assigned player slot.
const SlotNone = 0
