package shell

// AppState represents the current state of the application
type AppState int

const (
	// StatePicker is the cartridge picker screen
	StatePicker AppState = iota
	// StateControllers shows connected devices and slot assignments
	StateControllers
	// StatePlaying is active gameplay
	StatePlaying
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StatePicker:
		return "Picker"
	case StateControllers:
		return "Controllers"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
