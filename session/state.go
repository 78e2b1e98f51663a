package session

// State is the lifecycle state of a console session.
type State int

const (
	// Uninitialized means no core handle exists; a cartridge may or may
	// not be set.
	Uninitialized State = iota
	// Booted means the core handle is live and the render pump is running.
	Booted
	// Destroyed means the session has been closed and cannot boot again.
	Destroyed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Booted:
		return "Booted"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}
