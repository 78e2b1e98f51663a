package input

// LogicalButton is the device-agnostic button vocabulary produced by the
// registry. Console families map a subset of these onto their native
// joypad codes; buttons a console doesn't have are dropped at translation.
type LogicalButton int

const (
	ButtonLeft LogicalButton = iota
	ButtonUp
	ButtonRight
	ButtonDown
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonStart
	ButtonSelect
	ButtonLeftShoulder
	ButtonRightShoulder

	// NumLogicalButtons is the size of the logical button domain.
	NumLogicalButtons
)

// String returns the display name of the button.
func (b LogicalButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonUp:
		return "Up"
	case ButtonRight:
		return "Right"
	case ButtonDown:
		return "Down"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonStart:
		return "Start"
	case ButtonSelect:
		return "Select"
	case ButtonLeftShoulder:
		return "L"
	case ButtonRightShoulder:
		return "R"
	default:
		return "Unknown"
	}
}
