package shell

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/SeanAsby/rustboyui/input"
	"github.com/SeanAsby/rustboyui/shell/style"
)

// ControllerScreen lists connected devices with their player slot
// assignments and lets the user rotate each device through the slots.
type ControllerScreen struct {
	callback screenCallback
	registry *input.Registry
}

// NewControllerScreen creates the controller assignment screen
func NewControllerScreen(callback screenCallback, registry *input.Registry) *ControllerScreen {
	return &ControllerScreen{callback: callback, registry: registry}
}

// Build creates the controller screen UI
func (s *ControllerScreen) Build() *widget.Container {
	rootContainer := style.ScreenContainer()
	centerContent := style.CenteredContainer(style.DefaultSpacing)

	centerContent.AddChild(style.Label("Controllers"))
	centerContent.AddChild(style.SecondaryLabel(fmt.Sprintf("Player slots: %d", s.registry.MaxSlots())))

	devices := s.registry.Devices()
	if len(devices) == 0 {
		centerContent.AddChild(style.SecondaryLabel("No input devices connected"))
	}

	for _, dev := range devices {
		row := style.RowContainer(style.DefaultSpacing)
		row.AddChild(style.Label(deviceLabel(dev)))

		id := dev.ID
		row.AddChild(style.TextButton("Rotate Slot", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
			s.registry.RotateSlot(id)
			s.callback.RequestRebuild()
		}))
		centerContent.AddChild(row)
	}

	centerContent.AddChild(style.TextButton("Back", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.SwitchToPicker()
	}))

	rootContainer.AddChild(centerContent)
	return rootContainer
}

// deviceLabel formats one device row: name, assigned slot, and battery
// charge when the platform reports one.
func deviceLabel(dev input.PhysicalDevice) string {
	label := fmt.Sprintf("%s - Player %d", dev.Name, dev.Slot)
	if dev.Battery != input.BatteryUnknown {
		// Battery is a 0..1 charge level
		label += fmt.Sprintf(" (battery %.0f%%)", dev.Battery*100)
	}
	return label
}
