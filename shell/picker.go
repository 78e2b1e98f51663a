package shell

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/SeanAsby/rustboyui/buttons"
	"github.com/SeanAsby/rustboyui/shell/style"
)

// screenCallback is implemented by App and gives screens access to
// state transitions without holding the whole App.
type screenCallback interface {
	RequestCartridge(family buttons.Family)
	ResumePlaying()
	SwitchToPicker()
	SwitchToControllers()
	SetAutoBoot(enabled bool)
	AutoBoot() bool
	CanResume() bool
	CanStart() bool
	StartCartridge()
	RequestRebuild()
	Exit()
}

// PickerScreen is the landing screen: pick a console family and load a
// cartridge, or jump to the controller list.
type PickerScreen struct {
	callback screenCallback

	// Most recent load/boot failure, shown under the title until the next
	// successful load.
	bootError string
}

// NewPickerScreen creates the cartridge picker screen
func NewPickerScreen(callback screenCallback) *PickerScreen {
	return &PickerScreen{callback: callback}
}

// SetBootError sets the failure message shown on the picker. An empty
// string clears it.
func (s *PickerScreen) SetBootError(msg string) {
	s.bootError = msg
}

// Build creates the picker UI
func (s *PickerScreen) Build() *widget.Container {
	rootContainer := style.ScreenContainer()
	centerContent := style.CenteredContainer(style.DefaultSpacing)

	centerContent.AddChild(style.Label("Super Rust Boy"))
	centerContent.AddChild(style.SecondaryLabel("Choose a cartridge to play"))

	if s.bootError != "" {
		centerContent.AddChild(style.SecondaryLabel(s.bootError))
	}

	loadRow := style.RowContainer(style.DefaultSpacing)
	loadRow.AddChild(style.PrimaryTextButton("Load SNES Cartridge", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.RequestCartridge(buttons.SNES)
	}))
	loadRow.AddChild(style.PrimaryTextButton("Load Game Boy Cartridge", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.RequestCartridge(buttons.GameBoy)
	}))
	centerContent.AddChild(loadRow)

	// With boot-on-load off, a picked cartridge sits loaded but unbooted;
	// this is the button that actually starts it.
	if s.callback.CanStart() {
		centerContent.AddChild(style.PrimaryTextButton("Start", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
			s.callback.StartCartridge()
		}))
	}

	if s.callback.CanResume() {
		centerContent.AddChild(style.TextButton("Resume", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
			s.callback.ResumePlaying()
		}))
	}

	autoBootLabel := fmt.Sprintf("Boot on load: %s", onOff(s.callback.AutoBoot()))
	centerContent.AddChild(style.TextButton(autoBootLabel, style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.SetAutoBoot(!s.callback.AutoBoot())
		s.callback.RequestRebuild()
	}))

	centerContent.AddChild(style.TextButton("Controllers", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.SwitchToControllers()
	}))

	centerContent.AddChild(style.TextButton("Quit", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.Exit()
	}))

	rootContainer.AddChild(centerContent)
	return rootContainer
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
