package shell

import (
	"testing"

	"github.com/SeanAsby/rustboyui/buttons"
	"github.com/SeanAsby/rustboyui/emucore"
	"github.com/SeanAsby/rustboyui/input"
	"github.com/SeanAsby/rustboyui/session"
	"github.com/SeanAsby/rustboyui/storage"
)

// stubCore is a minimal core handle for shell flow tests
type stubCore struct {
	format emucore.FrameFormat
}

func (c *stubCore) FrameFormat() emucore.FrameFormat       { return c.format }
func (c *stubCore) AdvanceFrame(buf []byte)                {}
func (c *stubCore) PressButton(code uint8, player uint8)   {}
func (c *stubCore) ReleaseButton(code uint8, player uint8) {}
func (c *stubCore) Destroy()                               {}

type stubFactory struct {
	info emucore.SystemInfo
}

func (f *stubFactory) SystemInfo() emucore.SystemInfo { return f.info }

func (f *stubFactory) Create(cartridgePath, savePath string) (emucore.Core, error) {
	return &stubCore{format: emucore.FrameFormat{Width: 160, Height: 144, BytesPerPixel: 3}}, nil
}

func newStubFactory() *stubFactory {
	return &stubFactory{info: emucore.SystemInfo{
		Name:        "Test Console",
		Extensions:  []string{".gb"},
		Players:     2,
		SaveFileExt: ".sav",
	}}
}

// newTestApp builds an app with just the pieces the start flow touches,
// skipping the window, scanner, and screens that need a running ebiten
// context.
func newTestApp() *App {
	app := &App{
		state:   StatePicker,
		config:  storage.DefaultConfig(),
		display: NewDisplay(),
	}
	app.pickerScreen = NewPickerScreen(app)
	return app
}

func TestStartCartridgeBootsLoadedSession(t *testing.T) {
	app := newTestApp()
	app.config.AutoBoot = false

	// Mirrors the pick path with boot-on-load off: the cartridge is set
	// but the session stays unbooted, waiting for an explicit start.
	app.session = session.New(buttons.GameBoy, newStubFactory())
	app.session.SetAutoBoot(false)
	app.session.SetDisplaySink(app.display)
	if err := app.session.SetCartridge("/carts/game.gb"); err != nil {
		t.Fatalf("SetCartridge() error: %v", err)
	}

	if app.session.State() != session.Uninitialized {
		t.Fatalf("session state = %v after pick with auto-boot off, want Uninitialized", app.session.State())
	}
	if !app.CanStart() {
		t.Fatal("CanStart() = false with a loaded unbooted cartridge, want true")
	}
	if app.CanResume() {
		t.Fatal("CanResume() = true before boot, want false")
	}

	app.StartCartridge()

	if app.session.State() != session.Booted {
		t.Errorf("session state = %v after StartCartridge, want Booted", app.session.State())
	}
	if app.state != StatePlaying {
		t.Errorf("app state = %v after StartCartridge, want Playing", app.state)
	}
	if app.CanStart() {
		t.Error("CanStart() = true after boot, want false")
	}
	if !app.CanResume() {
		t.Error("CanResume() = false after boot, want true")
	}

	app.session.Close()
}

func TestStartCartridgeRequiresLoadedSession(t *testing.T) {
	app := newTestApp()

	app.StartCartridge() // no session at all
	if app.state != StatePicker {
		t.Errorf("app state = %v after StartCartridge with no session, want Picker", app.state)
	}

	// A session with no cartridge can't start either
	app.session = session.New(buttons.GameBoy, newStubFactory())
	if app.CanStart() {
		t.Error("CanStart() = true with no cartridge set, want false")
	}
	app.StartCartridge()
	if app.state != StatePicker || app.session.State() != session.Uninitialized {
		t.Errorf("start with no cartridge changed state: app=%v session=%v", app.state, app.session.State())
	}

	app.session.Close()
}

func TestDeviceLabel(t *testing.T) {
	tests := []struct {
		name     string
		device   input.PhysicalDevice
		expected string
	}{
		{
			"battery unknown",
			input.PhysicalDevice{Name: "Test Pad", Slot: 1, Battery: input.BatteryUnknown},
			"Test Pad - Player 1",
		},
		{
			"half charge",
			input.PhysicalDevice{Name: "Test Pad", Slot: 2, Battery: 0.5},
			"Test Pad - Player 2 (battery 50%)",
		},
		{
			"full charge",
			input.PhysicalDevice{Name: "Test Pad", Slot: 1, Battery: 1},
			"Test Pad - Player 1 (battery 100%)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := deviceLabel(tc.device); got != tc.expected {
				t.Errorf("deviceLabel() = %q, want %q", got, tc.expected)
			}
		})
	}
}
