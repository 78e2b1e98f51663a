// Package shell is the desktop front-end: the ebiten game loop, the picker
// and controller screens, and the glue between the device registry, the
// console session, and the display.
package shell

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ebitenui/ebitenui"
	ebitenuiInput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/SeanAsby/rustboyui/buttons"
	"github.com/SeanAsby/rustboyui/cartloader"
	"github.com/SeanAsby/rustboyui/emucore"
	"github.com/SeanAsby/rustboyui/input"
	"github.com/SeanAsby/rustboyui/session"
	"github.com/SeanAsby/rustboyui/shell/style"
	"github.com/SeanAsby/rustboyui/storage"
)

// pendingCartridge is a cartridge pick delivered from the file dialog
// goroutine, drained on the main thread in Update.
type pendingCartridge struct {
	family buttons.Family
	path   string
}

// App is the main application struct that implements ebiten.Game
type App struct {
	ui *ebitenui.UI

	// Core factories per console family (set by Run)
	factories map[buttons.Family]emucore.CoreFactory

	// State management
	state         AppState
	previousState AppState

	config           *storage.Config
	configLoadFailed bool // True if config.json failed to parse (don't overwrite on exit)

	// Input
	registry *input.Registry
	scanner  *deviceScanner
	keymap   *Keymap

	// Active play session (nil until a cartridge is picked)
	session *session.Session
	bridge  *session.Bridge

	display      *Display
	notification *Notification

	// Screens
	pickerScreen     *PickerScreen
	controllerScreen *ControllerScreen

	// Cartridge pick handed over from the dialog goroutine
	pendingMu      sync.Mutex
	pending        *pendingCartridge
	dialogOpen     bool
	rebuildPending bool

	// Window tracking for persistence and HiDPI
	currentDPIScale     float64
	windowWidth         int
	windowHeight        int
	lastWindowedWidth   int
	lastWindowedHeight  int
	lastBuildWidth      int
	lastFullscreenState bool

	quitRequested bool
}

// Run is the public entry point for the desktop shell. It initializes
// storage, configures the window, creates the app, and starts the ebiten
// game loop. The factories map provides one core factory per console
// family the build supports.
func Run(factories map[buttons.Family]emucore.CoreFactory) error {
	storage.Init("rustboyui")
	if err := storage.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	app := newApp(factories)

	ebiten.SetWindowTitle("Super Rust Boy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(640, 480, -1, -1)
	ebiten.SetWindowSize(app.config.Window.Width, app.config.Window.Height)
	if app.config.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// The core runs one frame of emulation per update tick, so the tick
	// rate is the console's frame rate.
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	app.SaveAndClose()
	return nil
}

// newApp creates and initializes the application
func newApp(factories map[buttons.Family]emucore.CoreFactory) *App {
	app := &App{
		state:     StatePicker,
		factories: factories,
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		config = storage.DefaultConfig()
		app.configLoadFailed = true
	}
	app.config = config

	app.display = NewDisplay()
	app.notification = NewNotification()

	app.registry = input.NewRegistry(1)
	app.keymap = NewKeymap(config.Input.Keyboard)
	app.registry.SetKeyReceiver(app.keymap)
	app.scanner = newDeviceScanner(app.registry, app.notification.ShowDefault)

	app.pickerScreen = NewPickerScreen(app)
	app.controllerScreen = NewControllerScreen(app, app.registry)
	app.rebuildCurrentScreen()

	return app
}

// rebuildCurrentScreen rebuilds the UI for the current state
func (a *App) rebuildCurrentScreen() {
	switch a.state {
	case StatePicker:
		a.ui = &ebitenui.UI{Container: a.pickerScreen.Build()}
	case StateControllers:
		a.ui = &ebitenui.UI{Container: a.controllerScreen.Build()}
	default:
		// StatePlaying has no UI container
		return
	}
	a.lastBuildWidth = a.windowWidth
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if a.quitRequested {
		return ebiten.Termination
	}

	a.lastFullscreenState = ebiten.IsFullscreen()

	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// Device hot-plug first so a pad connected this tick is polled this tick
	a.scanner.Scan()
	a.registry.Poll()

	a.drainPendingCartridge()

	switch a.state {
	case StatePlaying:
		// Keep ebitenui's global input handler in sync during gameplay so
		// held input doesn't register as a fresh press on the first UI
		// frame after leaving gameplay.
		ebitenuiInput.Update()
		ebitenuiInput.AfterUpdate()

		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.SwitchToPicker()
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
			a.SwitchToControllers()
			return nil
		}
		a.session.Tick()
	case StateControllers:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			a.SwitchToPicker()
			return nil
		}
		a.ui.Update()
	default:
		a.ui.Update()
	}

	// Rebuild responsive screens when the window width changes
	if a.state != StatePlaying && a.windowWidth > 0 && a.windowWidth != a.lastBuildWidth {
		a.rebuildCurrentScreen()
	}

	return nil
}

// drainPendingCartridge processes a cartridge pick delivered by the file
// dialog goroutine: stage it to a path the core can open, hand it to the
// session, and boot.
func (a *App) drainPendingCartridge() {
	a.pendingMu.Lock()
	pick := a.pending
	a.pending = nil
	a.pendingMu.Unlock()

	if pick == nil {
		return
	}

	a.config.LastCartridgeDir = filepath.Dir(pick.path)

	factory := a.factories[pick.family]
	info := factory.SystemInfo()

	stageDir, err := storage.GetStageDir()
	if err != nil {
		a.surfaceBootError(fmt.Sprintf("Staging directory unavailable: %v", err))
		return
	}
	staged, err := cartloader.Stage(pick.path, info.Extensions, stageDir)
	if err != nil {
		a.surfaceBootError(fmt.Sprintf("Could not load %s: %v", filepath.Base(pick.path), err))
		return
	}

	// A family switch replaces the session; same family reuses it so the
	// running core is torn down through the normal cartridge-swap path.
	if a.session == nil || a.session.Family() != pick.family {
		a.startSession(pick.family, factory)
	}

	if err := a.session.SetCartridge(staged); err != nil {
		a.surfaceBootError(fmt.Sprintf("Could not start %s: %v", filepath.Base(staged), err))
		return
	}

	if !a.config.AutoBoot && a.session.State() != session.Booted {
		a.pickerScreen.SetBootError("")
		a.notification.ShowDefault(fmt.Sprintf("Loaded %s", filepath.Base(staged)))
		a.rebuildCurrentScreen()
		return
	}

	if a.session.State() != session.Booted {
		if err := a.session.Boot(); err != nil {
			a.surfaceBootError(fmt.Sprintf("Could not start %s: %v", filepath.Base(staged), err))
			return
		}
	}

	a.pickerScreen.SetBootError("")
	a.display.Clear()
	a.previousState = a.state
	a.state = StatePlaying
}

// startSession closes any existing session and creates a fresh one for the
// given family, rewiring the registry and keymap to its bridge.
func (a *App) startSession(family buttons.Family, factory emucore.CoreFactory) {
	if a.session != nil {
		a.session.Close()
	}

	a.session = session.New(family, factory)
	a.session.SetAutoBoot(a.config.AutoBoot)
	a.session.SetDisplaySink(a.display)

	a.bridge = session.NewBridge(a.session)
	a.registry.SetReceiver(a.bridge)
	a.keymap.SetReceiver(a.bridge)
	a.registry.SetMaxSlots(a.session.Info().Players)

	a.display.Clear()
}

// surfaceBootError shows a load/boot failure on the picker screen
func (a *App) surfaceBootError(msg string) {
	log.Printf("Boot failed: %s", msg)
	a.pickerScreen.SetBootError(msg)
	a.state = StatePicker
	a.rebuildCurrentScreen()
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	switch a.state {
	case StatePlaying:
		screen.Fill(style.Background)
		a.display.Draw(screen)
	default:
		a.ui.Draw(screen)
	}
	a.notification.Draw(screen)
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		a.rebuildPending = true
	}

	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h
	if !ebiten.IsFullscreen() {
		a.lastWindowedWidth = w
		a.lastWindowedHeight = h
	}
	return w, h
}

// toggleFullscreen toggles between fullscreen and windowed mode
func (a *App) toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	a.lastFullscreenState = ebiten.IsFullscreen()
	a.config.Window.Fullscreen = a.lastFullscreenState
}

// screenCallback implementation

// RequestCartridge opens the file dialog for the given console family.
// The dialog blocks, so it runs in a goroutine; the picked path is drained
// on the main thread.
func (a *App) RequestCartridge(family buttons.Family) {
	a.pendingMu.Lock()
	if a.dialogOpen {
		a.pendingMu.Unlock()
		return
	}
	a.dialogOpen = true
	a.pendingMu.Unlock()

	info := a.factories[family].SystemInfo()
	exts := dialogExtensions(info.Extensions)
	startDir := a.config.LastCartridgeDir

	go func() {
		builder := dialog.File().Title(fmt.Sprintf("Select %s Cartridge", info.Name)).
			Filter("Cartridges and archives", exts...)
		if startDir != "" {
			builder = builder.SetStartDir(startDir)
		}
		path, err := builder.Load()

		a.pendingMu.Lock()
		a.dialogOpen = false
		if err == nil {
			a.pending = &pendingCartridge{family: family, path: path}
		}
		a.pendingMu.Unlock()
	}()
}

// dialogExtensions converts dot-prefixed cartridge extensions to the
// dialog filter format and appends the archive formats the loader opens.
func dialogExtensions(cartExts []string) []string {
	exts := make([]string, 0, len(cartExts)+5)
	for _, e := range cartExts {
		exts = append(exts, strings.TrimPrefix(e, "."))
	}
	return append(exts, "zip", "7z", "gz", "tgz", "rar")
}

// ResumePlaying returns to gameplay without touching the session
func (a *App) ResumePlaying() {
	if !a.CanResume() {
		return
	}
	a.notification.Clear()
	a.previousState = a.state
	a.state = StatePlaying
}

// SwitchToPicker transitions to the cartridge picker screen
func (a *App) SwitchToPicker() {
	a.previousState = a.state
	a.state = StatePicker
	a.rebuildCurrentScreen()
}

// SwitchToControllers transitions to the controller assignment screen
func (a *App) SwitchToControllers() {
	a.previousState = a.state
	a.state = StateControllers
	a.rebuildCurrentScreen()
}

// SetAutoBoot updates the boot-on-load preference
func (a *App) SetAutoBoot(enabled bool) {
	a.config.AutoBoot = enabled
	if a.session != nil {
		a.session.SetAutoBoot(enabled)
	}
}

// AutoBoot returns the boot-on-load preference
func (a *App) AutoBoot() bool {
	return a.config.AutoBoot
}

// CanResume reports whether a booted session exists to return to
func (a *App) CanResume() bool {
	return a.session != nil && a.session.State() == session.Booted
}

// CanStart reports whether a cartridge is loaded but not yet booted, which
// happens when boot-on-load is off at pick time.
func (a *App) CanStart() bool {
	return a.session != nil &&
		a.session.State() == session.Uninitialized &&
		a.session.Cartridge() != ""
}

// StartCartridge boots the loaded cartridge and enters gameplay
func (a *App) StartCartridge() {
	if !a.CanStart() {
		return
	}
	if err := a.session.Boot(); err != nil {
		a.surfaceBootError(fmt.Sprintf("Could not start %s: %v", filepath.Base(a.session.Cartridge()), err))
		return
	}

	a.pickerScreen.SetBootError("")
	a.display.Clear()
	a.previousState = a.state
	a.state = StatePlaying
}

// RequestRebuild triggers a UI rebuild on the next update tick
func (a *App) RequestRebuild() {
	a.rebuildPending = true
}

// Exit requests a clean shutdown through ebiten.Termination
func (a *App) Exit() {
	a.quitRequested = true
}

// SaveAndClose persists config, tears down the session, and releases the
// core handle. Called after the game loop returns.
func (a *App) SaveAndClose() {
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}

	// Don't overwrite a config the user may want to fix by hand
	if a.configLoadFailed {
		return
	}

	if a.lastWindowedWidth > 0 && a.lastWindowedHeight > 0 {
		s := a.currentDPIScale
		if s < 1 {
			s = 1
		}
		a.config.Window.Width = int(float64(a.lastWindowedWidth) / s)
		a.config.Window.Height = int(float64(a.lastWindowedHeight) / s)
	}
	a.config.Window.Fullscreen = a.lastFullscreenState

	if err := storage.SaveConfig(a.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}
