// Package session binds a loaded cartridge to a core handle and its render
// pump. The session owns the handle exclusively: it creates it on boot and
// guarantees it is destroyed exactly once, whether through explicit
// teardown or the runtime cleanup backstop.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/SeanAsby/rustboyui/buttons"
	"github.com/SeanAsby/rustboyui/emucore"
	"github.com/SeanAsby/rustboyui/render"
)

// Boot failures are status values the shell checks, not crashes.
var (
	// ErrCartridgeMissing is returned by Boot when no cartridge is set.
	ErrCartridgeMissing = errors.New("no cartridge loaded")
	// ErrCoreInitFailed is returned by Boot when the native core rejects
	// the cartridge or save paths.
	ErrCoreInitFailed = errors.New("core failed to initialize")
)

// Session is one console play session. All methods must be called from the
// single update context; Session keeps no locks.
type Session struct {
	family  buttons.Family
	factory emucore.CoreFactory
	info    emucore.SystemInfo

	cartPath string
	autoBoot bool
	sink     render.Sink

	state   State
	core    emucore.Core
	pump    *render.Pump
	cleanup runtime.Cleanup
}

// New creates an unbooted session for one console family.
func New(family buttons.Family, factory emucore.CoreFactory) *Session {
	return &Session{
		family:  family,
		factory: factory,
		info:    factory.SystemInfo(),
	}
}

// Family returns the session's console family.
func (s *Session) Family() buttons.Family {
	return s.family
}

// Info returns the console metadata the session was created with.
func (s *Session) Info() emucore.SystemInfo {
	return s.info
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Cartridge returns the currently set cartridge path, or "".
func (s *Session) Cartridge() string {
	return s.cartPath
}

// SetAutoBoot controls whether replacing the cartridge re-boots immediately.
func (s *Session) SetAutoBoot(on bool) {
	s.autoBoot = on
}

// SetDisplaySink attaches the display sink. The reference is non-owning;
// a booted session forwards it to the running pump, an unbooted one keeps
// it for the next boot.
func (s *Session) SetDisplaySink(sink render.Sink) {
	s.sink = sink
	if s.pump != nil {
		s.pump.SetSink(sink)
	}
}

// SetCartridge replaces the loaded cartridge. A booted session tears down
// its handle and pump first, then re-boots when auto-boot is enabled;
// otherwise it returns to Uninitialized and waits for an explicit Boot.
func (s *Session) SetCartridge(path string) error {
	if s.state == Destroyed {
		return errors.New("session is destroyed")
	}

	wasBooted := s.state == Booted
	if wasBooted {
		s.teardown()
	}
	s.cartPath = path

	if wasBooted && s.autoBoot {
		return s.Boot()
	}
	return nil
}

// Boot creates the core handle and render pump. It returns
// ErrCartridgeMissing when no cartridge is set and ErrCoreInitFailed when
// the native core rejects the paths; in both cases no handle is left
// behind. An already-booted session is torn down and booted fresh.
func (s *Session) Boot() error {
	if s.state == Destroyed {
		return errors.New("session is destroyed")
	}
	if s.state == Booted {
		s.teardown()
	}
	if s.cartPath == "" {
		return ErrCartridgeMissing
	}

	core, err := s.factory.Create(s.cartPath, s.savePath())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCoreInitFailed, err)
	}

	pump, err := render.NewPump(core, s.sink)
	if err != nil {
		core.Destroy()
		return fmt.Errorf("%w: %v", ErrCoreInitFailed, err)
	}

	s.core = core
	s.pump = pump
	s.state = Booted

	// Backstop: if the session is dropped without Close, the handle is
	// still destroyed exactly once. The cleanup is cancelled on teardown
	// before the explicit Destroy.
	s.cleanup = runtime.AddCleanup(s, func(c emucore.Core) { c.Destroy() }, core)

	return nil
}

// Tick drives the render pump for one frame. No-op unless booted.
func (s *Session) Tick() {
	if s.state != Booted {
		return
	}
	s.pump.Tick()
}

// ButtonPressed forwards a console-native button press to the core.
// No-op unless booted; slots outside the console's supported range are
// ignored silently. The core takes a zero-based player index.
func (s *Session) ButtonPressed(code buttons.Code, slot int) {
	if s.state != Booted || !s.slotInRange(slot) {
		return
	}
	s.core.PressButton(uint8(code), uint8(slot-1))
}

// ButtonUnpressed forwards a console-native button release to the core.
func (s *Session) ButtonUnpressed(code buttons.Code, slot int) {
	if s.state != Booted || !s.slotInRange(slot) {
		return
	}
	s.core.ReleaseButton(uint8(code), uint8(slot-1))
}

// Close tears the session down. The core handle is destroyed exactly once
// and the session cannot be booted again.
func (s *Session) Close() {
	if s.state == Destroyed {
		return
	}
	s.teardown()
	s.state = Destroyed
}

// teardown stops the pump and destroys the core handle, returning the
// session to Uninitialized. Safe to call when nothing is booted.
func (s *Session) teardown() {
	if s.pump != nil {
		s.pump.Stop()
		s.pump = nil
	}
	if s.core != nil {
		s.cleanup.Stop()
		s.core.Destroy()
		s.core = nil
	}
	s.state = Uninitialized
}

func (s *Session) slotInRange(slot int) bool {
	return slot >= 1 && slot <= s.info.Players
}

// savePath derives the save file path from the cartridge path by swapping
// the extension for the console's save extension.
func (s *Session) savePath() string {
	ext := filepath.Ext(s.cartPath)
	return strings.TrimSuffix(s.cartPath, ext) + s.info.SaveFileExt
}
