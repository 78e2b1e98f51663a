// Package emucore defines the contract between the front-end and a native
// emulator core. The core itself (CPU/PPU emulation, memory mapping, save
// file I/O) lives behind an opaque handle; this package only describes how
// the front-end drives it.
package emucore

// FrameFormat describes the pixel layout of the frames a core produces.
// It is queried once when a render pump is constructed and is fixed for
// the lifetime of the core handle.
type FrameFormat struct {
	Width         uint32
	Height        uint32
	BytesPerPixel uint32
}

// BufferLen returns the required length of a frame buffer for this format.
func (f FrameFormat) BufferLen() int {
	return int(f.Width * f.Height * f.BytesPerPixel)
}

// Core is the opaque handle to a booted emulator core.
//
// A Core is not safe for concurrent use. The front-end only ever calls it
// from the single update context, and Destroy must be called at most once.
type Core interface {
	// FrameFormat returns the core's fixed frame pixel layout.
	FrameFormat() FrameFormat

	// AdvanceFrame runs one frame of emulation and fills buf with the
	// resulting pixels. The caller guarantees len(buf) matches the
	// frame format's buffer length.
	AdvanceFrame(buf []byte)

	// PressButton registers a console-native button press for a player.
	// The code is the console's own joypad bit position.
	PressButton(code uint8, player uint8)

	// ReleaseButton registers a console-native button release for a player.
	ReleaseButton(code uint8, player uint8)

	// Destroy releases the native core handle. Calling it more than once
	// is undefined; the session layer enforces at-most-once.
	Destroy()
}

// SystemInfo describes a console family for shell configuration.
type SystemInfo struct {
	Name        string   // display name, e.g. "Super Nintendo"
	Extensions  []string // cartridge file extensions, e.g. [".sfc", ".smc"]
	Players     int      // maximum player slots the core supports
	SaveFileExt string   // extension for the save file placed next to the cartridge
}

// CoreFactory creates core handles and provides console metadata.
type CoreFactory interface {
	// SystemInfo returns metadata for the console family this factory boots.
	SystemInfo() SystemInfo

	// Create boots the native core with the given cartridge and save file
	// paths. A nil error means the returned Core is live and owned by the
	// caller, which must eventually call Destroy exactly once.
	Create(cartridgePath, savePath string) (Core, error)
}
