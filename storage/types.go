package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version int          `json:"version"`
	Window  WindowConfig `json:"window"`
	Input   InputConfig  `json:"input"`

	// AutoBoot re-boots the session immediately when the cartridge is
	// replaced during play
	AutoBoot bool `json:"autoBoot"`

	// LastCartridgeDir is where the file picker opens next time
	LastCartridgeDir string `json:"lastCartridgeDir,omitempty"`
}

// InputConfig contains keyboard binding overrides. Empty/nil means "use
// the built-in defaults"; only user overrides are stored. Keys are logical
// button names ("A", "Start", ...), values are key names ("Z", "Enter", ...).
type InputConfig struct {
	Keyboard map[string]string `json:"keyboard,omitempty"`
}

// WindowConfig contains window size and fullscreen state
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}
