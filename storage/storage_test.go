package storage

import (
	"os"
	"path/filepath"
	"testing"
)

// useTempBaseDir routes the platform data directory into a per-test temp
// dir so tests never touch the real config.
func useTempBaseDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	t.Setenv("APPDATA", tmp)
	t.Setenv("HOME", tmp)
	Init("rustboyui-test")
	return tmp
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("expected version 1, got %d", config.Version)
	}
	if config.Window.Width != 1024 {
		t.Errorf("expected window width 1024, got %d", config.Window.Width)
	}
	if config.Window.Height != 768 {
		t.Errorf("expected window height 768, got %d", config.Window.Height)
	}
	if !config.AutoBoot {
		t.Error("expected auto-boot enabled by default")
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	useTempBaseDir(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	def := DefaultConfig()
	if config.Window != def.Window || config.AutoBoot != def.AutoBoot {
		t.Errorf("missing config file should yield defaults, got %+v", config)
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	useTempBaseDir(t)

	config := DefaultConfig()
	config.Window.Width = 1600
	config.Window.Height = 900
	config.Window.Fullscreen = true
	config.AutoBoot = false
	config.LastCartridgeDir = "/home/user/carts"
	config.Input.Keyboard = map[string]string{"A": "K", "Start": "Space"}

	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Window != config.Window {
		t.Errorf("window = %+v, want %+v", loaded.Window, config.Window)
	}
	if loaded.AutoBoot != config.AutoBoot {
		t.Errorf("autoBoot = %v, want %v", loaded.AutoBoot, config.AutoBoot)
	}
	if loaded.LastCartridgeDir != config.LastCartridgeDir {
		t.Errorf("lastCartridgeDir = %q, want %q", loaded.LastCartridgeDir, config.LastCartridgeDir)
	}
	if loaded.Input.Keyboard["A"] != "K" || loaded.Input.Keyboard["Start"] != "Space" {
		t.Errorf("keyboard overrides = %v", loaded.Input.Keyboard)
	}
}

func TestLoadConfigCorruptedFile(t *testing.T) {
	useTempBaseDir(t)

	if err := EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupted config: %v", err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for corrupted config")
	}
}

func TestLoadConfigSanitizesTinyWindow(t *testing.T) {
	useTempBaseDir(t)

	config := DefaultConfig()
	config.Window.Width = 10
	config.Window.Height = 10
	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	def := DefaultConfig()
	if loaded.Window.Width != def.Window.Width || loaded.Window.Height != def.Window.Height {
		t.Errorf("window = %dx%d, want reset to defaults %dx%d",
			loaded.Window.Width, loaded.Window.Height, def.Window.Width, def.Window.Height)
	}
}

func TestEnsureDirectoriesCreatesStageDir(t *testing.T) {
	useTempBaseDir(t)

	if err := EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	stage, err := GetStageDir()
	if err != nil {
		t.Fatalf("GetStageDir failed: %v", err)
	}
	info, err := os.Stat(stage)
	if err != nil {
		t.Fatalf("stage dir missing: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("stage path %s is not a directory", stage)
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.json")

	data := map[string]int{"value": 42}
	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after atomic write")
	}

	var result map[string]int
	if err := ReadJSON(path, &result); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if result["value"] != 42 {
		t.Errorf("round trip value = %d, want 42", result["value"])
	}
}

func TestReadJSONInvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	var result map[string]int
	if err := ReadJSON(path, &result); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestReadJSONNonexistentFile(t *testing.T) {
	var result map[string]int
	if err := ReadJSON("/nonexistent/path/file.json", &result); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
