package cartloader

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// archiveEntry is the common shape of one file in an indexed archive. ZIP
// and 7z both expose their full file list up front, so their extractors
// share the selection loop below; RAR is stream-only and keeps its own.
type archiveEntry struct {
	name string
	dir  bool
	open func() (io.ReadCloser, error)
}

// selectCartridge scans entries in archive order and extracts the first
// one matching a cartridge extension.
func selectCartridge(entries []archiveEntry, extensions []string) ([]byte, string, error) {
	for _, e := range entries {
		if e.dir || !isCartridgeFile(e.name, extensions) {
			continue
		}

		rc, err := e.open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s in archive: %w", e.name, err)
		}
		defer rc.Close()

		data, err := readCapped(rc)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", e.name, err)
		}
		return data, filepath.Base(e.name), nil
	}

	return nil, "", ErrNoCartridge
}

// extractFromZIP extracts the first cartridge from a ZIP archive
func extractFromZIP(path string, extensions []string) ([]byte, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	entries := make([]archiveEntry, len(r.File))
	for i, f := range r.File {
		entries[i] = archiveEntry{name: f.Name, dir: f.FileInfo().IsDir(), open: f.Open}
	}
	return selectCartridge(entries, extensions)
}

// extractFrom7z extracts the first cartridge from a 7z archive
func extractFrom7z(path string, extensions []string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open 7z: %w", err)
	}
	defer r.Close()

	entries := make([]archiveEntry, len(r.File))
	for i, f := range r.File {
		entries[i] = archiveEntry{name: f.Name, dir: f.FileInfo().IsDir(), open: f.Open}
	}
	return selectCartridge(entries, extensions)
}
