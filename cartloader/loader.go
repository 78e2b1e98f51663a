// Package cartloader resolves a user-picked cartridge file into something
// the native core can open. Plain cartridge files pass through untouched;
// compressed archives (ZIP, 7z, gzip, tar.gz, RAR) are detected by magic
// bytes and the first matching cartridge inside is extracted to a staging
// directory, since the core only accepts filesystem paths.
package cartloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// Maximum cartridge size (8MB safety limit; the largest SNES cartridges
// are 6MB)
const maxCartSize = 8 * 1024 * 1024

// ErrNoCartridge is returned when an archive contains no cartridge file
var ErrNoCartridge = errors.New("no cartridge found in archive")

// ErrUnsupportedFormat is returned for unrecognized file formats
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrFileTooLarge is returned when extracted content exceeds the size limit
var ErrFileTooLarge = errors.New("file exceeds maximum cartridge size")

// formatType represents the detected file format
type formatType int

const (
	formatUnknown formatType = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// Load reads a cartridge from a file path. Archives are detected by magic
// bytes and the first entry matching one of the given extensions is
// extracted; raw files must carry a matching extension themselves.
//
// Returns the cartridge data, its basename (for display and staging), and
// any error.
func Load(path string, extensions []string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	switch detectFormat(header, path, extensions) {
	case formatRaw:
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("failed to seek file: %w", err)
		}
		data, err := readCapped(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read cartridge: %w", err)
		}
		return data, filepath.Base(path), nil

	case formatZIP:
		return extractFromZIP(path, extensions)

	case format7z:
		return extractFrom7z(path, extensions)

	case formatGzip:
		return extractFromGzip(path, extensions)

	case formatRAR:
		return extractFromRAR(path, extensions)

	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Stage returns a filesystem path the native core can open directly. A raw
// cartridge file is returned as-is; an archive is extracted into stageDir
// and the extracted file's path is returned. Staged files are overwritten
// on re-use, never accumulated per boot.
func Stage(path string, extensions []string, stageDir string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	header := make([]byte, 16)
	n, _ := f.Read(header)
	f.Close()

	if detectFormat(header[:n], path, extensions) == formatRaw {
		return path, nil
	}

	data, name, err := Load(path, extensions)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(stageDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	staged := filepath.Join(stageDir, name)
	if err := os.WriteFile(staged, data, 0644); err != nil {
		return "", fmt.Errorf("failed to stage cartridge: %w", err)
	}
	return staged, nil
}

// detectFormat determines the file format from magic bytes, falling back
// to the extension. The extensions parameter lists valid cartridge
// extensions (e.g. []string{".sfc", ".smc"}).
func detectFormat(header []byte, path string, extensions []string) formatType {
	ext := strings.ToLower(filepath.Ext(path))

	// Magic bytes are more reliable than extensions
	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return formatZIP
		}
		if bytes.HasPrefix(header, magicRAR) {
			return formatRAR
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return format7z
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return formatGzip
	}

	switch ext {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	}

	if strings.HasSuffix(strings.ToLower(path), ".tar.gz") {
		return formatGzip
	}

	for _, cartExt := range extensions {
		if ext == strings.ToLower(cartExt) {
			return formatRaw
		}
	}

	return formatUnknown
}

// isCartridgeFile checks if a filename has one of the given cartridge
// extensions (case-insensitive)
func isCartridgeFile(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// readCapped reads from r up to maxCartSize bytes, returning an error if
// the limit is exceeded
func readCapped(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxCartSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxCartSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
