// Package bkw has functions for loading game data using the BKW (Bork Worlds)
// game data file format, a TOML-based format that is used to define game
// worlds for the engine to run.
package bkw

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/bork/internal/game"
)

// MaxManifestRecursionDepth is how deeply manifests may include other
// manifests before loading fails with ErrManifestStackOverflow.
const MaxManifestRecursionDepth = 32

// FormatName is the value that the 'format' key of every BKW file must have.
const FormatName = "BORK"

// DefaultWorldFile is the name of the built-in world's file within
// DefaultWorldFS.
const DefaultWorldFile = "default.bkw"

// DefaultWorldFS holds the files of the built-in world.
//
//go:embed default.bkw
var DefaultWorldFS embed.FS

var (
	// ErrManifestEmpty is the error returned when a manifest file is read
	// successfully but specifies no additional files to load.
	ErrManifestEmpty = errors.New("does not list any valid files to include")

	// ErrManifestStackOverflow is the error returned when the recursion level
	// of MaxManifestRecursionDepth is reached and an additional Manifest is
	// then specified, which would cause recursion to go deeper.
	ErrManifestStackOverflow = errors.New("too many manifests deep")

	// ErrManifestCircularRef is the error returned when a manifest specifies
	// any series of files that with their own manifests refer back to the
	// original manifest, and therefore cannot be followed.
	ErrManifestCircularRef = errors.New("manifest inclusion chain refers back to itself")
)

// Manifest contains data loaded from one or more BKW Manifest files.
type Manifest struct {
	Files []string
}

// FileInfo contains the essential information all BKW format files must
// contain. It can be obtained from a file by reading it into memory and calling
// ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// LoadResourceBundle loads a world up from the given BKW file. The file's type
// is auto-detected and decoding is handled appropriately; the type can either
// be "DATA" type or "MANIFEST" type; if it's manifest type, the files listed in
// it relative to it will also be loaded. All files included will be combined
// into one single set of data before being checked, and if a manifest is
// encountered, all files in it are recursively included.
func LoadResourceBundle(path string) (*game.World, error) {
	unmarshaled, err := diskLoader.load(path, nil)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// LoadResourceBundleFS is the same as LoadResourceBundle but reads the files
// from fsys. Paths in manifests are slash-separated and relative to the
// manifest within fsys.
func LoadResourceBundleFS(fsys fs.FS, name string) (*game.World, error) {
	unmarshaled, err := fsLoader(fsys).load(name, nil)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// LoadWorldData loads a world from the bytes of a world definition.
func LoadWorldData(data []byte) (*game.World, error) {
	unmarshaled, err := unmarshalWorldData(data)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// LoadDefault loads the world that is built in to the game. Every call gives a
// new, separate World.
func LoadDefault() (*game.World, error) {
	w, err := LoadResourceBundleFS(DefaultWorldFS, DefaultWorldFile)
	if err != nil {
		return nil, fmt.Errorf("built-in world: %w", err)
	}
	return w, nil
}

// ScanFileInfo takes the given data bytes of bytes and attempts to read the BKW
// format common header info from it. The bytes are read up to the first
// instance of a table definition header and those bytes are parsed for the
// info. If there is an error reading the info, returns a non-nil error.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-lev table
	var topLevelEnd int = -1
	onNewLine := true
	for b := range data {
		if onNewLine {
			if data[b] == '[' {
				topLevelEnd = b
				break
			}
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
