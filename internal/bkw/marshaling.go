package bkw

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// bundleLoader reads a resource bundle from one kind of file system. Paths in
// manifests are always relative to the manifest that names them.
type bundleLoader struct {
	readFile func(name string) ([]byte, error)
	join     func(elem ...string) string
	dir      func(name string) string
	clean    func(name string) string
}

// diskLoader reads bundles from the OS file system.
var diskLoader = bundleLoader{
	readFile: os.ReadFile,
	join:     filepath.Join,
	dir:      filepath.Dir,
	clean:    filepath.Clean,
}

// fsLoader reads bundles from fsys, using slash-separated paths.
func fsLoader(fsys fs.FS) bundleLoader {
	return bundleLoader{
		readFile: func(name string) ([]byte, error) { return fs.ReadFile(fsys, name) },
		join:     path.Join,
		dir:      path.Dir,
		clean:    path.Clean,
	}
}

// load reads the file at name and everything it includes. manifStack holds the
// manifests currently being read, outermost first; it is used to skip circular
// references and to cap recursion at MaxManifestRecursionDepth.
//
// ErrManifestEmpty is returned only if the outermost manifest gives nothing to
// load.
func (bl bundleLoader) load(name string, manifStack []string) (topLevelWorldData, error) {
	name = bl.clean(name)

	fileData, err := bl.readFile(name)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: reading file: %w", name, err)
	}

	info, err := ScanFileInfo(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: detecting file type: %w", name, err)
	}
	if strings.ToUpper(info.Format) != FormatName {
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have a 'format = %q' entry", name, FormatName)
	}

	switch strings.ToUpper(info.Type) {
	case "DATA":
		data, err := unmarshalWorldData(fileData)
		if err != nil {
			return topLevelWorldData{}, fmt.Errorf("world data file %q: %w", name, err)
		}
		return data, nil
	case "MANIFEST":
		return bl.loadManifest(name, fileData, manifStack)
	default:
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have 'type = ' entry set to either \"DATA\" or \"MANIFEST\"", name)
	}
}

func (bl bundleLoader) loadManifest(name string, fileData []byte, manifStack []string) (topLevelWorldData, error) {
	if len(manifStack) >= MaxManifestRecursionDepth {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", name, ErrManifestStackOverflow)
	}
	for _, open := range manifStack {
		if open == name {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", name, ErrManifestCircularRef)
		}
	}

	unmarshaled, err := unmarshalManifest(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", name, err)
	}
	manif, err := parseManifest(unmarshaled)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", name, err)
	}

	outermost := len(manifStack) == 0

	// new slice so sibling includes don't see each other on the stack
	subStack := append(append([]string(nil), manifStack...), name)
	manifDir := bl.dir(name)

	var combined topLevelWorldData
	included := 0
	for _, rel := range manif.Files {
		incName := bl.join(manifDir, rel)

		data, err := bl.load(incName, subStack)
		if err != nil {
			if errors.Is(err, ErrManifestCircularRef) {
				continue
			}
			return topLevelWorldData{}, fmt.Errorf("in file referred to by manifest file:\n    %q\n%w", name, err)
		}

		if err := mergeWorldData(&combined, data); err != nil {
			return topLevelWorldData{}, fmt.Errorf("%q: %w", incName, err)
		}
		included++
	}

	if outermost && included == 0 {
		return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", name, ErrManifestEmpty)
	}

	return combined, nil
}

// mergeWorldData adds everything in src to dest. Only one of them may set the
// start room, and only one may set the intro.
func mergeWorldData(dest *topLevelWorldData, src topLevelWorldData) error {
	if src.World.Start != "" {
		if dest.World.Start != "" {
			return fmt.Errorf("duplicate start; start has already been defined as %q", dest.World.Start)
		}
		dest.World.Start = src.World.Start
	}
	if src.World.Intro != "" {
		if dest.World.Intro != "" {
			return fmt.Errorf("duplicate intro; intro has already been defined")
		}
		dest.World.Intro = src.World.Intro
	}
	dest.Rooms = append(dest.Rooms, src.Rooms...)
	return nil
}

// unmarshalWorldData unmarshals world data from the given bytes. It does not
// parse or check world data.
func unmarshalWorldData(tomlData []byte) (topLevelWorldData, error) {
	var data topLevelWorldData
	if err := unmarshalWithHeader(tomlData, &data, &data.Format, &data.Type, "DATA"); err != nil {
		return topLevelWorldData{}, err
	}
	return data, nil
}

// unmarshalManifest unmarshals a BKW manifest from the given bytes. It does not
// parse or check it.
func unmarshalManifest(tomlData []byte) (topLevelManifest, error) {
	var manif topLevelManifest
	if err := unmarshalWithHeader(tomlData, &manif, &manif.Format, &manif.Type, "MANIFEST"); err != nil {
		return topLevelManifest{}, err
	}
	return manif, nil
}

// unmarshalWithHeader decodes tomlData into v and then checks that the format
// and type header fields decoded into it are as expected.
func unmarshalWithHeader(tomlData []byte, v any, format, fileType *string, wantType string) error {
	if err := toml.Unmarshal(tomlData, v); err != nil {
		return err
	}

	if strings.ToUpper(*format) != FormatName {
		return fmt.Errorf("in header: 'format' key must exist and be set to %q", FormatName)
	}
	if strings.ToUpper(*fileType) != wantType {
		return fmt.Errorf("in header: 'type' must exist and be set to %q", wantType)
	}
	return nil
}
