package bkw

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/bork/internal/game"
	"github.com/dekarrin/bork/internal/util"
)

// this is getting chucked into a char class so order matters
const labelChars = `]A-Z0-9_!?#%^&*().,<>/+=[|{}:;-`

var (
	labelRegexp             = regexp.MustCompile(fmt.Sprintf(`^[%s]+$`, labelChars))
	identifierBadCharRegexp = regexp.MustCompile(fmt.Sprintf(`[^%s]`, labelChars))
)

func parseManifest(bkw topLevelManifest) (Manifest, error) {
	manif := Manifest{
		Files: bkw.Files,
	}

	return manif, nil
}

type worldSymbols struct {
	roomLabels   util.StringSet
	objectLabels util.StringSet
}

func parseWorldData(bkw topLevelWorldData) (*game.World, error) {
	// first, get all of our game symbols so we can immediately check validity
	// of every reference as we go through it.
	symbols, err := scanSymbols(bkw)
	if err != nil {
		return nil, err
	}

	// validate start
	startLabel := strings.ToUpper(bkw.World.Start)
	if !symbols.roomLabels.Has(startLabel) {
		return nil, fmt.Errorf("world: start: no room with label %q exists", bkw.World.Start)
	}

	// validate rooms
	rooms := make(map[string]*game.Room, len(bkw.Rooms))
	for _, r := range bkw.Rooms {
		if roomErr := validateRoomDef(r, symbols); roomErr != nil {
			return nil, fmt.Errorf("rooms[%q]: %w", r.Label, roomErr)
		}

		rooms[strings.ToUpper(r.Label)] = r.toGameRoom()
	}

	// every room exists now, so exits can be linked
	for _, r := range bkw.Rooms {
		gameRoom := rooms[strings.ToUpper(r.Label)]
		for _, eg := range r.Exits {
			gameRoom.AddExit(game.NormalizeDirection(eg.Direction), rooms[strings.ToUpper(eg.Dest)])
		}
	}

	world, err := game.NewWorld(rooms[startLabel])
	if err != nil {
		return nil, err
	}

	if len(world.Rooms) != len(rooms) {
		unreachable := util.NewStringSet()
		for label := range rooms {
			if world.Room(label) == nil {
				unreachable.Add(label)
			}
		}
		return nil, fmt.Errorf("rooms %s cannot be reached from start room %q", unreachable, startLabel)
	}

	world.Intro = strings.TrimSpace(bkw.World.Intro)
	return world, nil
}

// this builds up a pre-list of 'seen' labels so we can check references later.
// Room labels are checked for conflicts with each other and object labels are
// checked for conflicts with every other object in the world, including ones
// inside of other objects.
//
// Error is returned if any label fails to follow its naming rules or if any of
// them conflicts with another. Otherwise, global symbols are returned so that
// they can be used to check references to them. The global symbols returned
// will all be converted to upper case already.
func scanSymbols(top topLevelWorldData) (symbols worldSymbols, err error) {
	syms := worldSymbols{
		roomLabels:   util.NewStringSet(),
		objectLabels: util.NewStringSet(),
	}

	for _, r := range top.Rooms {
		rLabelUpper := strings.ToUpper(r.Label)
		if err := checkLabel(rLabelUpper, syms.roomLabels, "a room"); err != nil {
			return syms, fmt.Errorf("room %q: %w", r.Label, err)
		}
		syms.roomLabels.Add(rLabelUpper)

		for _, obj := range r.Objects {
			if err := scanObjectSymbols(obj, syms.objectLabels); err != nil {
				return syms, fmt.Errorf("room %q: %w", r.Label, err)
			}
		}
	}

	return syms, nil
}

func scanObjectSymbols(obj object, seen util.StringSet) error {
	labelUpper := strings.ToUpper(obj.Label)
	if err := checkLabel(labelUpper, seen, "an object"); err != nil {
		return fmt.Errorf("object %q: %w", obj.Label, err)
	}
	seen.Add(labelUpper)

	for _, c := range obj.Contents {
		if err := scanObjectSymbols(c, seen); err != nil {
			return fmt.Errorf("object %q: %w", obj.Label, err)
		}
	}

	return nil
}

func validateRoomDef(r room, syms worldSymbols) error {
	if r.Label == "" {
		return fmt.Errorf("must have non-blank 'label' field")
	}
	if r.Name == "" {
		return fmt.Errorf("must have non-blank 'name' field")
	}
	if r.Description == "" {
		return fmt.Errorf("must have non-blank 'description' field")
	}

	directions := util.NewStringSet()
	for i, eg := range r.Exits {
		if err := validateExitDef(eg, syms); err != nil {
			return fmt.Errorf("exits[%d]: %w", i, err)
		}

		dir := game.NormalizeDirection(eg.Direction)
		if directions.Has(dir) {
			return fmt.Errorf("exits[%d]: there is already an exit going %q", i, dir)
		}
		directions.Add(dir)
	}

	for i, obj := range r.Objects {
		if err := validateObjectDef(obj); err != nil {
			return fmt.Errorf("objects[%d]: %w", i, err)
		}
	}

	return nil
}

func validateExitDef(eg exit, syms worldSymbols) error {
	if game.NormalizeDirection(eg.Direction) == "" {
		return fmt.Errorf("must have non-blank 'direction' field")
	}
	if eg.Dest == "" {
		return fmt.Errorf("must have non-blank 'dest' field")
	}

	if !syms.roomLabels.Has(strings.ToUpper(eg.Dest)) {
		return fmt.Errorf("dest: no room with label %q exists", eg.Dest)
	}

	return nil
}

func validateObjectDef(obj object) error {
	if obj.Label == "" {
		return fmt.Errorf("must have non-blank 'label' field")
	}
	if obj.Name == "" {
		return fmt.Errorf("must have non-blank 'name' field")
	}
	if obj.Description == "" {
		return fmt.Errorf("must have non-blank 'description' field")
	}

	if obj.Open && !obj.Openable {
		return fmt.Errorf("'open' cannot be set on an object that is not openable")
	}

	if len(obj.Contents) > 0 {
		if !obj.Openable {
			return fmt.Errorf("only openable objects can have contents")
		}
		if obj.Open {
			return fmt.Errorf("an object that starts open cannot have contents")
		}
	}

	for _, c := range obj.Contents {
		if err := validateObjectDef(c); err != nil {
			return fmt.Errorf("contents[%q]: %w", c.Label, err)
		}
	}

	return nil
}

func checkLabel(label string, conflictSet util.StringSet, labeled string) error {
	if conflictSet.Has(label) {
		return fmt.Errorf("label %q has already been used for %s", label, labeled)
	}

	if label == "" {
		return fmt.Errorf("label cannot be blank")
	}

	if !labelRegexp.MatchString(label) {
		badChar := identifierBadCharRegexp.FindString(label)
		if badChar == "" {
			// something has gone horribly wrong with coding of regular expressions
			panic(fmt.Sprintf("could not identify bad char in label %q", label))
		}

		return fmt.Errorf("%q has the %q character in it which is not allowed for labels", label, badChar)
	}

	return nil
}
