package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bork/internal/bkerrors"
	"github.com/dekarrin/bork/internal/util"
)

// File object.go holds symbols related to objects, their open/closed state, and
// where they currently are.

// OpenState is whether an openable Object is open or closed.
type OpenState int

const (
	StateClosed OpenState = iota
	StateOpen
)

func (s OpenState) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	default:
		return fmt.Sprintf("OpenState(%d)", int(s))
	}
}

// LocationKind is the kind of place an Object can be.
type LocationKind int

const (
	// LocNowhere is where an Object is before it has been placed anywhere, and
	// briefly while it is being moved from one place to another.
	LocNowhere LocationKind = iota

	// LocRoom is an Object lying in a room. The Ref of the Location is the
	// label of the room.
	LocRoom

	// LocInventory is an Object being carried by the player.
	LocInventory

	// LocContainer is an Object inside of another Object that has not yet been
	// opened. The Ref of the Location is the label of the container.
	LocContainer
)

// Location is where an Object is. There is exactly one for every Object, so an
// Object cannot be both in a room and in the inventory, or in two rooms at
// once.
type Location struct {
	Kind LocationKind

	// Ref is the label of the room or container the Object is in. It is empty
	// for LocNowhere and LocInventory.
	Ref string
}

// InRoom returns the Location for an Object lying in the room with the given
// label.
func InRoom(roomLabel string) Location {
	return Location{Kind: LocRoom, Ref: roomLabel}
}

// InInventory returns the Location for an Object being carried by the player.
func InInventory() Location {
	return Location{Kind: LocInventory}
}

// InsideContainer returns the Location for an Object inside the container with
// the given label.
func InsideContainer(containerLabel string) Location {
	return Location{Kind: LocContainer, Ref: containerLabel}
}

func (loc Location) String() string {
	switch loc.Kind {
	case LocRoom:
		return fmt.Sprintf("InRoom(%s)", loc.Ref)
	case LocInventory:
		return "InInventory"
	case LocContainer:
		return fmt.Sprintf("InsideContainer(%s)", loc.Ref)
	default:
		return "Nowhere"
	}
}

// Object is something in the game world that can be referred to by the player.
// Plain objects can only be examined; an Object with Openable or Takeable set
// is an item that can also be opened and closed or carried around.
type Object struct {
	// Label is the canonical way to index the Object programmatically. It
	// should be upper case and must be unique within all objects of the world.
	Label string

	// Name is what the player calls the Object. It is used to look the Object
	// up from a command target.
	Name string

	// Description is what is shown when the player examines the Object. It
	// completes the sentence "The <name> is ...".
	Description string

	// Examinable is whether examining the Object gives its Description.
	Examinable bool

	// Openable is whether the Object can be opened and closed.
	Openable bool

	// Takeable is whether the Object can be picked up by the player.
	Takeable bool

	// State is whether the Object is open or closed. It only has meaning for
	// Openable objects.
	State OpenState

	// Contents is the objects inside of this one that have not yet been
	// revealed by opening it.
	Contents []*Object

	loc Location
}

// OpenResult is the result of successfully opening an Object.
type OpenResult struct {
	// Message is the narration of the opening.
	Message string

	// Revealed is the objects that were inside and are now exposed. They are
	// still listed in the Object's Contents until they are moved out with
	// RemoveContent.
	Revealed []*Object
}

func (obj *Object) String() string {
	var flags []string
	if obj.Examinable {
		flags = append(flags, "EXAMINABLE")
	}
	if obj.Takeable {
		flags = append(flags, "TAKEABLE")
	}
	if obj.Openable {
		flags = append(flags, "OPENABLE/"+obj.State.String())
	}

	var contents []string
	for _, c := range obj.Contents {
		contents = append(contents, c.Label)
	}

	return fmt.Sprintf("Object(%q, %q, [%s] @ %s, CONTENTS: [%s])", obj.Label, obj.Name, strings.Join(flags, " "), obj.loc, strings.Join(contents, ", "))
}

// Location returns where the Object currently is.
func (obj *Object) Location() Location {
	return obj.loc
}

// IsTaken returns whether the Object is currently being carried by the player.
func (obj *Object) IsTaken() bool {
	return obj.loc.Kind == LocInventory
}

// IsOpen returns whether the Object is open. Objects that are not Openable are
// never open.
func (obj *Object) IsOpen() bool {
	return obj.Openable && obj.State == StateOpen
}

// Describe returns the description of the Object as shown to a player who
// examines it. This does not change with the Object's state.
func (obj *Object) Describe() string {
	if obj.Examinable {
		return fmt.Sprintf("The %s is %s", obj.Name, obj.Description)
	}
	return fmt.Sprintf("There's nothing significant about the %s", obj.Name)
}

// Open opens the Object. If it was closed, it becomes open and all of its
// contents are given in the Revealed field of the returned OpenResult. This is
// the only way contents are ever revealed.
//
// If the Object cannot be opened or is already open, an error is returned and
// nothing changes.
func (obj *Object) Open() (OpenResult, error) {
	if !obj.Openable {
		return OpenResult{}, bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "The %s cannot be opened.", obj.Name)
	}
	if obj.State == StateOpen {
		return OpenResult{}, bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "The %s is already open.", obj.Name)
	}

	obj.State = StateOpen

	res := OpenResult{
		Revealed: make([]*Object, len(obj.Contents)),
	}
	copy(res.Revealed, obj.Contents)

	if len(res.Revealed) < 1 {
		res.Message = fmt.Sprintf("You open the %s. It is empty.", obj.Name)
	} else {
		var names []string
		for _, c := range res.Revealed {
			names = append(names, c.Name)
		}
		res.Message = fmt.Sprintf("You open the %s. Inside you find %s.", obj.Name, util.MakeTextList(names, true))
	}

	return res, nil
}

// Close closes the Object. If the Object cannot be closed or is already
// closed, an error is returned and nothing changes. Objects that were revealed
// by opening it are not put back.
func (obj *Object) Close() (string, error) {
	if !obj.Openable {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "The %s cannot be closed.", obj.Name)
	}
	if obj.State == StateClosed {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "The %s is already closed.", obj.Name)
	}

	obj.State = StateClosed
	return fmt.Sprintf("You close the %s.", obj.Name), nil
}

// AddContent puts c inside of the Object. It is used when building the world.
func (obj *Object) AddContent(c *Object) {
	obj.Contents = append(obj.Contents, c)
	c.loc = InsideContainer(obj.Label)
}

// RemoveContent removes c from the contents of the Object. The check is done by
// identity, not by name. If c is not in the Object, this has no effect.
func (obj *Object) RemoveContent(c *Object) {
	idx := indexOfObject(obj.Contents, c)
	if idx == -1 {
		return
	}

	obj.Contents = append(obj.Contents[:idx], obj.Contents[idx+1:]...)

	// only clear the location if it still says it's in here; it may have
	// already been moved somewhere else.
	if c.loc == InsideContainer(obj.Label) {
		c.loc = Location{}
	}
}

// indexOfObject gives the index of obj in objs, compared by identity. If it is
// not in there, -1 is returned.
func indexOfObject(objs []*Object, obj *Object) int {
	for idx := range objs {
		if objs[idx] == obj {
			return idx
		}
	}
	return -1
}

// findObjectByName gives the first object in objs whose name is name, ignoring
// case. If there are none, nil is returned.
func findObjectByName(objs []*Object, name string) *Object {
	for _, o := range objs {
		if strings.EqualFold(o.Name, name) {
			return o
		}
	}
	return nil
}
