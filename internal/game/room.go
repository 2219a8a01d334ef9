// Package game implements game state and advancement.
package game

// File room.go includes symbols for holding data on the rooms and exits between
// them.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bork/internal/util"
)

// Room is a scene in the game. It contains a series of exits that lead to other
// rooms, a description, and the objects that are currently in it.
type Room struct {
	// Label is how the room is referred to programmatically. It must be unique
	// from all other Rooms.
	Label string

	// Name is used in short descriptions, such as the heading shown when the
	// player looks around.
	Name string

	// Description is the first part of what is shown when the room is
	// described.
	Description string

	// Objects is the objects currently in the room. This can be changed over
	// time.
	Objects []*Object

	// exits maps a normalized direction to the room it leads to. exitOrder
	// keeps track of the order the directions were added in so that they are
	// always described the same way, and exitNames holds each direction as it
	// was given to AddExit.
	exits     map[string]*Room
	exitNames map[string]string
	exitOrder []string
}

// NormalizeDirection gives the form of a direction that exits are keyed by:
// lower-case, with runs of whitespace collapsed to a single space and none at
// either end.
func NormalizeDirection(dir string) string {
	return strings.Join(strings.Fields(strings.ToLower(dir)), " ")
}

// NewRoom creates a new Room with no exits or objects.
func NewRoom(label, name, description string) *Room {
	return &Room{
		Label:       label,
		Name:        name,
		Description: description,
		exits:       make(map[string]*Room),
		exitNames:   make(map[string]string),
	}
}

func (room *Room) String() string {
	var exits []string
	for _, dir := range room.exitOrder {
		exits = append(exits, fmt.Sprintf("%s -> %s", room.exitNames[dir], room.exits[dir].Label))
	}
	exitsStr := strings.Join(exits, ", ")

	var objs []string
	for _, obj := range room.Objects {
		objs = append(objs, obj.Label)
	}
	objsStr := strings.Join(objs, ", ")

	return fmt.Sprintf("Room<%s %q EXITS: %s OBJECTS: %s>", room.Label, room.Name, exitsStr, objsStr)
}

// AddExit adds an exit from this room in the given direction that leads to
// dest. If there is already an exit in that direction, it is replaced but keeps
// its original position and spelling. The direction can be any string; nothing
// checks that it is a compass direction. Directions that are the same after
// NormalizeDirection are the same exit.
func (room *Room) AddExit(direction string, dest *Room) {
	if room.exits == nil {
		room.exits = make(map[string]*Room)
	}
	if room.exitNames == nil {
		room.exitNames = make(map[string]string)
	}

	key := NormalizeDirection(direction)
	if _, exists := room.exits[key]; !exists {
		room.exitOrder = append(room.exitOrder, key)
		room.exitNames[key] = direction
	}
	room.exits[key] = dest
}

// RoomInDirection returns the room that the exit in the given direction leads
// to. Case and extra whitespace in direction are ignored. If there is no exit
// that way, nil is returned.
func (room *Room) RoomInDirection(direction string) *Room {
	return room.exits[NormalizeDirection(direction)]
}

// Exits returns the directions of all exits from the room, in the order they
// were added and as they were given to AddExit.
func (room *Room) Exits() []string {
	dirs := make([]string, len(room.exitOrder))
	for i, key := range room.exitOrder {
		dirs[i] = room.exitNames[key]
	}
	return dirs
}

// AddObject places obj in the room.
func (room *Room) AddObject(obj *Object) {
	room.Objects = append(room.Objects, obj)
	obj.loc = InRoom(room.Label)
}

// RemoveObject removes obj from the room. The check is done by identity, not
// by name. If obj is already not in the room, this has no effect.
func (room *Room) RemoveObject(obj *Object) {
	idx := indexOfObject(room.Objects, obj)
	if idx == -1 {
		return
	}

	room.Objects = append(room.Objects[:idx], room.Objects[idx+1:]...)

	if obj.loc == InRoom(room.Label) {
		obj.loc = Location{}
	}
}

// GetObject returns the object in the room with the given name. If more than
// one has that name, the one that was put in the room first is returned. If
// none do, nil is returned.
func (room *Room) GetObject(name string) *Object {
	return findObjectByName(room.Objects, name)
}

// Describe returns the full description of the room as shown to the player:
// its Description, then what objects are in it, then which ways the player can
// go. Each part is its own paragraph.
func (room *Room) Describe() string {
	var sb strings.Builder

	sb.WriteString(room.Description)
	sb.WriteString("\n\n")

	if len(room.Objects) > 0 {
		var names []string
		for _, obj := range room.Objects {
			names = append(names, obj.Name)
		}
		sb.WriteString("You see ")
		sb.WriteString(util.MakeTextList(names, true))
		sb.WriteString(".")
	} else {
		sb.WriteString("There is nothing here.")
	}

	sb.WriteString("\n\n")

	if len(room.exitOrder) > 0 {
		sb.WriteString("Exits: ")
		sb.WriteString(util.MakeTextList(room.Exits(), false))
		sb.WriteString(".")
	} else {
		sb.WriteString("There are no obvious exits.")
	}

	return sb.String()
}
