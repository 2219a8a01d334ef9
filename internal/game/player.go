package game

import (
	"fmt"

	"github.com/dekarrin/bork/internal/bkerrors"
	"github.com/dekarrin/bork/internal/util"
)

// Player is the person playing the game: where they are and what they are
// carrying.
type Player struct {
	// Name is the name of the player.
	Name string

	// Location is the room the player is currently in.
	Location *Room

	// Inventory is the objects the player is carrying, in the order they were
	// picked up.
	Inventory []*Object
}

// NewPlayer creates a new Player with the given name standing in start and
// carrying nothing.
func NewPlayer(name string, start *Room) *Player {
	return &Player{
		Name:     name,
		Location: start,
	}
}

// Move moves the player through the exit in the given direction. If there is no
// exit that way, an error is returned and the player stays where they are.
func (p *Player) Move(direction string) (string, error) {
	next := p.Location.RoomInDirection(direction)
	if next == nil {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrNoExit, "You can't go %s from here.", direction)
	}

	p.Location = next
	return fmt.Sprintf("You move %s.", direction), nil
}

// TakeObject adds obj to the player's inventory. It must be takeable and not
// already carried. The caller is responsible for having removed obj from
// wherever it was before calling this; Player never modifies a Room.
func (p *Player) TakeObject(obj *Object) (string, error) {
	if obj.IsTaken() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "You already have the %s.", obj.Name)
	}
	if !obj.Takeable {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "You can't take the %s.", obj.Name)
	}

	p.Inventory = append(p.Inventory, obj)
	obj.loc = InInventory()

	return fmt.Sprintf("You take the %s.", obj.Name), nil
}

// DropObject removes obj from the player's inventory. The check is done by
// identity. On success the object is left nowhere; the caller is responsible for
// putting it in a room.
func (p *Player) DropObject(obj *Object) (string, error) {
	idx := indexOfObject(p.Inventory, obj)
	if idx == -1 {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "You can't drop the %s; you don't have it.", obj.Name)
	}

	p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
	obj.loc = Location{}

	return fmt.Sprintf("You drop the %s.", obj.Name), nil
}

// GetItemFromInventory returns the carried object with the given name. If more
// than one has that name, the one that was picked up first is returned. If none
// do, nil is returned.
func (p *Player) GetItemFromInventory(name string) *Object {
	return findObjectByName(p.Inventory, name)
}

// ExamineObject returns the description of obj. It does not matter where obj is.
func (p *Player) ExamineObject(obj *Object) string {
	return obj.Describe()
}

// DescribeCurrentLocation returns the description of the room the player is in.
func (p *Player) DescribeCurrentLocation() string {
	return p.Location.Describe()
}

// DescribeInventory returns a sentence listing everything the player carries.
func (p *Player) DescribeInventory() string {
	if len(p.Inventory) < 1 {
		return "You are carrying nothing."
	}

	var names []string
	for _, obj := range p.Inventory {
		names = append(names, obj.Name)
	}

	return fmt.Sprintf("You are carrying %s.", util.MakeTextList(names, true))
}
