package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bork/internal/bkerrors"
	"github.com/dekarrin/bork/internal/command"
	"github.com/dekarrin/bork/internal/util"
)

// This file contains functions for handling the debug commands of game.State.

// ExecuteCommandDebug executes the DEBUG command with the arguments in the
// provided Command and returns the output. The first word of the target picks
// what is debugged and the rest is passed to it.
func (gs *State) ExecuteCommandDebug(cmd command.Command) (string, error) {
	parts := strings.SplitN(cmd.Target, " ", 2)
	arg := ""
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch parts[0] {
	case "room":
		return gs.executeDebugRoom(strings.ToUpper(arg))
	case "objects":
		return gs.executeDebugObjects()
	case "":
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "Debug what, exactly?")
	default:
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrNoSuchTarget, "I don't know how to debug %s.", parts[0])
	}
}

func (gs *State) executeDebugRoom(roomLabel string) (string, error) {
	if roomLabel == "" {
		return gs.Player.Location.String() + "\n\n(Type 'DEBUG ROOM label' to teleport to that room)", nil
	}

	dest := gs.World.Room(roomLabel)
	if dest == nil {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrNoSuchTarget, "There doesn't seem to be any rooms with label %q in this world", roomLabel)
	}

	gs.Player.Location = dest

	return fmt.Sprintf("Poof! You are now in %q", roomLabel), nil
}

func (gs *State) executeDebugObjects() (string, error) {
	var sb strings.Builder

	for _, label := range util.OrderedKeys(gs.World.Rooms) {
		for _, obj := range gs.World.Rooms[label].Objects {
			writeObjectTree(&sb, obj, 0)
		}
	}
	for _, obj := range gs.Player.Inventory {
		writeObjectTree(&sb, obj, 0)
	}

	if sb.Len() == 0 {
		return "There are no objects in this world.", nil
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func writeObjectTree(sb *strings.Builder, obj *Object, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(obj.String())
	sb.WriteRune('\n')
	for _, c := range obj.Contents {
		writeObjectTree(sb, c, depth+1)
	}
}
