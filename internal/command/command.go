// Package command defines game command data types and handles parsing of
// commands from input sources.
package command

import "fmt"

// Verb is the kind of action a Command asks for. Every recognized action has
// its own Verb; anything else is VerbUnknown.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbQuit
	VerbMove
	VerbExamine
	VerbOpen
	VerbClose
	VerbTake
	VerbDrop
	VerbInventory
	VerbLook
	VerbHelp
	VerbDebug
)

// verbsByAction maps the canonical action word to its Verb.
var verbsByAction = map[string]Verb{
	"quit":      VerbQuit,
	"move":      VerbMove,
	"examine":   VerbExamine,
	"open":      VerbOpen,
	"close":     VerbClose,
	"take":      VerbTake,
	"drop":      VerbDrop,
	"inventory": VerbInventory,
	"look":      VerbLook,
	"help":      VerbHelp,
	"debug":     VerbDebug,
}

// String returns the canonical action word for the Verb.
func (v Verb) String() string {
	for action, verb := range verbsByAction {
		if verb == v {
			return action
		}
	}
	return fmt.Sprintf("Verb(%d)", int(v))
}

// VerbFor returns the Verb for the given action word. The action must already
// be normalized to lower case. If it is not a recognized action, VerbUnknown is
// returned.
func VerbFor(action string) Verb {
	if v, ok := verbsByAction[action]; ok {
		return v
	}
	return VerbUnknown
}

// Command is a command received from a game input source.
type Command struct {
	// Action is the verb word exactly as it was typed after normalization,
	// such as "move" or "take". For aliases, it is the canonical action the
	// alias expands to.
	Action string

	// Target is the thing the action is applied to, such as "north" in
	// "move north" or "brass key" in "take brass key". It is empty if no
	// target was given.
	Target string

	// Verb is the recognized kind of Action. It is VerbUnknown if Action is
	// not one the game knows about.
	Verb Verb
}

// HasTarget returns whether a target was given with the command.
func (cmd Command) HasTarget() bool {
	return cmd.Target != ""
}

func (cmd Command) String() string {
	if !cmd.HasTarget() {
		return fmt.Sprintf("Command(%q)", cmd.Action)
	}
	return fmt.Sprintf("Command(%q, %q)", cmd.Action, cmd.Target)
}
