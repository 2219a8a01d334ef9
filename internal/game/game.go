package game

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dekarrin/bork/internal/bkerrors"
	"github.com/dekarrin/bork/internal/command"
	"github.com/dekarrin/bork/internal/util"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

var commandHelp = [][2]string{
	{"CLOSE [object]", "close something that is open"},
	{"DROP [object]", "put down something you are carrying"},
	{"EXAMINE [object]", "show the description of something here or in your inventory"},
	{"HELP/H/?", "show this help"},
	{"INVENTORY/I", "show what you are carrying"},
	{"LOOK/L", "show where you are, or examine something with LOOK [object]"},
	{"MOVE [direction]", "go to another room via one of the exits"},
	{"OPEN [object]", "open something and see what is inside"},
	{"QUIT", "end the game"},
	{"TAKE [object]", "pick up something in the room"},
}

var textFormatOptions = rosed.Options{
	PreserveParagraphs: true,
	IndentStr:          "  ",
}

const (
	// DefaultWidth is the width output is wrapped to when none is given.
	DefaultWidth = 80

	// MinWidth is the narrowest width output is wrapped to. Anything narrower
	// splits ordinary words across lines.
	MinWidth = 20
)

// Status is whether a game is still being played.
type Status int

const (
	StatusRunning Status = iota
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusTerminated:
		return "TERMINATED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Options holds the optional settings for a State.
type Options struct {
	// PlayerName is the name of the player. If not set, "Player" is used.
	PlayerName string

	// Width is how wide each line of output can be. If zero or less, it is
	// assumed to be DefaultWidth. Widths below MinWidth are raised to MinWidth.
	Width int

	// Debug enables the DEBUG command.
	Debug bool

	// Logger receives debug logs of every command. If nil, nothing is logged.
	Logger *slog.Logger
}

// State is the game's entire state for one session: the world, the player in
// it, and whether the game is still going.
type State struct {
	// ID uniquely identifies the session. It is attached to all log output.
	ID uuid.UUID

	// World is all rooms that exist and their current state.
	World *World

	// Player is the player and what they are carrying.
	Player *Player

	status Status
	width  int
	debug  bool
	log    *slog.Logger
}

// New creates a new State for playing in the given world. The player starts in
// world.Start.
func New(world *World, opts Options) (*State, error) {
	if world == nil || world.Start == nil {
		return nil, fmt.Errorf("world must have a starting room")
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	} else if opts.Width < MinWidth {
		opts.Width = MinWidth
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "Player"
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate session ID: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	gs := &State{
		ID:     id,
		World:  world,
		Player: NewPlayer(opts.PlayerName, world.Start),
		status: StatusRunning,
		width:  opts.Width,
		debug:  opts.Debug,
		log:    logger.With("session", id.String()),
	}

	gs.log.Info("session started", "player", gs.Player.Name, "start", world.Start.Label)

	return gs, nil
}

// Status returns whether the game is running or has been quit.
func (gs *State) Status() Status {
	return gs.status
}

// Running returns whether the game is still being played.
func (gs *State) Running() bool {
	return gs.status == StatusRunning
}

// HandleCommand parses the raw text of a command and advances the game with it,
// returning the narration of what happened.
func (gs *State) HandleCommand(raw string) string {
	return gs.Advance(command.Parse(raw))
}

// Advance advances the game state based on the given command and returns the
// narration to show the player. It never fails; a command that cannot be
// carried out results in narration describing why, and the state is not
// changed.
//
// Once QUIT has been given, no other command has any effect.
func (gs *State) Advance(cmd command.Command) string {
	if gs.status == StatusTerminated {
		return "The game is over."
	}

	gs.log.Debug("dispatching command", "action", cmd.Action, "target", cmd.Target, "room", gs.Player.Location.Label)

	var output string
	var err error

	switch cmd.Verb {
	case command.VerbQuit:
		output, err = gs.ExecuteCommandQuit(cmd)
	case command.VerbMove:
		output, err = gs.ExecuteCommandMove(cmd)
	case command.VerbExamine:
		output, err = gs.ExecuteCommandExamine(cmd)
	case command.VerbOpen:
		output, err = gs.ExecuteCommandOpen(cmd)
	case command.VerbClose:
		output, err = gs.ExecuteCommandClose(cmd)
	case command.VerbTake:
		output, err = gs.ExecuteCommandTake(cmd)
	case command.VerbDrop:
		output, err = gs.ExecuteCommandDrop(cmd)
	case command.VerbInventory:
		output, err = gs.ExecuteCommandInventory(cmd)
	case command.VerbLook:
		output, err = gs.ExecuteCommandLook(cmd)
	case command.VerbHelp:
		output, err = gs.ExecuteCommandHelp(cmd)
	case command.VerbDebug:
		if gs.debug {
			output, err = gs.ExecuteCommandDebug(cmd)
		} else {
			err = unknownCommand(cmd)
		}
	default:
		err = unknownCommand(cmd)
	}

	if err != nil {
		gs.log.Debug("command not carried out", "action", cmd.Action, "kind", bkerrors.Kind(err), "error", err)
		output = bkerrors.GameMessage(err)
	} else if cmd.Verb == command.VerbHelp || cmd.Verb == command.VerbDebug {
		// already laid out line by line; wrapping would join the lines
		return output
	}

	wrapped := rosed.Edit(output).WithOptions(textFormatOptions).Wrap(gs.width).String()
	return strings.TrimRight(wrapped, "\n")
}

func unknownCommand(cmd command.Command) error {
	return bkerrors.WrapInterpreterf(bkerrors.ErrUnknownCommand, "I don't understand the command: %s", cmd.Action)
}

func noSuchTarget(target string) error {
	return bkerrors.WrapInterpreterf(bkerrors.ErrNoSuchTarget, "You don't see any %s here.", target)
}

// ExecuteCommandQuit executes the QUIT command. It ends the game.
func (gs *State) ExecuteCommandQuit(cmd command.Command) (string, error) {
	gs.status = StatusTerminated
	gs.log.Info("session ended")
	return "Thanks for playing! Goodbye.", nil
}

// ExecuteCommandMove executes the MOVE command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandMove(cmd command.Command) (string, error) {
	if !cmd.HasTarget() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "You can't go that way.")
	}

	return gs.Player.Move(cmd.Target)
}

// ExecuteCommandExamine executes the EXAMINE command with the arguments in the
// provided Command and returns the output. Objects in the room are checked
// before objects in the inventory.
func (gs *State) ExecuteCommandExamine(cmd command.Command) (string, error) {
	if !cmd.HasTarget() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "What do you want to examine?")
	}

	obj := gs.Player.Location.GetObject(cmd.Target)
	if obj == nil {
		obj = gs.Player.GetItemFromInventory(cmd.Target)
	}
	if obj == nil {
		return "", noSuchTarget(cmd.Target)
	}

	return gs.Player.ExamineObject(obj), nil
}

// ExecuteCommandOpen executes the OPEN command with the arguments in the
// provided Command and returns the output. Anything revealed by opening is
// moved out of the opened object and into the room.
func (gs *State) ExecuteCommandOpen(cmd command.Command) (string, error) {
	if !cmd.HasTarget() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "What do you want to open?")
	}

	room := gs.Player.Location
	obj := room.GetObject(cmd.Target)
	if obj == nil {
		return "", noSuchTarget(cmd.Target)
	}

	res, err := obj.Open()
	if err != nil {
		return "", err
	}

	for _, revealed := range res.Revealed {
		room.AddObject(revealed)
		obj.RemoveContent(revealed)
	}

	return res.Message, nil
}

// ExecuteCommandClose executes the CLOSE command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandClose(cmd command.Command) (string, error) {
	if !cmd.HasTarget() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "What do you want to close?")
	}

	obj := gs.Player.Location.GetObject(cmd.Target)
	if obj == nil {
		return "", noSuchTarget(cmd.Target)
	}

	return obj.Close()
}

// ExecuteCommandTake executes the TAKE command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandTake(cmd command.Command) (string, error) {
	if !cmd.HasTarget() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "What do you want to take?")
	}

	if held := gs.Player.GetItemFromInventory(cmd.Target); held != nil {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "You already have the %s.", held.Name)
	}

	room := gs.Player.Location
	obj := room.GetObject(cmd.Target)
	if obj == nil {
		return "", noSuchTarget(cmd.Target)
	}
	if !obj.Takeable {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "You can't take the %s.", obj.Name)
	}

	// first remove the object from the room, then add it to inventory.
	room.RemoveObject(obj)
	output, err := gs.Player.TakeObject(obj)
	if err != nil {
		// put it back so it is never lost
		room.AddObject(obj)
		return "", err
	}

	return output, nil
}

// ExecuteCommandDrop executes the DROP command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandDrop(cmd command.Command) (string, error) {
	if !cmd.HasTarget() {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrMissingTarget, "What do you want to drop?")
	}

	obj := gs.Player.GetItemFromInventory(cmd.Target)
	if obj == nil {
		return "", bkerrors.WrapInterpreterf(bkerrors.ErrInvalidTransition, "You can't drop the %s; you don't have it.", cmd.Target)
	}

	output, err := gs.Player.DropObject(obj)
	if err != nil {
		return "", err
	}

	gs.Player.Location.AddObject(obj)

	return output, nil
}

// ExecuteCommandInventory executes the INVENTORY command and returns the
// output.
func (gs *State) ExecuteCommandInventory(cmd command.Command) (string, error) {
	return gs.Player.DescribeInventory(), nil
}

// ExecuteCommandLook executes the LOOK command with the arguments in the
// provided Command and returns the output. With no target, the current room is
// described; with one, it is the same as EXAMINE.
func (gs *State) ExecuteCommandLook(cmd command.Command) (string, error) {
	if cmd.HasTarget() {
		return gs.ExecuteCommandExamine(cmd)
	}

	heading := util.TitleCase(gs.Player.Location.Name)
	return heading + "\n\n" + gs.Player.DescribeCurrentLocation(), nil
}

// ExecuteCommandHelp executes the HELP command and returns the output.
func (gs *State) ExecuteCommandHelp(cmd command.Command) (string, error) {
	output := rosed.Edit("").WithOptions(
		textFormatOptions.
			WithParagraphSeparator("\n").
			WithNoTrailingLineSeparators(true)).
		Insert(rosed.End, "Here are the commands you can use:\n").
		InsertDefinitionsTable(rosed.End, commandHelp, gs.width).
		String()

	return output, nil
}
