// Package bork contains a CLI-driven engine for getting commands and advancing
// the game state continuously until the user quits.
package bork

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dekarrin/bork/internal/bkw"
	"github.com/dekarrin/bork/internal/command"
	"github.com/dekarrin/bork/internal/game"
	"github.com/dekarrin/bork/internal/input"
	"github.com/dekarrin/rosed"
)

// Title is the full name of the game as shown in the banner.
const Title = "Bork I: The Tiny Subterranean Syndicate"

// Options holds the optional settings for an Engine.
type Options struct {
	// WorldFile is the BKW data or manifest file to load the world from. If
	// empty, the built-in world is used.
	WorldFile string

	// ForceDirect makes the Engine read input directly from the input stream
	// even when readline could be used.
	ForceDirect bool

	// HistoryFile is where readline keeps command history. It has no effect
	// when input is read directly.
	HistoryFile string

	// Width is the column output is wrapped at. If zero or less,
	// game.DefaultWidth is used. It is never narrower than game.MinWidth.
	Width int

	// PlayerName is the name of the player.
	PlayerName string

	// Debug enables the DEBUG command.
	Debug bool

	// Logger receives engine and game logs. If nil, nothing is logged.
	Logger *slog.Logger
}

// Engine contains the things needed to run a game from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	state       *game.State
	in          command.Reader
	out         *bufio.Writer
	render      *lipgloss.Renderer
	width       int
	forceDirect bool
	running     bool
	log         *slog.Logger
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and a
// buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. Readline is only used when the streams are
// stdin and stdout and opts.ForceDirect is not set.
func New(inputStream io.Reader, outputStream io.Writer, opts Options) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}
	if opts.Width <= 0 {
		opts.Width = game.DefaultWidth
	} else if opts.Width < game.MinWidth {
		opts.Width = game.MinWidth
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var world *game.World
	var err error
	if opts.WorldFile == "" {
		world, err = bkw.LoadDefault()
	} else {
		world, err = bkw.LoadResourceBundle(opts.WorldFile)
	}
	if err != nil {
		return nil, fmt.Errorf("load world: %w", err)
	}
	logger.Debug("world loaded", "file", opts.WorldFile, "rooms", len(world.Rooms), "start", world.Start.Label)

	state, err := game.New(world, game.Options{
		PlayerName: opts.PlayerName,
		Width:      opts.Width,
		Debug:      opts.Debug,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing game engine: %w", err)
	}

	eng := &Engine{
		state:       state,
		out:         bufio.NewWriter(outputStream),
		render:      lipgloss.NewRenderer(outputStream),
		width:       opts.Width,
		forceDirect: opts.ForceDirect,
		log:         logger,
	}

	useReadline := !opts.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		eng.in, err = input.NewInteractiveReader(input.DefaultPrompt, opts.HistoryFile)
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// RunUntilQuit begins reading commands from the streams and applying them to
// the game until the QUIT command is received or input runs out. Running out
// of input is treated as though QUIT was given. Only errors reading input or
// writing output are returned.
//
// Before the first command is read, the banner is shown, followed by the
// world's intro if it has one and then the description of the starting room.
func (eng *Engine) RunUntilQuit() error {
	opening := eng.banner() + "\n"
	if intro := eng.state.World.Intro; intro != "" {
		opening += rosed.Edit(intro).Wrap(eng.width).String() + "\n\n"
	}
	opening += eng.state.HandleCommand("look") + "\n\n"
	if err := eng.write(opening); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	for eng.state.Running() {
		cmd, err := command.Get(eng.in)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				eng.log.Error("could not read command", "error", err)
				return fmt.Errorf("get user command: %w", err)
			}
			cmd = command.Parse("quit")
		}

		output := eng.state.Advance(cmd)
		if err := eng.write(output + "\n\n"); err != nil {
			return err
		}
	}

	return nil
}

// banner gives the title shown at the start of the game. Styling is dropped
// when the output is not a terminal.
func (eng *Engine) banner() string {
	titleStyle := eng.render.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))
	ruleStyle := eng.render.NewStyle().
		Foreground(lipgloss.Color("240"))

	ruleLen := len(Title)
	if ruleLen > eng.width {
		ruleLen = eng.width
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(Title))
	sb.WriteRune('\n')
	if eng.forceDirect {
		sb.WriteString("(direct input mode)\n")
	}
	sb.WriteString(ruleStyle.Render(strings.Repeat("=", ruleLen)))
	sb.WriteRune('\n')

	return sb.String()
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		eng.log.Error("could not write output", "error", err)
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		eng.log.Error("could not flush output", "error", err)
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
