/*
Bork starts an interactive session of Bork I: The Tiny Subterranean Syndicate.

It loads a world and starts the game in the world's starting room. The game then
prints what is happening to stdout and reads commands from stdin until the game
is over or the "QUIT" command is input.

Usage:

	bork [flags]

The flags are:

	-v, --version
		Give the current version of Bork and then exit.

	-w, --world FILE
		Use the provided BKW resource file for the world. If not given, will
		default to the value of environment variable BORK_WORLD, and if that is
		not given, the built-in world is used.

	-d, --direct
		Force reading directly from the console as opposed to using GNU readline
		based routines for reading command input even if launched in a tty with
		stdin and stdout. Can also be set with BORK_DIRECT.

	-n, --name NAME
		Use the given name for the player. Can also be set with
		BORK_PLAYER_NAME. Defaults to "Player".

	--width N
		Wrap output at N columns. Must be at least 20. Can also be set with
		BORK_WIDTH. Defaults to 80.

	--debug
		Enable the DEBUG command. Can also be set with BORK_DEBUG.

	--log-level LEVEL
		Only log messages at LEVEL or above. LEVEL is one of debug, info, warn,
		or error. Can also be set with BORK_LOG_LEVEL. Defaults to warn.

	--log-file FILE
		Write logs to FILE instead of stderr. Can also be set with
		BORK_LOG_FILE.

	--history FILE
		Keep command history in FILE when using readline.

Once a session has started, the user input will be parsed for Bork commands.
For an explanation of the commands, type "HELP" once in a session. To exit, type
"QUIT".
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dekarrin/bork"
	"github.com/dekarrin/bork/internal/config"
	"github.com/dekarrin/bork/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// initializing the engine.
	ExitInitError
)

var (
	returnCode int = ExitSuccess

	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version of Bork and then exit.")
	flagWorld    = pflag.StringP("world", "w", "", "Use the given BKW world data or manifest file instead of the built-in world.")
	flagDirect   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline.")
	flagName     = pflag.StringP("name", "n", "", "Use the given name for the player.")
	flagWidth    = pflag.Int("width", 0, "Wrap output at the given number of columns.")
	flagDebug    = pflag.Bool("debug", false, "Enable the DEBUG command.")
	flagLogLevel = pflag.String("log-level", "", "Only log messages at this level or above (debug, info, warn, error).")
	flagLogFile  = pflag.String("log-file", "", "Write logs to the given file instead of stderr.")
	flagHistory  = pflag.String("history", "", "Keep readline command history in the given file.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\nDo -h for help.\n", err.Error())
		returnCode = ExitInitError
		return
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer closeLog()

	gameEng, initErr := bork.New(os.Stdin, os.Stdout, bork.Options{
		WorldFile:   cfg.World,
		ForceDirect: cfg.Direct,
		HistoryFile: *flagHistory,
		Width:       cfg.Width,
		PlayerName:  cfg.PlayerName,
		Debug:       cfg.Debug,
		Logger:      logger,
	})
	if initErr != nil {
		logger.Error("could not start game", "error", initErr)
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	err = gameEng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}

// applyFlags overwrites the values in cfg that came from the environment with
// any that were explicitly given on the command line.
func applyFlags(cfg *config.Config) {
	if pflag.Lookup("world").Changed {
		cfg.World = *flagWorld
	}
	if pflag.Lookup("direct").Changed {
		cfg.Direct = *flagDirect
	}
	if pflag.Lookup("name").Changed {
		cfg.PlayerName = *flagName
	}
	if pflag.Lookup("width").Changed {
		cfg.Width = *flagWidth
	}
	if pflag.Lookup("debug").Changed {
		cfg.Debug = *flagDebug
	}
	if pflag.Lookup("log-level").Changed {
		cfg.LogLevel = *flagLogLevel
	}
	if pflag.Lookup("log-file").Changed {
		cfg.LogFile = *flagLogFile
	}
}

// openLogger creates the logger described by cfg. The returned function must
// be called to close the log file, if one was opened.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFunc := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFunc = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFunc, nil
}
