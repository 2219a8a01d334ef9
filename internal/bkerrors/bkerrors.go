// Package bkerrors holds the error types used to report problems to the player.
// Every error in here carries a human-readable message meant to be shown
// in-game, separate from the more technical message returned by Error().
package bkerrors

import (
	"errors"
	"fmt"
)

// Kinds of interpreter error. An interpreter error created with one of the
// Wrap functions can be checked against these with errors.Is.
var (
	// ErrUnknownCommand is used when the verb of a command is not one the game
	// knows how to carry out.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingTarget is used when a command needs a target and none was
	// given.
	ErrMissingTarget = errors.New("missing target")

	// ErrNoSuchTarget is used when the target of a command does not refer to
	// anything in scope.
	ErrNoSuchTarget = errors.New("no such target")

	// ErrInvalidTransition is used when the target exists but cannot have the
	// command applied to it in its current state, such as opening something
	// that is already open or dropping something not being carried.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoExit is used when movement is attempted in a direction that has no
	// exit.
	ErrNoExit = errors.New("no exit in that direction")
)

// interpreterError is an error caused by attempting to interpret input. Either
// the input could not be understood or it specifies doing something that is
// impossible or not allowed at the current time.
//
// It includes a human-readable message to show to the player as well as a
// typical more technical "error message" style message.
type interpreterError struct {
	msg   string
	human string
	wrap  error
}

func (e *interpreterError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *interpreterError) GameMessage() string {
	return e.human
}

// Unwrap gives the error that the interpreterError wraps, if it wraps one.
func (e *interpreterError) Unwrap() error {
	return e.wrap
}

// WrapInterpreter returns a new interpreter error that has both the message to
// show the player and the technical description of the error, and that wraps
// the given error.
func WrapInterpreter(e error, game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("%v: %q", e, game)
	}
	return &interpreterError{
		msg:   technical,
		human: game,
		wrap:  e,
	}
}

// WrapInterpreterf returns a new interpreter error that has both the message to
// show the player and an automatically generated Error() description, and that
// wraps the given error. The arguments given are the error to wrap, then the
// format followed by its arguments.
func WrapInterpreterf(e error, gameFormat string, a ...interface{}) error {
	gameMessage := fmt.Sprintf(gameFormat, a...)
	return WrapInterpreter(e, gameMessage, "")
}

// GameMessage gets the message to display to the console for the given error.
// If it is one of the types defined in bkerrors, the special game message is
// returned. Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	var intErr *interpreterError
	if errors.As(err, &intErr) {
		return intErr.GameMessage()
	}
	return err.Error()
}

// Kind returns which of the interpreter error kinds err is. If it is not any
// of them, nil is returned.
func Kind(err error) error {
	kinds := []error{
		ErrUnknownCommand,
		ErrMissingTarget,
		ErrNoSuchTarget,
		ErrInvalidTransition,
		ErrNoExit,
	}

	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
