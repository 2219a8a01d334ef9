package command

import (
	"fmt"
)

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single user command. It will block until one is
	// ready. If there is an error or output is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was encountered
	// on a call but some input was received, the input will be returned and
	// error will be nil, and the next call to ReadCommand will return "",
	// io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created by
	// the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}

// Get obtains a single command from input by reading a line from the provided
// Reader and parsing it. Since parsing never fails, the only errors returned
// are from reading; when the Reader reaches end of input, the returned error
// wraps io.EOF.
//
// Note that this function does not check if the command is executable, only
// reads it.
func Get(cmdStream Reader) (Command, error) {
	input, err := cmdStream.ReadCommand()
	if err != nil {
		return Command{}, fmt.Errorf("could not get input: %w", err)
	}

	return Parse(input), nil
}
