// Package input contains identifiers used in getting Bork command input from
// CLI or other sources of input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt shown by an InteractiveCommandReader when none
// is given.
const DefaultPrompt = "> "

// DirectCommandReader implements command.Reader and reads commands from any
// generic input stream directly. It does not sanitize the input of control and
// escape sequences, so it is best suited to piped or scripted input.
//
// Create one with [NewDirectReader].
type DirectCommandReader struct {
	r *bufio.Reader
}

// NewDirectReader creates a new DirectCommandReader that reads lines from r.
func NewDirectReader(r io.Reader) *DirectCommandReader {
	return &DirectCommandReader{
		r: bufio.NewReader(r),
	}
}

// ReadCommand reads the next non-blank line, with surrounding whitespace
// removed. See [readLine] for the exact behavior.
func (dcr *DirectCommandReader) ReadCommand() (string, error) {
	return readLine(func() (string, error) {
		return dcr.r.ReadString('\n')
	})
}

// Close does nothing; DirectCommandReader holds no resources of its own.
func (dcr *DirectCommandReader) Close() error {
	return nil
}

// InteractiveCommandReader implements command.Reader and reads commands from a
// terminal with readline, which gives line editing and command history and
// keeps editing escape sequences out of the input.
//
// Create one with [NewInteractiveReader] and call Close when done with it.
type InteractiveCommandReader struct {
	rl *readline.Instance
}

// NewInteractiveReader creates a new InteractiveCommandReader on stdin and
// stdout. If prompt is empty, DefaultPrompt is used. If historyFile is not
// empty, command history is kept in that file across sessions.
func NewInteractiveReader(prompt string, historyFile string) (*InteractiveCommandReader, error) {
	if prompt == "" {
		prompt = DefaultPrompt
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveCommandReader{rl: rl}, nil
}

// ReadCommand reads the next non-blank line, with surrounding whitespace
// removed. See [readLine] for the exact behavior. An interrupt (Ctrl-C) is
// reported as io.EOF.
func (icr *InteractiveCommandReader) ReadCommand() (string, error) {
	return readLine(func() (string, error) {
		line, err := icr.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	})
}

// Close tears down readline and restores the terminal.
func (icr *InteractiveCommandReader) Close() error {
	return icr.rl.Close()
}

// readLine calls next until it gives a line that is not blank once trimmed, and
// returns that line trimmed.
//
// A final line with no terminating newline is still returned; the io.EOF that
// came with it is given on the following call instead. When there is no more
// input the returned string is empty and the error is io.EOF. Any other error
// from next is returned as-is with an empty string.
func readLine(next func() (string, error)) (string, error) {
	for {
		raw, err := next()
		if err != nil && (err != io.EOF || raw == "") {
			return "", err
		}

		line := strings.TrimSpace(raw)
		if line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}
