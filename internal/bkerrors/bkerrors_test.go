package bkerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GameMessage(t *testing.T) {
	testCases := []struct {
		name   string
		input  error
		expect string
	}{
		{
			name:   "formatted message",
			input:  WrapInterpreterf(ErrNoSuchTarget, "I don't see any %q here", "lamp"),
			expect: `I don't see any "lamp" here`,
		},
		{
			name:   "wrapped kind",
			input:  WrapInterpreterf(ErrNoExit, "You can't go %s from here.", "up"),
			expect: "You can't go up from here.",
		},
		{
			name:   "interpreter error wrapped by fmt",
			input:  fmt.Errorf("advance: %w", WrapInterpreter(ErrMissingTarget, "Nope.", "technical")),
			expect: "Nope.",
		},
		{
			name:   "non-interpreter error",
			input:  errors.New("disk on fire"),
			expect: "disk on fire",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := GameMessage(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Kind(t *testing.T) {
	testCases := []struct {
		name   string
		input  error
		expect error
	}{
		{
			name:   "unknown command",
			input:  WrapInterpreterf(ErrUnknownCommand, "huh"),
			expect: ErrUnknownCommand,
		},
		{
			name:   "invalid transition",
			input:  WrapInterpreterf(ErrInvalidTransition, "The box is already open."),
			expect: ErrInvalidTransition,
		},
		{
			name:   "kind wrapped by fmt",
			input:  fmt.Errorf("move: %w", WrapInterpreterf(ErrNoExit, "You can't go up from here.")),
			expect: ErrNoExit,
		},
		{
			name:   "wraps something else",
			input:  WrapInterpreterf(errors.New("disk on fire"), "whatever"),
			expect: nil,
		},
		{
			name:   "not an interpreter error",
			input:  errors.New("disk on fire"),
			expect: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Kind(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_WrapInterpreter_technicalMessage(t *testing.T) {
	assert := assert.New(t)

	err := WrapInterpreter(ErrNoSuchTarget, "You don't see any lamp here.", "")

	assert.True(errors.Is(err, ErrNoSuchTarget))
	assert.Equal(`no such target: "You don't see any lamp here."`, err.Error())
}
