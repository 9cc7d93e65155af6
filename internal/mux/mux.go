// Package mux provides the command sinks that deliver screen commands to a
// running multiplexer session.
//
// This package is pure transport. It never interprets what the multiplexer
// answers; a non-zero exit status is the only failure signal it reports.
package mux

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sink executes a single multiplexer command against a session.
// Implementations must block until the command has completed.
type Sink interface {
	// Execute runs the command text (for example "split -v" or "select 3").
	Execute(ctx context.Context, command string) error
}

// ErrInvalidSessionName is returned for session names that are unsafe to
// place on a shell command line.
var ErrInvalidSessionName = errors.New("invalid session name")

// validSessionNameRe accepts screen session names, including the
// "pid.name" form screen prints in "screen -ls".
var validSessionNameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateSessionName checks that a session name contains only safe characters.
func ValidateSessionName(name string) error {
	if name == "" || !validSessionNameRe.MatchString(name) {
		return fmt.Errorf("%w %q: must match %s", ErrInvalidSessionName, name, validSessionNameRe.String())
	}
	return nil
}

// ExecutionError reports a command the multiplexer did not accept.
type ExecutionError struct {
	// Command is the full command line that was run.
	Command string
	// Output is whatever the command printed, trimmed.
	Output string
	Err    error
}

func (e *ExecutionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func newExecutionError(command string, output []byte, err error) *ExecutionError {
	return &ExecutionError{
		Command: command,
		Output:  strings.TrimSpace(string(output)),
		Err:     err,
	}
}
