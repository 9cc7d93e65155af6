package mux

import (
	"context"
	"sync"
)

// Recorder is a Sink that only remembers what it was asked to run.
// It backs dry runs ("plan") and tests.
type Recorder struct {
	mu       sync.Mutex
	commands []string

	// FailAt, when set, is consulted before recording each command. A
	// non-nil error is returned and the command is not recorded.
	FailAt func(n int, command string) error
}

// Execute records command.
func (r *Recorder) Execute(ctx context.Context, command string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAt != nil {
		if err := r.FailAt(len(r.commands), command); err != nil {
			return err
		}
	}
	r.commands = append(r.commands, command)
	return nil
}

// Commands returns a copy of everything recorded so far.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.commands...)
}

// Reset forgets all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = nil
	r.mu.Unlock()
}
