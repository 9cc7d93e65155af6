package mux

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	lines  []string
	output []byte
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, line string) ([]byte, error) {
	f.lines = append(f.lines, line)
	return f.output, f.err
}

func TestScreen_ExecuteEchoesAndRuns(t *testing.T) {
	runner := &fakeRunner{}
	var echo bytes.Buffer
	s, err := NewScreen("beef", WithRunner(runner), WithEcho(&echo))
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}

	if err := s.Execute(context.Background(), "split -v"); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "screen -S beef -X split -v"
	if len(runner.lines) != 1 || runner.lines[0] != want {
		t.Fatalf("runner lines: got %q, want [%q]", runner.lines, want)
	}
	if echo.String() != want+"\n" {
		t.Errorf("echo: got %q, want %q", echo.String(), want+"\n")
	}
}

func TestScreen_QuietDoesNotEcho(t *testing.T) {
	runner := &fakeRunner{}
	var echo bytes.Buffer
	s, err := NewScreen("beef", WithRunner(runner), WithEcho(&echo), WithQuiet(true))
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}

	if err := s.Execute(context.Background(), "focus"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if echo.Len() != 0 {
		t.Errorf("expected no echo in quiet mode, got %q", echo.String())
	}
	if len(runner.lines) != 1 {
		t.Errorf("expected the command to still run, got %d runs", len(runner.lines))
	}
}

func TestScreen_CustomBinary(t *testing.T) {
	runner := &fakeRunner{}
	s, err := NewScreen("1234.work", WithRunner(runner), WithQuiet(true), WithBinary("/usr/local/bin/screen"))
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	if err := s.Execute(context.Background(), "select 2"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := runner.lines[0], "/usr/local/bin/screen -S 1234.work -X select 2"; got != want {
		t.Errorf("line: got %q, want %q", got, want)
	}
}

func TestScreen_FailureIsExecutionError(t *testing.T) {
	cause := errors.New("exit status 1")
	runner := &fakeRunner{err: cause, output: []byte("No screen session found.\n")}
	s, err := NewScreen("beef", WithRunner(runner), WithQuiet(true))
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}

	err = s.Execute(context.Background(), "screen")
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecutionError, got %T: %v", err, err)
	}
	if execErr.Command != "screen -S beef -X screen" {
		t.Errorf("Command: got %q", execErr.Command)
	}
	if execErr.Output != "No screen session found." {
		t.Errorf("Output: got %q", execErr.Output)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected error to unwrap to the runner error")
	}
}

func TestValidateSessionName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"beef", true},
		{"1234.pts-0.host", true},
		{"my_session-2", true},
		{"", false},
		{"a b", false},
		{"x;rm -rf /", false},
		{"$(id)", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionName(tt.name)
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.name, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidSessionName) {
				t.Errorf("expected ErrInvalidSessionName for %q, got %v", tt.name, err)
			}
		})
	}
}

func TestNewScreen_RejectsUnsafeSession(t *testing.T) {
	if _, err := NewScreen("a;b"); !errors.Is(err, ErrInvalidSessionName) {
		t.Fatalf("expected ErrInvalidSessionName, got %v", err)
	}
}
