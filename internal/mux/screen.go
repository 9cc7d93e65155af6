package mux

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// CommandRunner runs one shell command line and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, line string) ([]byte, error)
}

// Screen sends commands to a GNU screen session with "screen -S <session> -X".
type Screen struct {
	session string
	binary  string
	quiet   bool
	echo    io.Writer
	runner  CommandRunner
	logger  *slog.Logger
}

// ScreenOption customizes a Screen sink.
type ScreenOption func(*Screen)

// WithBinary overrides the multiplexer binary (default "screen").
func WithBinary(binary string) ScreenOption {
	return func(s *Screen) { s.binary = binary }
}

// WithQuiet suppresses echoing each command line before it runs.
func WithQuiet(quiet bool) ScreenOption {
	return func(s *Screen) { s.quiet = quiet }
}

// WithEcho sets where command lines are echoed (default os.Stdout).
func WithEcho(w io.Writer) ScreenOption {
	return func(s *Screen) { s.echo = w }
}

// WithRunner replaces the subshell runner.
func WithRunner(r CommandRunner) ScreenOption {
	return func(s *Screen) { s.runner = r }
}

// WithLogger sets the logger used for per-command debug records.
func WithLogger(l *slog.Logger) ScreenOption {
	return func(s *Screen) { s.logger = l }
}

// NewScreen returns a sink for the named session.
func NewScreen(session string, opts ...ScreenOption) (*Screen, error) {
	if err := ValidateSessionName(session); err != nil {
		return nil, err
	}
	s := &Screen{
		session: session,
		binary:  "screen",
		echo:    os.Stdout,
		runner:  shellRunner{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Session returns the target session name.
func (s *Screen) Session() string { return s.session }

// Line returns the full command line used for command.
func (s *Screen) Line(command string) string {
	return fmt.Sprintf("%s -S %s -X %s", s.binary, s.session, command)
}

// Execute echoes (unless quiet) and runs the command in a subshell.
// A non-zero exit status yields an *ExecutionError; there is no retry.
func (s *Screen) Execute(ctx context.Context, command string) error {
	line := s.Line(command)
	if !s.quiet {
		fmt.Fprintln(s.echo, line)
	}

	s.logger.DebugContext(ctx, "screen command", "session", s.session, "command", command)
	out, err := s.runner.Run(ctx, line)
	if err != nil {
		return newExecutionError(line, out, err)
	}
	return nil
}

// shellRunner runs the line through sh -c, the way an interactive user
// would type it.
type shellRunner struct{}

func (shellRunner) Run(ctx context.Context, line string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", line)
	return cmd.CombinedOutput()
}
