package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/timvw/screen-array/internal/array"
	"github.com/timvw/screen-array/internal/config"
	"github.com/timvw/screen-array/internal/grid"
	"github.com/timvw/screen-array/internal/logging"
	"github.com/timvw/screen-array/internal/mux"
	telem "github.com/timvw/screen-array/internal/otel"
)

var (
	// Global flags.
	flagMux      string
	flagBinary   string
	flagQuiet    bool
	flagLogLevel string
	flagWidth    int
	flagHeight   int
)

// Resolved by the persistent pre-run for every subcommand.
var (
	cfg    *config.Config
	logger *slog.Logger
	tel    *telem.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "screen-array",
	Short: "Lay out a grid of GNU screen windows and broadcast commands to it",
	Long: `screen-array splits a running GNU screen session into a WIDTH x HEIGHT
grid of windows and runs a per-window command in some or all of them.

Windows are numbered row by row, starting at 0 for the window the session
already shows. Every step is a "screen -S SESSION -X ..." call; each command
line is printed before it runs unless --quiet is given.

Configuration is loaded from .screen-array.yaml, ~/.config/screen-array/config.yaml
and SCREEN_ARRAY_* environment variables; flags override both.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tel != nil {
			tel.Shutdown(context.Background())
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", "", "terminal multiplexer: screen (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagBinary, "binary", "", "multiplexer executable (default: screen)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "do not print the commands sent to screen")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "grid width (default: 3)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "grid height (default: 3)")
}

// setup loads configuration, applies flags, and builds the logger and telemetry.
func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("mux") {
		cfg.Mux = flagMux
	}
	if flags.Changed("binary") {
		cfg.Binary = flagBinary
	}
	if flags.Changed("quiet") {
		cfg.Quiet = flagQuiet
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(os.Stderr, level)
	if cfg.ConfigFile != "" {
		logger.Debug("config loaded", "path", cfg.ConfigFile)
	}

	telem.Version = Version
	tel, err = telem.Init(cmd.Context(), telem.Config{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		logger.Warn("otel init failed", "error", err)
		tel = nil
	}
	return nil
}

// parseDims reads optional HEIGHT and WIDTH positional arguments onto cfg.
func parseDims(args []string) error {
	if len(args) > 0 {
		h, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("HEIGHT %q is not an integer", args[0])
		}
		cfg.Height = h
	}
	if len(args) > 1 {
		w, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("WIDTH %q is not an integer", args[1])
		}
		cfg.Width = w
	}
	return cfg.Validate()
}

// resolveSession returns the session from the first argument or the config.
func resolveSession(args []string) (string, []string, error) {
	if len(args) > 0 {
		return args[0], args[1:], nil
	}
	if cfg.Session != "" {
		return cfg.Session, args, nil
	}
	return "", args, fmt.Errorf("no session given (pass SESSION or set SCREEN_ARRAY_SESSION)")
}

// resolveLayoutArgs splits [SESSION] [HEIGHT] [WIDTH]. With fewer than three
// arguments an integer first argument is HEIGHT and the session comes from
// the config.
func resolveLayoutArgs(args []string) (string, []string, error) {
	if len(args) > 0 && len(args) < 3 {
		if _, err := strconv.Atoi(args[0]); err == nil {
			if cfg.Session == "" {
				return "", args, fmt.Errorf("no session given (%q is read as HEIGHT; pass SESSION first or set SCREEN_ARRAY_SESSION)", args[0])
			}
			return cfg.Session, args, nil
		}
	}
	return resolveSession(args)
}

// getMultiplexer returns the configured or auto-detected multiplexer name.
func getMultiplexer() (string, error) {
	if cfg.Mux != "" {
		return mux.FromName(cfg.Mux)
	}
	return mux.Detect()
}

// newArray builds the grid and a screen-backed Array for session. Command
// lines are echoed to the command's output.
func newArray(cmd *cobra.Command, session string) (*array.Array, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if _, err := getMultiplexer(); err != nil {
		return nil, err
	}

	sink, err := mux.NewScreen(session,
		mux.WithBinary(cfg.Binary),
		mux.WithQuiet(cfg.Quiet),
		mux.WithEcho(cmd.OutOrStdout()),
		mux.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return array.New(session, g, sink, arrayOptions()...), nil
}

func arrayOptions() []array.Option {
	opts := []array.Option{array.WithLogger(logger)}
	if tel != nil {
		opts = append(opts, array.WithTelemetry(tel.Tracer, tel.Metrics))
	}
	return opts
}
