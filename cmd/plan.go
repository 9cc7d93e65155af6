package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/timvw/screen-array/internal/array"
	"github.com/timvw/screen-array/internal/command"
	"github.com/timvw/screen-array/internal/grid"
	"github.com/timvw/screen-array/internal/mux"
	"github.com/timvw/screen-array/internal/picker"
)

var (
	flagPlanSession string
	flagPlanCommand string
	flagPlanMask    string
	flagPlanPreview bool
)

var planCmd = &cobra.Command{
	Use:   "plan [HEIGHT] [WIDTH]",
	Short: "Print the screen commands without running them",
	Long: `Print the screen commands "make" would send for a HEIGHT x WIDTH grid,
followed by the commands "visit" would send when --command is given.
No session is touched.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := parseDims(args); err != nil {
			return err
		}
		session := flagPlanSession
		if session == "" {
			session = cfg.Session
		}
		if session == "" {
			session = "SESSION"
		}
		return writePlan(cmd, cmd.OutOrStdout(), session)
	},
}

func writePlan(cmd *cobra.Command, out io.Writer, session string) error {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	screen, err := mux.NewScreen(session, mux.WithBinary(cfg.Binary))
	if err != nil {
		return err
	}

	mask, err := grid.ParseMask(flagPlanMask, g.Capacity())
	if err != nil {
		return err
	}
	if _, err := g.Resolve(mask); err != nil {
		return err
	}

	// Dry runs record no telemetry.
	rec := &mux.Recorder{}
	a := array.New(session, g, rec, array.WithLogger(logger))
	if err := a.Make(cmd.Context()); err != nil {
		return err
	}
	if flagPlanCommand != "" {
		tmpl, err := command.Compile(flagPlanCommand, session, g)
		if err != nil {
			return err
		}
		if err := a.Visit(cmd.Context(), tmpl, mask); err != nil {
			return err
		}
		if err := tmpl.Err(); err != nil {
			return err
		}
	}

	for _, c := range rec.Commands() {
		fmt.Fprintln(out, screen.Line(c))
	}

	if flagPlanPreview {
		preview, err := picker.Preview(g, mask)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", preview)
	}
	return nil
}

func init() {
	planCmd.Flags().StringVarP(&flagPlanSession, "session", "s", "", "session name to show in the command lines")
	planCmd.Flags().StringVarP(&flagPlanCommand, "command", "c", "", "also plan a visit with this command template")
	planCmd.Flags().StringVar(&flagPlanMask, "mask", "", "windows the planned visit targets (default: all)")
	planCmd.Flags().BoolVar(&flagPlanPreview, "preview", true, "draw the grid after the commands")
	rootCmd.AddCommand(planCmd)
}
