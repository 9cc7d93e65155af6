package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var makeCmd = &cobra.Command{
	Use:   "make [SESSION] [HEIGHT] [WIDTH]",
	Short: "Split a screen session into a grid of windows",
	Long: `Split the current region of a running screen session into HEIGHT rows
of WIDTH windows each (default 3 x 3).

The session should show a single region when this starts. Window 0 is the
window it already shows; windows 1..WIDTH*HEIGHT-1 are created row by row.
If a screen command fails the run stops there and the partial layout stays.

SESSION may be left out when SCREEN_ARRAY_SESSION (or the config file) names
one; a leading number is then read as HEIGHT.`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, rest, err := resolveLayoutArgs(args)
		if err != nil {
			return err
		}
		if err := parseDims(rest); err != nil {
			return err
		}

		a, err := newArray(cmd, session)
		if err != nil {
			return err
		}
		if err := a.Make(cmd.Context()); err != nil {
			return fmt.Errorf("make array %s: %w", a, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(makeCmd)
}
