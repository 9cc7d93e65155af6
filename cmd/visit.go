package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/timvw/screen-array/internal/command"
	"github.com/timvw/screen-array/internal/grid"
	"github.com/timvw/screen-array/internal/picker"
)

var (
	flagCommand string
	flagMask    string
	flagPick    bool
)

var visitCmd = &cobra.Command{
	Use:   "visit [SESSION] --command TEMPLATE",
	Short: "Run a per-window command in the grid",
	Long: `Select each window of the grid in ascending index order and run the
command rendered from TEMPLATE in it, then select window WIDTH*HEIGHT so the
last visited window stays active.

TEMPLATE is a Go text/template. Available fields: .Index .Row .Col .Width
.Height .Capacity .Session. Functions: add sub mul div mod printf.

  screen-array visit lab -c 'ping 10.1.0.{{add (mul .Index 2) 3}}' --mask 0-7

--mask takes indices and inclusive ranges ("0,2,4-7"); the default is every
window. --pick chooses the mask interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _, err := resolveSession(args)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		a, err := newArray(cmd, session)
		if err != nil {
			return err
		}
		g := a.Grid()

		mask, err := grid.ParseMask(flagMask, g.Capacity())
		if err != nil {
			return err
		}
		if flagPick {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("--pick needs an interactive terminal")
			}
			mask, err = picker.Run(cmd.Context(), g, session, mask, os.Stdin, os.Stderr)
			if err != nil {
				return err
			}
		}

		indices, err := g.Resolve(mask)
		if err != nil {
			return err
		}
		tmpl, err := command.Compile(flagCommand, session, g)
		if err != nil {
			return err
		}
		if err := tmpl.Check(indices); err != nil {
			return err
		}

		if err := a.Visit(cmd.Context(), tmpl, indices); err != nil {
			return fmt.Errorf("visit %s: %w", a, err)
		}
		return tmpl.Err()
	},
}

func init() {
	visitCmd.Flags().StringVarP(&flagCommand, "command", "c", "", "command template run in each window")
	visitCmd.Flags().StringVar(&flagMask, "mask", "", `windows to visit, e.g. "0,2,4-7" (default: all)`)
	visitCmd.Flags().BoolVar(&flagPick, "pick", false, "choose the windows interactively")
	_ = visitCmd.MarkFlagRequired("command")
	rootCmd.AddCommand(visitCmd)
}
