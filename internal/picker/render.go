// Package picker draws grids of windows and lets a user choose which of
// them a visit should target.
package picker

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/timvw/screen-array/internal/grid"
)

const cellWidth = 5

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorBorder = lipgloss.Color("12")
)

var cellStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Foreground(lipgloss.Color("8")).
	Width(cellWidth).
	Align(lipgloss.Center)

var selectedCellStyle = cellStyle.
	BorderForeground(lipgloss.Color("10")).
	Foreground(lipgloss.Color("10")).
	Bold(true)

// Render draws g as rows of boxed window indices. Selected windows are
// highlighted; the window at cursor (use -1 for none) gets an accent border.
func Render(g *grid.Grid, selected map[int]bool, cursor int) string {
	rows := make([]string, 0, g.Height())
	for r := 0; r < g.Height(); r++ {
		cells := make([]string, 0, g.Width())
		for c := 0; c < g.Width(); c++ {
			i := r*g.Width() + c
			style := cellStyle
			if selected[i] {
				style = selectedCellStyle
			}
			if i == cursor {
				style = style.BorderForeground(cursorBorder)
			}
			cells = append(cells, style.Render(strconv.Itoa(i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Preview renders the whole grid with every window in mask highlighted
// (nil mask: all). It is used by "plan" to show what a visit would reach.
func Preview(g *grid.Grid, mask []int) (string, error) {
	indices, err := g.Resolve(mask)
	if err != nil {
		return "", err
	}
	selected := make(map[int]bool, len(indices))
	for _, i := range indices {
		selected[i] = true
	}
	return Render(g, selected, -1), nil
}
