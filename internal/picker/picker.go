package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/timvw/screen-array/internal/grid"
)

// ErrCancelled is returned when the user leaves the picker without confirming.
var ErrCancelled = errors.New("selection cancelled")

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.All, k.Confirm, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.All, k.Confirm, k.Cancel},
	}
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
	All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all/none")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// model implements tea.Model
type model struct {
	grid     *grid.Grid
	session  string
	selected map[int]bool
	cursor   int
	help     help.Model

	confirmed bool
	cancelled bool
}

func newModel(g *grid.Grid, session string, initial []int) *model {
	m := &model{
		grid:     g,
		session:  session,
		selected: make(map[int]bool),
		help:     help.New(),
	}
	for _, i := range initial {
		if g.Contains(i) {
			m.selected[i] = true
		}
	}
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.grid.Width()
	row, col := m.cursor/w, m.cursor%w

	switch {
	case key.Matches(msg, keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, keys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if row > 0 {
			m.cursor -= w
		}
	case key.Matches(msg, keys.Down):
		if row < m.grid.Height()-1 {
			m.cursor += w
		}
	case key.Matches(msg, keys.Left):
		if col > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Right):
		if col < w-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		m.selected[m.cursor] = !m.selected[m.cursor]
	case key.Matches(msg, keys.All):
		all := len(m.mask()) < m.grid.Capacity()
		for i := 0; i < m.grid.Capacity(); i++ {
			m.selected[i] = all
		}
	}
	return m, nil
}

// mask returns the selected indices in ascending order.
func (m *model) mask() []int {
	out := make([]int, 0, len(m.selected))
	for i, on := range m.selected {
		if on {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func (m *model) View() string {
	title := titleStyle.Render(fmt.Sprintf("%s: %s", m.session, m.grid))
	status := dimStyle.Render(fmt.Sprintf("%d of %d selected: %s",
		len(m.mask()), m.grid.Capacity(), grid.FormatMask(m.mask())))
	return title + "\n\n" +
		Render(m.grid, m.selected, m.cursor) + "\n\n" +
		status + "\n" +
		m.help.View(keys) + "\n"
}

// Run shows the picker on out and returns the confirmed mask, sorted.
// Windows in initial start selected.
func Run(ctx context.Context, g *grid.Grid, session string, initial []int, in io.Reader, out io.Writer) ([]int, error) {
	m := newModel(g, session, initial)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}

	fm, ok := final.(*model)
	if !ok || !fm.confirmed {
		return nil, ErrCancelled
	}
	return fm.mask(), nil
}
