package grid

import "fmt"

// Cursor is an explicit model of screen's region list while a command
// sequence runs. Every op reads the active region and may change it, which
// is exactly the state the real session keeps implicitly.
//
// Regions are kept in screen's focus order (left to right, top to bottom).
type Cursor struct {
	regions []region
	active  int
	next    int // number the next "screen" command will get

	// Unresolved records select targets that did not name an existing
	// window. Screen reports those itself and keeps the current window.
	Unresolved []int
}

type region struct {
	row, col int
	window   int // -1 while the region is empty
}

// NewCursor returns the state of a fresh session: one region showing window 0.
func NewCursor() *Cursor {
	return &Cursor{
		regions: []region{{window: 0}},
		next:    1,
	}
}

// Apply runs ops in order and stops at the first one it cannot model.
func (c *Cursor) Apply(ops []Op) error {
	for i, op := range ops {
		if err := c.Step(op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op, err)
		}
	}
	return nil
}

// Step applies a single op.
func (c *Cursor) Step(op Op) error {
	cur := c.regions[c.active]
	switch op.Kind {
	case SplitHorizontal:
		if c.rowWidth(cur.row) != 1 {
			return fmt.Errorf("%w: horizontal split of row %d with %d regions",
				ErrUnsupportedSplit, cur.row, c.rowWidth(cur.row))
		}
		for i := range c.regions {
			if c.regions[i].row > cur.row {
				c.regions[i].row++
			}
		}
		c.insertAfterActive(region{row: cur.row + 1, col: 0, window: -1})
	case SplitVertical:
		for i := range c.regions {
			if c.regions[i].row == cur.row && c.regions[i].col > cur.col {
				c.regions[i].col++
			}
		}
		c.insertAfterActive(region{row: cur.row, col: cur.col + 1, window: -1})
	case FocusNext:
		c.active = (c.active + 1) % len(c.regions)
	case CreateWindow:
		c.regions[c.active].window = c.next
		c.next++
	case SelectWindow:
		if op.Index < 0 || op.Index >= c.next {
			c.Unresolved = append(c.Unresolved, op.Index)
			return nil
		}
		c.regions[c.active].window = op.Index
	case ExecCommand:
	default:
		return fmt.Errorf("unknown op kind %d", op.Kind)
	}
	return nil
}

func (c *Cursor) insertAfterActive(r region) {
	at := c.active + 1
	c.regions = append(c.regions, region{})
	copy(c.regions[at+1:], c.regions[at:])
	c.regions[at] = r
}

func (c *Cursor) rowWidth(row int) int {
	n := 0
	for _, r := range c.regions {
		if r.row == row {
			n++
		}
	}
	return n
}

// Active returns the position of the active region.
func (c *Cursor) Active() Position {
	r := c.regions[c.active]
	return Position{Row: r.row, Col: r.col}
}

// ActiveWindow returns the window shown in the active region, or -1.
func (c *Cursor) ActiveWindow() int {
	return c.regions[c.active].window
}

// Windows returns how many windows exist.
func (c *Cursor) Windows() int { return c.next }

// Regions returns how many regions the display is divided into.
func (c *Cursor) Regions() int { return len(c.regions) }

// Layout maps each displayed window to the region showing it.
func (c *Cursor) Layout() map[int]Position {
	out := make(map[int]Position, len(c.regions))
	for _, r := range c.regions {
		if r.window >= 0 {
			out[r.window] = Position{Row: r.row, Col: r.col}
		}
	}
	return out
}
