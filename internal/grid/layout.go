package grid

// Build returns the op sequence that turns a single-window session into a
// width x height grid. It fails with ErrInvalidDimension before producing
// anything.
//
// Every op acts on the region that is active when it runs:
//
//	split     top region stays active, an empty region appears below it
//	split -v  left region stays active, an empty region appears to its right
//	focus     the next region (left to right, top to bottom) becomes active
//	screen    a new window, numbered one past the last, fills the active region
//
// The first row reuses the window the session already has, so only
// width-1 windows are created there. Every later row starts with a focus
// into its empty region and a fresh window.
func Build(width, height int) ([]Op, error) {
	if err := validate(width, height); err != nil {
		return nil, err
	}
	return build(width, height), nil
}

func build(width, height int) []Op {
	ops := make([]Op, 0, opCount(width, height))

	for i := 0; i < height-1; i++ {
		ops = append(ops, Op{Kind: SplitHorizontal})
	}

	ops = appendColumns(ops, width)

	for row := 1; row < height; row++ {
		ops = append(ops, Op{Kind: FocusNext}, Op{Kind: CreateWindow})
		ops = appendColumns(ops, width)
	}
	return ops
}

// appendColumns fills the rest of the active row, one window per column.
func appendColumns(ops []Op, width int) []Op {
	for col := 1; col < width; col++ {
		ops = append(ops, Op{Kind: SplitVertical}, Op{Kind: FocusNext}, Op{Kind: CreateWindow})
	}
	return ops
}

func opCount(width, height int) int {
	return (height - 1) + 3*height*(width-1) + 2*(height-1)
}
