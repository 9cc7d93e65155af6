package grid

import (
	"fmt"
	"sort"
)

// Mapper produces the command to run in window index.
// Implementations must be pure: the same index always yields the same text.
type Mapper interface {
	Command(index int) string
}

// MapperFunc adapts an ordinary function to Mapper.
type MapperFunc func(index int) string

// Command calls f(index).
func (f MapperFunc) Command(index int) string { return f(index) }

// Visit returns the ops that run mapper's command in every masked window.
//
// A nil mask selects every window. Windows are visited in ascending index
// order whatever order the mask lists them in; duplicates are visited once.
// Each visit is a (select i, exec mapper(i)) pair, and the sequence always
// ends with "select <capacity>". Screen either shows a window with that
// number or answers "no such window" and keeps the last visited window
// active; that response is not inspected here.
//
// Any index outside [0, capacity) fails with ErrMaskOutOfRange and no ops.
func (g *Grid) Visit(mapper Mapper, mask []int) ([]Op, error) {
	indices, err := g.Resolve(mask)
	if err != nil {
		return nil, err
	}

	ops := make([]Op, 0, 2*len(indices)+1)
	for _, i := range indices {
		ops = append(ops, Select(i), Exec(mapper.Command(i)))
	}
	ops = append(ops, Select(g.Capacity()))
	return ops, nil
}

// Resolve validates mask against the grid and returns its indices sorted
// and deduplicated. A nil mask resolves to every index.
func (g *Grid) Resolve(mask []int) ([]int, error) {
	if mask == nil {
		all := make([]int, g.Capacity())
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	var bad []int
	seen := make(map[int]bool, len(mask))
	indices := make([]int, 0, len(mask))
	for _, i := range mask {
		if !g.Contains(i) {
			bad = append(bad, i)
			continue
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		indices = append(indices, i)
	}
	if len(bad) > 0 {
		sort.Ints(bad)
		return nil, fmt.Errorf("%w: %v not in [0, %d)", ErrMaskOutOfRange, bad, g.Capacity())
	}
	sort.Ints(indices)
	return indices, nil
}
