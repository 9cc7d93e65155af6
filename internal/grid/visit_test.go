package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingMapper() Mapper {
	return MapperFunc(func(i int) string {
		return fmt.Sprintf("ping 10.0.0.%d", i)
	})
}

func TestVisit_MaskedScenario(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	ops, err := g.Visit(pingMapper(), []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"select 0", "exec ping 10.0.0.0",
		"select 2", "exec ping 10.0.0.2",
		"select 4",
	}, Strings(ops))
}

func TestVisit_NilMaskVisitsEverything(t *testing.T) {
	g, err := New(3, 1)
	require.NoError(t, err)

	ops, err := g.Visit(pingMapper(), nil)
	require.NoError(t, err)
	assert.Equal(t, []Op{
		Select(0), Exec("ping 10.0.0.0"),
		Select(1), Exec("ping 10.0.0.1"),
		Select(2), Exec("ping 10.0.0.2"),
		Select(3),
	}, ops)
}

func TestVisit_AscendingRegardlessOfMaskOrder(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	ops, err := g.Visit(pingMapper(), []int{8, 1, 5, 1, 0})
	require.NoError(t, err)

	var selected []int
	for _, op := range ops {
		if op.Kind == SelectWindow {
			selected = append(selected, op.Index)
		}
	}
	assert.Equal(t, []int{0, 1, 5, 8, 9}, selected)
}

func TestVisit_EmptyMaskOnlySelectsPastTheEnd(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	ops, err := g.Visit(pingMapper(), []int{})
	require.NoError(t, err)
	assert.Equal(t, []Op{Select(4)}, ops)
}

func TestVisit_OutOfRange(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	calls := 0
	mapper := MapperFunc(func(i int) string {
		calls++
		return "true"
	})

	for _, mask := range [][]int{{4}, {-1}, {0, 1, 9}} {
		ops, err := g.Visit(mapper, mask)
		assert.ErrorIs(t, err, ErrMaskOutOfRange, "mask %v", mask)
		assert.Nil(t, ops)
	}
	assert.Zero(t, calls, "mapper must not run for a rejected mask")
}

func TestVisit_Deterministic(t *testing.T) {
	g, err := New(3, 2)
	require.NoError(t, err)

	first, err := g.Visit(pingMapper(), []int{4, 2, 0})
	require.NoError(t, err)
	second, err := g.Visit(pingMapper(), []int{4, 2, 0})
	require.NoError(t, err)

	assert.Equal(t, Strings(first), Strings(second))
}

func TestVisit_CursorEndsOnLastVisitedWindow(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	c := NewCursor()
	require.NoError(t, c.Apply(g.Layout()))

	ops, err := g.Visit(pingMapper(), []int{0, 2})
	require.NoError(t, err)
	require.NoError(t, c.Apply(ops))

	assert.Equal(t, 2, c.ActiveWindow())
	assert.Equal(t, []int{4}, c.Unresolved)
}
