package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMask(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "empty means all", input: "", want: nil},
		{name: "all keyword", input: "ALL", want: nil},
		{name: "single", input: "3", want: []int{3}},
		{name: "list", input: "0, 2,4", want: []int{0, 2, 4}},
		{name: "range", input: "2-5", want: []int{2, 3, 4, 5}},
		{name: "mixed", input: "7,0-1", want: []int{7, 0, 1}},
		{name: "one element range", input: "4-4", want: []int{4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMask(tt.input, 9)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMask_Errors(t *testing.T) {
	for _, input := range []string{"a", "1,,2", "3-1", "1-", "-1", "1-x"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMask(input, 9)
			assert.ErrorIs(t, err, ErrInvalidMask)
		})
	}
}

func TestParseMask_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "index at capacity", input: "4"},
		{name: "range end at capacity", input: "0-4"},
		{name: "huge range", input: "0-60000000"},
		{name: "huge range after valid indices", input: "1,2,3-9223372036854775807"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMask(tt.input, 4)
			require.ErrorIs(t, err, ErrMaskOutOfRange)
			assert.Nil(t, got)
		})
	}
}

func TestParseMask_FeedsVisit(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	mask, err := ParseMask("3,0-1", g.Capacity())
	require.NoError(t, err)
	ops, err := g.Visit(MapperFunc(func(i int) string { return "true" }), mask)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"select 0", "exec true",
		"select 1", "exec true",
		"select 3", "exec true",
		"select 4",
	}, Strings(ops))
}

func TestFormatMask(t *testing.T) {
	assert.Equal(t, "", FormatMask(nil))
	assert.Equal(t, "0", FormatMask([]int{0}))
	assert.Equal(t, "0-3,5,7-8", FormatMask([]int{0, 1, 2, 3, 5, 7, 8}))

	parsed, err := ParseMask(FormatMask([]int{1, 2, 4}), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, parsed)
}
