package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMask parses a mask expression such as "0,2,4-7".
//
// Elements are separated by commas; each is an index or an inclusive range
// "lo-hi". An empty string or "all" yields a nil mask (every window).
// Every element must lie in [0, capacity); ranges are checked before they
// are expanded, so "0-60000000" fails with ErrMaskOutOfRange on a small grid.
func ParseMask(s string, capacity int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}

	mask := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty element in %q", ErrInvalidMask, s)
		}

		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			i, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an index", ErrInvalidMask, part)
			}
			if i >= capacity {
				return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrMaskOutOfRange, i, capacity)
			}
			mask = append(mask, i)
			continue
		}

		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: bad range start in %q", ErrInvalidMask, part)
		}
		to, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("%w: bad range end in %q", ErrInvalidMask, part)
		}
		if to < from {
			return nil, fmt.Errorf("%w: descending range %q", ErrInvalidMask, part)
		}
		if to >= capacity {
			return nil, fmt.Errorf("%w: range %q not in [0, %d)", ErrMaskOutOfRange, part, capacity)
		}
		for i := from; i <= to; i++ {
			mask = append(mask, i)
		}
	}
	return mask, nil
}

// FormatMask renders sorted indices back into the compact form ParseMask reads.
func FormatMask(indices []int) string {
	var b strings.Builder
	for i := 0; i < len(indices); {
		j := i
		for j+1 < len(indices) && indices[j+1] == indices[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(indices[i]))
		if j > i {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(indices[j]))
		}
		i = j + 1
	}
	return b.String()
}
