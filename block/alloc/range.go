package alloc

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/LittlestCube/romkit/block"
)

// Range is an inclusive pair of byte offsets. Ranges are ordered by Begin.
type Range struct {
	Begin int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Begin + 1 }

// Contains reports whether o lies wholly within r.
func (r Range) Contains(o Range) bool {
	return o.Begin >= r.Begin && o.End <= r.End
}

// String renders the range in the descriptor-table text form "(0x.., 0x..)".
func (r Range) String() string {
	return fmt.Sprintf("(%#x, %#x)", r.Begin, r.End)
}

// ParseRange parses the descriptor-table text form "(begin, end)", where
// begin and end are integers in any base strconv accepts (0x.. for hex).
func ParseRange(s string) (Range, error) {
	inner := strings.TrimSpace(s)
	if !strings.HasPrefix(inner, "(") || !strings.HasSuffix(inner, ")") {
		return Range{}, fmt.Errorf("%w: range %q is not parenthesized", block.ErrInvalidArgument, s)
	}
	parts := strings.Split(inner[1:len(inner)-1], ",")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: range %q does not have two parts", block.ErrInvalidArgument, s)
	}
	begin, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 0, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: %v", block.ErrInvalidArgument, s, err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 0, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: %v", block.ErrInvalidArgument, s, err)
	}
	return Range{Begin: int(begin), End: int(end)}, nil
}

// Check validates r against a block of the given size: ErrInvalidArgument
// when the range ends before it begins, ErrOutOfBounds when it falls outside
// [0, size).
func Check(r Range, size int) error {
	if r.End < r.Begin {
		return fmt.Errorf("%w: range %s ends before it begins", block.ErrInvalidArgument, r)
	}
	if r.Begin < 0 || r.End >= size {
		return fmt.Errorf("%w: range %s (size %#x)", block.ErrOutOfBounds, r, size)
	}
	return nil
}

// SortRanges orders by Begin, then End, matching the tuple ordering of the
// descriptor data.
func SortRanges(rs []Range) {
	slices.SortFunc(rs, func(a, b Range) int {
		if c := cmp.Compare(a.Begin, b.Begin); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
}
