package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/romkit/block"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("(0x300200, 0x3fffff)")
	require.NoError(t, err)
	require.Equal(t, Range{0x300200, 0x3fffff}, r)

	r, err = ParseRange("(16,31)")
	require.NoError(t, err)
	require.Equal(t, Range{16, 31}, r)

	for _, bad := range []string{"", "0x10, 0x20", "(0x10)", "(0x10, 0x20, 0x30)", "(x, 0x20)"} {
		_, err := ParseRange(bad)
		require.ErrorIs(t, err, block.ErrInvalidArgument, "input %q", bad)
	}
}

func TestRangeStringRoundTrip(t *testing.T) {
	r := Range{0x10, 0xffff}
	parsed, err := ParseRange(r.String())
	require.NoError(t, err)
	require.Equal(t, r, parsed)
	require.Equal(t, 0xfff0, r.Len())
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(Range{0, 9}, 10))
	require.ErrorIs(t, Check(Range{5, 4}, 10), block.ErrInvalidArgument)
	require.ErrorIs(t, Check(Range{0, 10}, 10), block.ErrOutOfBounds)
	require.ErrorIs(t, Check(Range{-1, 4}, 10), block.ErrOutOfBounds)
}
