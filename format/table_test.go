package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/romkit/block"
	"github.com/LittlestCube/romkit/block/alloc"
)

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(`
Alpha:
  platform: SNES
  offset: 0xffc0
  data: [0x41, 0x42]
  free ranges: ["(0x20, 0x2f)", "(0x10, 0x1f)"]
Beta:
  platform: NES
  offset: 0
  data: [0x4e]
`))
	require.NoError(t, err)

	descs := table.Descriptors()
	require.Len(t, descs, 2)

	require.Equal(t, "Alpha", descs[0].Name)
	require.Equal(t, PlatformSNES, descs[0].Platform)
	require.Equal(t, 0xffc0, descs[0].Offset)
	require.Equal(t, []byte{0x41, 0x42}, descs[0].Signature)
	// Ranges are typed and sorted at load time.
	require.Equal(t, []alloc.Range{{Begin: 0x10, End: 0x1f}, {Begin: 0x20, End: 0x2f}}, descs[0].FreeRanges)

	require.Equal(t, "Beta", descs[1].Name)
	require.Empty(t, descs[1].FreeRanges)

	d, ok := table.Lookup(Tag("Beta"))
	require.True(t, ok)
	require.Equal(t, "Beta", d.Name)
	_, ok = table.Lookup(Tag("Gamma"))
	require.False(t, ok)
}

func TestParseTablePreservesDeclarationOrder(t *testing.T) {
	table, err := ParseTable([]byte(`
Zulu:
  platform: NES
  offset: 0
  data: [1]
Alpha:
  platform: NES
  offset: 0
  data: [1]
`))
	require.NoError(t, err)

	descs := table.Descriptors()
	require.Equal(t, "Zulu", descs[0].Name)
	require.Equal(t, "Alpha", descs[1].Name)

	// Both descriptors match the same bytes; the one declared first wins.
	b := block.FromBytes([]byte{1, 0, 0, 0})
	require.Equal(t, Tag("Zulu"), Detect(b, table).Tag)
}

func TestParseTableErrors(t *testing.T) {
	for name, src := range map[string]string{
		"not a mapping":      `[1, 2, 3]`,
		"empty signature":    "A:\n  platform: NES\n  offset: 0\n  data: []\n",
		"byte out of range":  "A:\n  platform: NES\n  offset: 0\n  data: [256]\n",
		"negative offset":    "A:\n  platform: NES\n  offset: -1\n  data: [1]\n",
		"bad free range":     "A:\n  platform: NES\n  offset: 0\n  data: [1]\n  free ranges: [\"nope\"]\n",
		"inverted range":     "A:\n  platform: NES\n  offset: 0\n  data: [1]\n  free ranges: [\"(0x20, 0x10)\"]\n",
		"malformed document": ": :",
	} {
		_, err := ParseTable([]byte(src))
		require.Error(t, err, "case %q", name)
	}
}

func TestParseTableEmpty(t *testing.T) {
	table, err := ParseTable(nil)
	require.NoError(t, err)
	require.Empty(t, table.Descriptors())
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yml")
	require.NoError(t, os.WriteFile(path, []byte("A:\n  platform: NES\n  offset: 0\n  data: [1]\n"), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table.Descriptors(), 1)

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, block.ErrFileAccess)
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	d, ok := table.Lookup(Tag("Earthbound"))
	require.True(t, ok)
	require.Equal(t, PlatformSNES, d.Platform)
	require.Equal(t, 0xffc0, d.Offset)
	require.NotEmpty(t, d.FreeRanges)
}
