package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/romkit/block"
	"github.com/LittlestCube/romkit/block/alloc"
)

var earthboundSig = []byte("EARTH BOUND")

// snesImage builds an image that passes the complement test at checksumBase
// and carries the Earthbound signature at sigOffset.
func snesImage(t *testing.T, size, checksumBase, sigOffset int) *block.Block {
	t.Helper()
	b := block.New(size)
	require.NoError(t, b.WriteByte(checksumBase, 0x12))
	require.NoError(t, b.WriteByte(checksumBase+2, ^0x12&0xff))
	require.NoError(t, b.WriteByte(checksumBase+1, 0x34))
	require.NoError(t, b.WriteByte(checksumBase+3, ^0x34&0xff))
	require.NoError(t, b.WriteRange(sigOffset, sigOffset+len(earthboundSig), earthboundSig))
	return b
}

func TestDetectUnheaderedHiROM(t *testing.T) {
	b := snesImage(t, 0x10000, 0xffdc, 0xffc0)

	res := Detect(b, DefaultTable())
	require.Equal(t, Tag("Earthbound"), res.Tag)
	require.False(t, res.HeaderStripped)
	require.Equal(t, 0x10000, b.Size())
}

func TestDetectUnheaderedLoROM(t *testing.T) {
	b := snesImage(t, 0x10000, 0x7fdc, 0xffc0)

	res := Detect(b, DefaultTable())
	require.Equal(t, Tag("Earthbound"), res.Tag)
	require.False(t, res.HeaderStripped)
}

func TestDetectHeaderedHiROMStripsHeader(t *testing.T) {
	b := snesImage(t, 0x10000+HeaderSize, 0x101dc, 0xffc0+HeaderSize)
	require.NoError(t, b.WriteByte(0x1ff, 0xee)) // inside the header, must vanish

	res := Detect(b, DefaultTable())
	require.Equal(t, Tag("Earthbound"), res.Tag)
	require.True(t, res.HeaderStripped)
	require.Equal(t, 0x10000, b.Size())

	// The first 0x200 original bytes are gone; the signature now sits at
	// its unheadered offset.
	sub, err := b.ReadRange(0xffc0, 0xffc0+len(earthboundSig))
	require.NoError(t, err)
	require.Equal(t, earthboundSig, sub.Bytes())

	v, err := b.ReadByte(0x1ff)
	require.NoError(t, err)
	require.Equal(t, byte(0), v)
}

func TestDetectHeaderedLoROMStripsHeader(t *testing.T) {
	b := snesImage(t, 0x10000+HeaderSize, 0x81dc, 0xffc0+HeaderSize)

	res := Detect(b, DefaultTable())
	require.Equal(t, Tag("Earthbound"), res.Tag)
	require.True(t, res.HeaderStripped)
	require.Equal(t, 0x10000, b.Size())
}

func TestDetectChecksumWithoutSignature(t *testing.T) {
	// Complement pairs alone are not enough; the signature must match too.
	b := block.New(0x10000)
	require.NoError(t, b.WriteByte(0xffdc, 0x12))
	require.NoError(t, b.WriteByte(0xffde, ^0x12&0xff))
	require.NoError(t, b.WriteByte(0xffdd, 0x34))
	require.NoError(t, b.WriteByte(0xffdf, ^0x34&0xff))

	res := Detect(b, DefaultTable())
	require.Equal(t, TagUnknown, res.Tag)
	require.Empty(t, res.FreeRanges)
}

func TestDetectGenericPlatform(t *testing.T) {
	table, err := ParseTable([]byte(`
Earthbound Zero:
  platform: NES
  offset: 0
  data: [0x4e, 0x45, 0x53, 0x1a]
`))
	require.NoError(t, err)

	b := block.FromBytes([]byte{0x4e, 0x45, 0x53, 0x1a, 0x00, 0x00})
	res := Detect(b, table)
	require.Equal(t, Tag("Earthbound Zero"), res.Tag)
	require.False(t, res.HeaderStripped)

	res = Detect(block.FromBytes([]byte{0xff, 0xff, 0xff, 0xff}), table)
	require.Equal(t, TagUnknown, res.Tag)
}

func TestDetectTinyBufferDoesNotFail(t *testing.T) {
	// All probe offsets are past the end; every variant is a clean non-match.
	for _, size := range []int{0, 1, 0x200, 0x8000} {
		res := Detect(block.New(size), DefaultTable())
		require.Equal(t, TagUnknown, res.Tag, "size %#x", size)
		require.Empty(t, res.FreeRanges)
	}
}

func TestDetectSeedsAndFiltersFreeRanges(t *testing.T) {
	table, err := ParseTable([]byte(`
Test:
  platform: SNES
  offset: 0xffc0
  data: [0x45, 0x41, 0x52, 0x54, 0x48, 0x20, 0x42, 0x4f, 0x55, 0x4e, 0x44]
  free ranges: ["(0xf000, 0xffff)", "(0x10000, 0x1ffff)", "(0x100, 0x1ff)"]
`))
	require.NoError(t, err)

	b := snesImage(t, 0x10000, 0xffdc, 0xffc0)
	res := Detect(b, table)
	require.Equal(t, Tag("Test"), res.Tag)

	// The range past the image is dropped; the rest stay sorted.
	require.Equal(t, []alloc.Range{{Begin: 0x100, End: 0x1ff}, {Begin: 0xf000, End: 0xffff}}, res.FreeRanges)
}

func TestDetectDeterminism(t *testing.T) {
	src := snesImage(t, 0x10000, 0xffdc, 0xffc0)

	first := Detect(block.FromBytes(src.Bytes()), DefaultTable())
	second := Detect(block.FromBytes(src.Bytes()), DefaultTable())
	require.Equal(t, first, second)
}
