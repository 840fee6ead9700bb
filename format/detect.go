package format

import (
	"bytes"
	"log/slog"

	"github.com/LittlestCube/romkit/block"
	"github.com/LittlestCube/romkit/block/alloc"
)

// HeaderSize is the length of the copier header some SNES images carry.
const HeaderSize = 0x200

// Result is the outcome of detection.
type Result struct {
	Tag            Tag
	FreeRanges     []alloc.Range // descriptor ranges that fit the image, sorted
	HeaderStripped bool          // the image carried a copier header, now removed
}

// snesVariant is one physical SNES layout. checksum is the offset of the
// first of two byte pairs that must satisfy the complement test; the
// signature is looked up shifted by shift.
type snesVariant struct {
	name     string
	checksum int
	shift    int
	headered bool
}

// The four layouts, probed in this order.
var snesVariants = []snesVariant{
	{name: "unheadered HiROM", checksum: 0xffdc},
	{name: "unheadered LoROM", checksum: 0x7fdc},
	{name: "headered HiROM", checksum: 0x101dc, shift: HeaderSize, headered: true},
	{name: "headered LoROM", checksum: 0x81dc, shift: HeaderSize, headered: true},
}

// Detect classifies b against the table and normalizes its header.
//
// Descriptors are tried in declaration order and the first match wins. A
// match on a headered SNES variant strips the leading copier header from b,
// shrinking it by HeaderSize. The returned free ranges are the matched
// descriptor's, minus any whose end lies past the (possibly header-adjusted)
// image; when nothing matches the tag is TagUnknown and the range set empty.
//
// Repeated runs over identical bytes always return the same result.
func Detect(b *block.Block, t *Table) Result {
	for _, d := range t.Descriptors() {
		if d.Platform == PlatformSNES {
			if r, ok := detectSNES(b, d); ok {
				return r
			}
			continue
		}
		if signatureAt(b, d.Offset, d.Signature) {
			slog.Debug("rom type matched", "type", d.Name, "platform", d.Platform)
			return result(d, b.Size(), false)
		}
	}
	slog.Debug("no rom type matched", "size", b.Size())
	return Result{Tag: TagUnknown}
}

func detectSNES(b *block.Block, d Descriptor) (Result, bool) {
	for _, v := range snesVariants {
		if !complementPair(b, v.checksum) || !complementPair(b, v.checksum+1) {
			continue
		}
		if !signatureAt(b, d.Offset+v.shift, d.Signature) {
			continue
		}
		slog.Debug("rom type matched", "type", d.Name, "variant", v.name)
		if v.headered {
			// The checksum probe already proved the image is larger than
			// the header, so the trim cannot fail.
			_ = b.TrimFront(HeaderSize)
		}
		return result(d, b.Size(), v.headered), true
	}
	return Result{}, false
}

// complementPair reports whether the byte at off is the bitwise complement
// of the byte two past it. Any bounds failure is a non-match, not an error:
// an image too small for a variant's offsets simply is not that variant.
func complementPair(b *block.Block, off int) bool {
	x, err := b.ReadByte(off)
	if err != nil {
		return false
	}
	y, err := b.ReadByte(off + 2)
	if err != nil {
		return false
	}
	return ^x == y
}

// signatureAt reports whether the bytes at off equal sig. Bounds failures
// are non-matches.
func signatureAt(b *block.Block, off int, sig []byte) bool {
	sub, err := b.ReadRange(off, off+len(sig))
	if err != nil {
		return false
	}
	return bytes.Equal(sub.Bytes(), sig)
}

func result(d Descriptor, size int, stripped bool) Result {
	ranges := make([]alloc.Range, 0, len(d.FreeRanges))
	for _, r := range d.FreeRanges {
		if r.End < size {
			ranges = append(ranges, r)
		}
	}
	return Result{Tag: Tag(d.Name), FreeRanges: ranges, HeaderStripped: stripped}
}
