package rom

import (
	"fmt"

	"github.com/LittlestCube/romkit/block"
	"github.com/LittlestCube/romkit/format"
)

// Image sizes the Earthbound transforms work with.
const (
	UnexpandedSize    = 0x300000
	ExpandedSize      = 0x400000
	SuperExpandedSize = 0x600000
)

// Control bytes patched during super expansion: the internal header's map
// mode and size fields, and the bank mirrored into the new region.
const (
	mapModeOffset  = 0x00ffd5
	mapModeValue   = 0x25
	romSizeOffset  = 0x00ffd7
	romSizeValue   = 0x0d
	mirrorSrcBegin = 0x8000
	mirrorLen      = 0x8000
	mirrorDest     = 0x400000 + mirrorSrcBegin
)

// AddHeader prepends a zero-filled copier header, growing the image by
// format.HeaderSize. Only defined for Earthbound images.
func (r *Rom) AddHeader() error {
	if r.Tag != TagEarthbound {
		return fmt.Errorf("%w: don't know how to add a header to a %q image", ErrUnsupported, r.Tag)
	}
	r.Block.PrependZeros(format.HeaderSize)
	return nil
}

// Expand grows an Earthbound image to desired bytes, which must be
// ExpandedSize or SuperExpandedSize. A 3MB image first gains 1MB of
// zero-filled capacity; going to 6MB additionally patches the internal
// header's map mode and size bytes, appends 2MB, and mirrors the second
// 32KB bank into the start of the new region. The descriptor table already
// excludes the mirrored bank from the free ranges, but any free list seeded
// before the expansion only covers the old image; re-detect to pick up the
// expansion-area ranges.
func (r *Rom) Expand(desired int) error {
	if r.Tag != TagEarthbound {
		return fmt.Errorf("%w: don't know how to expand a %q image", ErrUnsupported, r.Tag)
	}
	if desired != ExpandedSize && desired != SuperExpandedSize {
		return fmt.Errorf("%w: cannot expand an %s image to size %#x", block.ErrInvalidArgument, r.Tag, desired)
	}

	if r.Block.Size() == UnexpandedSize {
		r.Block.AppendZeros(ExpandedSize - UnexpandedSize)
	}
	if desired == SuperExpandedSize && r.Block.Size() == ExpandedSize {
		if err := r.Block.WriteByte(mapModeOffset, mapModeValue); err != nil {
			return err
		}
		if err := r.Block.WriteByte(romSizeOffset, romSizeValue); err != nil {
			return err
		}
		r.Block.AppendZeros(SuperExpandedSize - ExpandedSize)

		mirror, err := r.Block.ReadRange(mirrorSrcBegin, mirrorSrcBegin+mirrorLen)
		if err != nil {
			return err
		}
		if err := r.Block.WriteRange(mirrorDest, mirrorDest+mirrorLen, mirror.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
