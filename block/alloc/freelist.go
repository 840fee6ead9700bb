package alloc

import (
	"fmt"
	"slices"

	"github.com/LittlestCube/romkit/block"
)

// FreeList tracks the unallocated byte ranges of a block. The free set is a
// sorted slice of disjoint, inclusive ranges; it is an in-memory view of what
// the caller has claimed and is never persisted.
type FreeList struct {
	block  *block.Block
	ranges []Range
}

// New returns an empty free list over b. Populate it with Seed, or leave it
// empty and reclaim space with Deallocate.
func New(b *block.Block) *FreeList {
	return &FreeList{block: b}
}

// Block returns the block the free list tracks.
func (f *FreeList) Block() *block.Block { return f.block }

// Seed replaces the free set with a sorted copy of rs.
func (f *FreeList) Seed(rs []Range) {
	f.ranges = slices.Clone(rs)
	SortRanges(f.ranges)
}

// Ranges returns a copy of the current free set in ascending Begin order.
func (f *FreeList) Ranges() []Range {
	return slices.Clone(f.ranges)
}

// FreeBytes returns the total number of unallocated bytes.
func (f *FreeList) FreeBytes() int {
	var n int
	for _, r := range f.ranges {
		n += r.Len()
	}
	return n
}

// MarkAllocated removes used from the free set without writing any data,
// excluding it from future allocation. The range may span several free
// entries; the remainder past each entry is marked recursively. Returns
// ErrCouldNotAllocate when some part of used is not free.
//
// Splitting a free entry leaves the two halves unmerged with their
// neighbors; the free set stays sorted but is not guaranteed coalesced.
func (f *FreeList) MarkAllocated(used Range) error {
	if err := Check(used, f.block.Size()); err != nil {
		return err
	}
	for i, free := range f.ranges {
		switch {
		case used.Begin == free.Begin:
			switch {
			case used.End < free.End:
				f.ranges[i] = Range{Begin: used.End + 1, End: free.End}
			case used.End == free.End:
				f.ranges = slices.Delete(f.ranges, i, i+1)
			default: // used.End > free.End
				f.ranges = slices.Delete(f.ranges, i, i+1)
				return f.MarkAllocated(Range{Begin: free.End + 1, End: used.End})
			}
			return nil

		case used.Begin > free.Begin && used.End <= free.End:
			f.ranges[i] = Range{Begin: free.Begin, End: used.Begin - 1}
			if used.End != free.End {
				f.ranges = slices.Insert(f.ranges, i+1, Range{Begin: used.End + 1, End: free.End})
			}
			return nil

		case used.Begin > free.Begin && used.Begin < free.End && used.End > free.End:
			f.ranges[i] = Range{Begin: free.Begin, End: used.Begin - 1}
			return f.MarkAllocated(Range{Begin: free.End + 1, End: used.End})
		}
	}
	return fmt.Errorf("%w: range %s is at least partially already allocated", ErrCouldNotAllocate, used)
}

// Allocate claims size bytes from the first free range that can hold them,
// in ascending Begin order (first-fit; a later, tighter-fitting range is
// never preferred). When data is supplied it is written into the claimed
// region and size may be zero to mean len(data). canWriteTo, when non-nil,
// must approve the candidate range's start offset or the range is skipped.
// Returns the start offset of the claimed region.
func (f *FreeList) Allocate(data []byte, size int, canWriteTo func(begin int) bool) (int, error) {
	if data == nil && size == 0 {
		return 0, fmt.Errorf("%w: neither data nor size provided", block.ErrInvalidArgument)
	}
	if size == 0 {
		size = len(data)
	} else if data != nil && size != len(data) {
		return 0, fmt.Errorf("%w: size %d and data's size %d differ", block.ErrInvalidArgument, size, len(data))
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: cannot allocate a range of size %d", block.ErrInvalidArgument, size)
	}

	for i, free := range f.ranges {
		if size > free.Len() {
			continue
		}
		if canWriteTo != nil && !canWriteTo(free.Begin) {
			continue
		}

		begin := free.Begin
		if begin+size-1 == free.End {
			// Used up the entire free range.
			f.ranges = slices.Delete(f.ranges, i, i+1)
		} else {
			f.ranges[i] = Range{Begin: begin + size, End: free.End}
		}

		if data != nil {
			if err := f.block.WriteRange(begin, begin+size, data); err != nil {
				return 0, err
			}
		}
		return begin, nil
	}
	return 0, fmt.Errorf("%w: no free range of %d bytes", ErrNotEnoughSpace, size)
}

// Deallocate returns r to the free set. The range is appended and the set
// re-sorted; overlap with existing free entries is not checked and adjacent
// entries are not merged.
func (f *FreeList) Deallocate(r Range) error {
	if err := Check(r, f.block.Size()); err != nil {
		return err
	}

	// TODO reject ranges that overlap an existing free entry
	// TODO merge contiguous free entries

	f.ranges = append(f.ranges, r)
	SortRanges(f.ranges)
	return nil
}

// IsUnallocated reports whether r lies wholly within a single free range.
func (f *FreeList) IsUnallocated(r Range) (bool, error) {
	if err := Check(r, f.block.Size()); err != nil {
		return false, err
	}
	for _, free := range f.ranges {
		if free.Contains(r) {
			return true, nil
		}
	}
	return false, nil
}

// IsAllocated reports whether any part of r is outside the free set. A range
// that is only partially free counts as allocated.
func (f *FreeList) IsAllocated(r Range) (bool, error) {
	free, err := f.IsUnallocated(r)
	return !free, err
}
