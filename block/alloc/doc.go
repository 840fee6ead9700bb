// Package alloc tracks which byte ranges of a block are free for new content
// and hands them out to callers.
//
// # Overview
//
// A FreeList holds a block together with an ordered set of disjoint,
// inclusive free ranges. Ranges are removed from the set by MarkAllocated
// (claim without writing) and Allocate (claim and optionally write), and
// returned to it by Deallocate.
//
// # Allocation strategy
//
// Allocate is strictly first-fit: free ranges are scanned in ascending order
// of their begin offset and the first range that is large enough and whose
// start passes the caller's placement predicate wins. The allocator never
// keeps scanning for a tighter-fitting range once a candidate is found.
//
// The placement predicate lets a caller impose a constraint the allocator
// knows nothing about, such as a bank-boundary or alignment rule:
//
//	offset, err := free.Allocate(data, 0, func(begin int) bool {
//	    return begin&0x8000 == 0
//	})
//
// # Deallocation
//
// Deallocate appends the range to the free set and re-sorts. It does not
// check for overlap with existing free entries and does not merge adjacent
// ranges; after repeated alloc/dealloc cycles the set may be fragmented, and
// callers must not rely on reclaiming exact contiguous capacity.
//
// # Thread safety
//
// FreeList has no internal locking. Callers must serialize all calls against
// a single instance.
package alloc
