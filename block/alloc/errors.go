package alloc

import "errors"

var (
	// ErrCouldNotAllocate indicates a MarkAllocated target that is at least
	// partially outside every free range.
	ErrCouldNotAllocate = errors.New("alloc: could not mark range as allocated")

	// ErrNotEnoughSpace indicates no free range could satisfy an Allocate request.
	ErrNotEnoughSpace = errors.New("alloc: not enough unallocated space")
)
