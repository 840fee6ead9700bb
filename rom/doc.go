// Package rom ties the pieces together: a Rom is a block holding a ROM
// image, the free-range tracker over it, and the rom type that detection
// assigned. Opening an image runs detection, strips any copier header, and
// seeds the free list from the matched descriptor, after which the image is
// ready for allocation by editing code.
package rom
