// Package block provides a fixed-size, bounds-checked byte buffer used to
// hold a ROM image in memory.
//
// Every accessor validates its offsets against [0, size); out-of-range access
// returns ErrOutOfBounds rather than clamping. Range reads return independent
// copies, so a Block never aliases its derived sub-blocks. Multi-byte
// accessors assemble and spread little-endian unsigned integers of arbitrary
// width.
//
// A Block is created empty (or from a file, a byte slice, or another block)
// and may be re-populated at any time; re-population fully discards prior
// state, so any free-range tracking layered on top must be re-seeded.
//
// Blocks are not safe for concurrent mutation.
package block
