// Package buf contains bounds and little-endian helpers shared by the block
// accessor layer.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Has reports whether the span [off, off+n) fits within a buffer of length size.
func Has(size, off, n int) bool {
	if off < 0 || n < 0 {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= size
}

// AssembleLE assembles the bytes of p into an unsigned integer, least
// significant byte first. Spans wider than 8 bytes lose their high bytes.
func AssembleLE(p []byte) uint64 {
	var v uint64
	for i := len(p) - 1; i >= 0; i-- {
		v = (v << 8) | uint64(p[i])
	}
	return v
}

// SpreadLE writes the low len(p) bytes of v into p, least significant first.
// The inverse of AssembleLE; v is truncated to the span width.
func SpreadLE(v uint64, p []byte) {
	for i := range p {
		p[i] = byte(v)
		v >>= 8
	}
}
