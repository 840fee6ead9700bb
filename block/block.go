package block

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"
	"slices"

	"github.com/LittlestCube/romkit/internal/buf"
)

// Block is a mutable, bounds-checked byte buffer of fixed size.
// The zero value is an empty block ready for population.
type Block struct {
	data []byte
}

// New returns a zero-filled block of the given size.
func New(size int) *Block {
	if size < 0 {
		size = 0
	}
	return &Block{data: make([]byte, size)}
}

// FromBytes returns a block holding a copy of data.
func FromBytes(data []byte) *Block {
	return &Block{data: slices.Clone(data)}
}

// FromFile returns a block holding the full contents of the file at path.
func FromFile(path string) (*Block, error) {
	b := &Block{}
	if err := b.LoadFile(path); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset discards all contents, leaving an empty block.
func (b *Block) Reset() {
	b.data = nil
}

// LoadFile replaces the block's contents with the file at path.
func (b *Block) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: could not read %s: %v", ErrFileAccess, path, err)
	}
	b.data = data
	return nil
}

// LoadBytes replaces the block's contents with a copy of data.
func (b *Block) LoadBytes(data []byte) {
	b.data = slices.Clone(data)
}

// LoadBlock replaces the block's contents with a copy of src's contents.
func (b *Block) LoadBlock(src *Block) {
	b.data = slices.Clone(src.data)
}

// ToFile writes the block's full contents to the file at path.
func (b *Block) ToFile(path string) error {
	if err := os.WriteFile(path, b.data, 0o644); err != nil {
		return fmt.Errorf("%w: could not write %s: %v", ErrFileAccess, path, err)
	}
	return nil
}

// Size returns the number of bytes in the block.
func (b *Block) Size() int { return len(b.data) }

// Bytes returns a copy of the block's contents.
func (b *Block) Bytes() []byte { return slices.Clone(b.data) }

// ReadByte returns the byte at offset.
func (b *Block) ReadByte(offset int) (byte, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, fmt.Errorf("%w: read at offset %#x (size %#x)", ErrOutOfBounds, offset, len(b.data))
	}
	return b.data[offset], nil
}

// WriteByte stores value at offset. value must be in [0, 255].
func (b *Block) WriteByte(offset, value int) error {
	if value < 0 || value > 0xff {
		return fmt.Errorf("%w: value %d", ErrValueNotByte, value)
	}
	if offset < 0 || offset >= len(b.data) {
		return fmt.Errorf("%w: write at offset %#x (size %#x)", ErrOutOfBounds, offset, len(b.data))
	}
	b.data[offset] = byte(value)
	return nil
}

// ReadRange returns an independent copy of the bytes in [begin, end).
func (b *Block) ReadRange(begin, end int) (*Block, error) {
	if end < begin {
		return nil, fmt.Errorf("%w: range [%#x, %#x) ends before it begins", ErrInvalidArgument, begin, end)
	}
	if begin < 0 || end > len(b.data) {
		return nil, fmt.Errorf("%w: range [%#x, %#x) (size %#x)", ErrOutOfBounds, begin, end, len(b.data))
	}
	return FromBytes(b.data[begin:end]), nil
}

// WriteRange overwrites the bytes in [begin, end) with data, which must be
// exactly end-begin bytes. Zero-length writes are rejected.
func (b *Block) WriteRange(begin, end int, data []byte) error {
	if end < begin {
		return fmt.Errorf("%w: range [%#x, %#x) ends before it begins", ErrInvalidArgument, begin, end)
	}
	if begin < 0 || end > len(b.data) {
		return fmt.Errorf("%w: range [%#x, %#x) (size %#x)", ErrOutOfBounds, begin, end, len(b.data))
	}
	if len(data) != end-begin {
		return fmt.Errorf("%w: %d bytes of data for a range of length %d", ErrInvalidArgument, len(data), end-begin)
	}
	if end == begin {
		return fmt.Errorf("%w: zero-length write at %#x", ErrInvalidArgument, begin)
	}
	copy(b.data[begin:end], data)
	return nil
}

// ReadMulti reads width consecutive bytes starting at offset and assembles
// them into a little-endian unsigned integer. A width of zero reads nothing
// and returns 0.
func (b *Block) ReadMulti(offset, width int) (uint64, error) {
	if width < 0 {
		return 0, fmt.Errorf("%w: read of negative width %d", ErrInvalidArgument, width)
	}
	if width == 0 {
		return 0, nil
	}
	if !buf.Has(len(b.data), offset, width) {
		return 0, fmt.Errorf("%w: read of %d bytes at offset %#x (size %#x)", ErrOutOfBounds, width, offset, len(b.data))
	}
	return buf.AssembleLE(b.data[offset : offset+width]), nil
}

// WriteMulti spreads value over width consecutive bytes starting at offset,
// least significant byte first; value is truncated to width bytes.
func (b *Block) WriteMulti(offset int, value uint64, width int) error {
	if width < 0 {
		return fmt.Errorf("%w: write of negative width %d", ErrInvalidArgument, width)
	}
	if offset < 0 || offset >= len(b.data) || !buf.Has(len(b.data), offset, width) {
		return fmt.Errorf("%w: write of %d bytes at offset %#x (size %#x)", ErrOutOfBounds, width, offset, len(b.data))
	}
	buf.SpreadLE(value, b.data[offset:offset+width])
	return nil
}

// AppendZeros extends the block with n zero bytes.
func (b *Block) AppendZeros(n int) {
	if n <= 0 {
		return
	}
	b.data = append(b.data, make([]byte, n)...)
}

// PrependZeros extends the block with n zero bytes at the front, shifting all
// existing contents up by n.
func (b *Block) PrependZeros(n int) {
	if n <= 0 {
		return
	}
	b.data = append(make([]byte, n), b.data...)
}

// TrimFront discards the first n bytes of the block.
func (b *Block) TrimFront(n int) error {
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("%w: cannot trim %#x bytes from a block of size %#x", ErrOutOfBounds, n, len(b.data))
	}
	b.data = b.data[n:]
	return nil
}

// Equal reports whether b and o have identical length and contents.
func (b *Block) Equal(o *Block) bool {
	return o != nil && bytes.Equal(b.data, o.data)
}

// Hash returns a CRC-32 checksum of the block's contents.
func (b *Block) Hash() uint32 {
	return crc32.ChecksumIEEE(b.data)
}
