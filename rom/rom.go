package rom

import (
	"errors"

	"github.com/LittlestCube/romkit/block"
	"github.com/LittlestCube/romkit/block/alloc"
	"github.com/LittlestCube/romkit/format"
)

// ErrUnsupported indicates a header or expansion operation on a rom type
// that does not define it.
var ErrUnsupported = errors.New("rom: unsupported operation")

// TagEarthbound is the one rom type with header and expansion transforms.
const TagEarthbound = format.Tag("Earthbound")

// Rom is a loaded ROM image: the block itself, the free-range tracker over
// it, and the detected rom type.
//
// Not safe for concurrent use.
type Rom struct {
	Block *block.Block
	Free  *alloc.FreeList
	Tag   format.Tag

	headerStripped bool
}

// Open loads the file at path and classifies it against the table.
func Open(path string, t *format.Table) (*Rom, error) {
	b, err := block.FromFile(path)
	if err != nil {
		return nil, err
	}
	return detect(b, t), nil
}

// FromBytes builds a Rom from a copy of data.
func FromBytes(data []byte, t *format.Table) *Rom {
	return detect(block.FromBytes(data), t)
}

// FromBlock builds a Rom from a copy of src's contents.
func FromBlock(src *block.Block, t *format.Table) *Rom {
	return FromBytes(src.Bytes(), t)
}

// detect classifies b, stripping its header if present, and seeds the free
// list from the matched descriptor.
func detect(b *block.Block, t *format.Table) *Rom {
	res := format.Detect(b, t)
	free := alloc.New(b)
	free.Seed(res.FreeRanges)
	return &Rom{
		Block:          b,
		Free:           free,
		Tag:            res.Tag,
		headerStripped: res.HeaderStripped,
	}
}

// HeaderStripped reports whether detection removed a copier header.
func (r *Rom) HeaderStripped() bool { return r.headerStripped }

// Size returns the image size in bytes.
func (r *Rom) Size() int { return r.Block.Size() }

// Save writes the full image to the file at path.
func (r *Rom) Save(path string) error {
	return r.Block.ToFile(path)
}
