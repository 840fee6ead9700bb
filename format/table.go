package format

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/LittlestCube/romkit/block"
	"github.com/LittlestCube/romkit/block/alloc"
)

// Tag identifies a rom type by its descriptor name. TagUnknown marks an
// image no descriptor matched.
type Tag string

// TagUnknown is the sentinel for an unrecognized image.
const TagUnknown Tag = "Unknown"

// PlatformSNES selects the multi-variant SNES detection path. Any other
// platform string is matched by a plain signature compare.
const PlatformSNES = "SNES"

// Descriptor describes one known rom type.
type Descriptor struct {
	Name       string
	Platform   string
	Offset     int           // where the signature bytes live in the image
	Signature  []byte        // exact bytes expected at Offset
	FreeRanges []alloc.Range // ranges an image of this type leaves free, sorted
}

// Table holds rom type descriptors in declaration order.
type Table struct {
	descs []Descriptor
}

// Descriptors returns the table's descriptors in declaration order.
func (t *Table) Descriptors() []Descriptor { return t.descs }

// Lookup returns the descriptor whose name matches tag.
func (t *Table) Lookup(tag Tag) (Descriptor, bool) {
	for _, d := range t.descs {
		if d.Name == string(tag) {
			return d, true
		}
	}
	return Descriptor{}, false
}

//go:embed romtypes.yml
var defaultTableYAML []byte

var defaultTable = sync.OnceValue(func() *Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic("format: embedded rom type table: " + err.Error())
	}
	return t
})

// DefaultTable returns the built-in rom type table.
func DefaultTable() *Table { return defaultTable() }

// LoadTable reads a rom type table from the YAML file at path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read %s: %v", block.ErrFileAccess, path, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// descriptorYAML is the external shape of a table entry.
type descriptorYAML struct {
	Platform   string   `yaml:"platform"`
	Offset     int      `yaml:"offset"`
	Data       []int    `yaml:"data"`
	FreeRanges []string `yaml:"free ranges"`
}

// ParseTable parses a rom type table from YAML. The document is a mapping
// from rom type name to descriptor; mapping order is preserved so that
// detection tries descriptors in the order they are declared.
func ParseTable(data []byte) (*Table, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("format: parsing rom type table: %w", err)
	}
	if len(root.Content) == 0 {
		return &Table{}, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("format: rom type table must be a mapping, got %v", doc.Kind)
	}

	t := &Table{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name := doc.Content[i].Value
		var raw descriptorYAML
		if err := doc.Content[i+1].Decode(&raw); err != nil {
			return nil, fmt.Errorf("format: rom type %q: %w", name, err)
		}
		d, err := convertDescriptor(name, raw)
		if err != nil {
			return nil, err
		}
		t.descs = append(t.descs, d)
	}
	return t, nil
}

func convertDescriptor(name string, raw descriptorYAML) (Descriptor, error) {
	if raw.Offset < 0 {
		return Descriptor{}, fmt.Errorf("format: rom type %q: negative signature offset %d", name, raw.Offset)
	}
	if len(raw.Data) == 0 {
		return Descriptor{}, fmt.Errorf("format: rom type %q: empty signature", name)
	}
	sig := make([]byte, len(raw.Data))
	for i, v := range raw.Data {
		if v < 0 || v > 0xff {
			return Descriptor{}, fmt.Errorf("format: rom type %q: signature byte %d out of range: %d", name, i, v)
		}
		sig[i] = byte(v)
	}

	// Free ranges arrive as "(begin, end)" strings; convert them to typed
	// ranges here so detection never parses text.
	ranges := make([]alloc.Range, 0, len(raw.FreeRanges))
	for _, s := range raw.FreeRanges {
		r, err := alloc.ParseRange(s)
		if err != nil {
			return Descriptor{}, fmt.Errorf("format: rom type %q: free range %q: %w", name, s, err)
		}
		if r.End < r.Begin {
			return Descriptor{}, fmt.Errorf("format: rom type %q: free range %s ends before it begins", name, r)
		}
		ranges = append(ranges, r)
	}

	d := Descriptor{
		Name:       name,
		Platform:   raw.Platform,
		Offset:     raw.Offset,
		Signature:  sig,
		FreeRanges: ranges,
	}
	alloc.SortRanges(d.FreeRanges)
	return d, nil
}
