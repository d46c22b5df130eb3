package model

// Border holds four integer edge values (left, right, top, bottom), used for
// nine-slice splits and paddings.
type Border [4]int

// Extension is a region property the grammar does not recognize, kept so
// that schema drift between tool versions does not fail a conversion.
type Extension struct {
	Key    string
	Values []int
}

// Region represents a named sub-rectangle of a page
type Region struct {
	Name           string
	X, Y           int // Top-left position within the page
	Width, Height  int // Packed rectangle size
	Degrees        int // Rotation: 0, 90 or an arbitrary angle
	Index          int // Ordinal for multi-part attachments, -1 for none
	OriginalWidth  int // Size before whitespace trimming, 0 if unknown
	OriginalHeight int
	OffsetX        int // Trim offset within the original bounding box
	OffsetY        int
	Split          *Border // nil unless the descriptor supplied one
	Pad            *Border // nil unless the descriptor supplied one

	Extensions []Extension
}

// NewRegion creates a region with no index
func NewRegion(name string) *Region {
	return &Region{
		Name:  name,
		Index: -1,
	}
}

// Rotated returns true for the orthogonal 90 degree packing rotation
func (r *Region) Rotated() bool {
	return r.Degrees == 90
}

// OriginalSize returns the untrimmed size, falling back to the packed size
// when the original size is unknown.
func (r *Region) OriginalSize() (width, height int) {
	width, height = r.OriginalWidth, r.OriginalHeight
	if width <= 0 {
		width = r.Width
	}
	if height <= 0 {
		height = r.Height
	}
	return width, height
}

// AddExtension records values under key. Values for a key that was already
// seen are appended to the existing entry so keys stay unique and ordered by
// first appearance.
func (r *Region) AddExtension(key string, values []int) {
	for i := range r.Extensions {
		if r.Extensions[i].Key == key {
			r.Extensions[i].Values = append(r.Extensions[i].Values, values...)
			return
		}
	}
	r.Extensions = append(r.Extensions, Extension{
		Key:    key,
		Values: append([]int(nil), values...),
	})
}

// Extension returns the values recorded under key
func (r *Region) Extension(key string) ([]int, bool) {
	for _, ext := range r.Extensions {
		if ext.Key == key {
			return ext.Values, true
		}
	}
	return nil, false
}
