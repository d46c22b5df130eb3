package model

import "math"

// Default page property values used when the descriptor omits them.
const (
	DefaultFormat = "RGBA8888"
	DefaultFilter = "Nearest"
	DefaultRepeat = "none"
	DefaultScale  = 1.0
)

// Page represents a single texture sheet in an atlas
type Page struct {
	Name               string  // Page name, also the companion bitmap file name
	Width              int     // Sheet width as packed, before scale compensation
	Height             int     // Sheet height as packed, before scale compensation
	Format             string  // Pixel format tag (e.g. RGBA8888)
	MinFilter          string  // Minification filter
	MagFilter          string  // Magnification filter
	Repeat             string  // Wrap mode: none, x, y or xy
	PremultipliedAlpha bool    // pma flag
	Scale              float64 // Downscale factor, always > 0

	Regions []*Region
}

// NewPage creates a new page with the default property values
func NewPage(name string) *Page {
	return &Page{
		Name:      name,
		Format:    DefaultFormat,
		MinFilter: DefaultFilter,
		MagFilter: DefaultFilter,
		Repeat:    DefaultRepeat,
		Scale:     DefaultScale,
		Regions:   make([]*Region, 0),
	}
}

// AddRegion appends a region to the page, preserving insertion order
func (p *Page) AddRegion(region *Region) {
	p.Regions = append(p.Regions, region)
}

// NeedsScaling returns true if the page coordinates must be compensated
func (p *Page) NeedsScaling() bool {
	return p.Scale != 1.0
}

// SetScale stores scale if it satisfies the page invariant. It reports
// whether the value was accepted.
func (p *Page) SetScale(scale float64) bool {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return false
	}
	p.Scale = scale
	return true
}
