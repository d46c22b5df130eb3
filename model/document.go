package model

// Document represents a complete atlas descriptor
type Document struct {
	Pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// RegionCount returns the number of regions across all pages
func (d *Document) RegionCount() int {
	n := 0
	for _, page := range d.Pages {
		n += len(page.Regions)
	}
	return n
}

// NeedsScaling returns true if any page carries a scale other than 1
func (d *Document) NeedsScaling() bool {
	for _, page := range d.Pages {
		if page.NeedsScaling() {
			return true
		}
	}
	return false
}
