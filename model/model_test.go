package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Document Tests
// ============================================================================

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0", doc.PageCount())
	}
	if doc.RegionCount() != 0 {
		t.Errorf("RegionCount() = %d, want 0", doc.RegionCount())
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	a := NewPage("a.png")
	b := NewPage("b.png")
	doc.AddPage(a)
	doc.AddPage(b)

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Pages[0] != a || doc.Pages[1] != b {
		t.Error("pages out of insertion order")
	}
}

func TestDocumentRegionCount(t *testing.T) {
	doc := NewDocument()
	a := NewPage("a.png")
	a.AddRegion(NewRegion("r1"))
	a.AddRegion(NewRegion("r2"))
	b := NewPage("b.png")
	b.AddRegion(NewRegion("r3"))
	doc.AddPage(a)
	doc.AddPage(b)

	if got := doc.RegionCount(); got != 3 {
		t.Errorf("RegionCount() = %d, want 3", got)
	}
}

func TestDocumentNeedsScaling(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage("a.png"))
	if doc.NeedsScaling() {
		t.Error("document with default scale should not need scaling")
	}

	p := NewPage("b.png")
	p.Scale = 0.5
	doc.AddPage(p)
	if !doc.NeedsScaling() {
		t.Error("document with a scaled page should need scaling")
	}
}

// ============================================================================
// Page Tests
// ============================================================================

func TestNewPageDefaults(t *testing.T) {
	got := NewPage("sheet.png")
	want := &Page{
		Name:      "sheet.png",
		Format:    "RGBA8888",
		MinFilter: "Nearest",
		MagFilter: "Nearest",
		Repeat:    "none",
		Scale:     1.0,
		Regions:   []*Region{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewPage() mismatch (-want +got):\n%s", diff)
	}
}

func TestPageRegionOrder(t *testing.T) {
	p := NewPage("sheet.png")
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		p.AddRegion(NewRegion(n))
	}

	for i, r := range p.Regions {
		if r.Name != names[i] {
			t.Errorf("Regions[%d].Name = %q, want %q", i, r.Name, names[i])
		}
	}
}

func TestPageSetScale(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		ok    bool
		want  float64
	}{
		{"half", 0.5, true, 0.5},
		{"double", 2, true, 2},
		{"zero", 0, false, 1},
		{"negative", -2, false, 1},
		{"nan", math.NaN(), false, 1},
		{"inf", math.Inf(1), false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage("p.png")
			if ok := p.SetScale(tt.scale); ok != tt.ok {
				t.Errorf("SetScale(%v) = %v, want %v", tt.scale, ok, tt.ok)
			}
			if p.Scale != tt.want {
				t.Errorf("Scale = %v, want %v", p.Scale, tt.want)
			}
		})
	}
}

// ============================================================================
// Region Tests
// ============================================================================

func TestNewRegionDefaults(t *testing.T) {
	r := NewRegion("head")
	if r.Index != -1 {
		t.Errorf("Index = %d, want -1", r.Index)
	}
	if r.Split != nil || r.Pad != nil {
		t.Error("Split and Pad should start unpopulated")
	}
	if r.Rotated() {
		t.Error("new region should not be rotated")
	}
}

func TestRegionOriginalSize(t *testing.T) {
	tests := []struct {
		name         string
		region       Region
		wantW, wantH int
	}{
		{"known", Region{Width: 10, Height: 20, OriginalWidth: 12, OriginalHeight: 24}, 12, 24},
		{"unknown", Region{Width: 10, Height: 20}, 10, 20},
		{"width only", Region{Width: 10, Height: 20, OriginalWidth: 15}, 15, 20},
		{"height only", Region{Width: 10, Height: 20, OriginalHeight: 25}, 10, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.region.OriginalSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("OriginalSize() = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRegionExtensions(t *testing.T) {
	r := NewRegion("r")
	r.AddExtension("hull", []int{1, 2})
	r.AddExtension("weights", []int{7})
	r.AddExtension("hull", []int{3})

	want := []Extension{
		{Key: "hull", Values: []int{1, 2, 3}},
		{Key: "weights", Values: []int{7}},
	}
	if diff := cmp.Diff(want, r.Extensions); diff != "" {
		t.Errorf("Extensions mismatch (-want +got):\n%s", diff)
	}

	if v, ok := r.Extension("weights"); !ok || len(v) != 1 || v[0] != 7 {
		t.Errorf("Extension(weights) = %v, %v", v, ok)
	}
	if _, ok := r.Extension("missing"); ok {
		t.Error("Extension(missing) should not be found")
	}
}

func TestRegionExtensionCopiesValues(t *testing.T) {
	values := []int{1, 2}
	r := NewRegion("r")
	r.AddExtension("k", values)
	values[0] = 99

	got, _ := r.Extension("k")
	if got[0] != 1 {
		t.Errorf("extension values alias the caller's slice: got %v", got)
	}
}
