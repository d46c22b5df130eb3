package atlas

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/atlasdown/model"
)

func TestWriteEndToEnd(t *testing.T) {
	input := `pageA
size: 200, 100
format: RGBA8888
filter: Linear, Linear
repeat: none
scale: 2
regionA
  rotate: false
  xy: 10, 20
  size: 30, 40
  orig: 30, 40
  offset: 0, 0
  index: -1
`
	want := `pageA
size: 100, 50
format: RGBA8888
filter: Linear, Linear
repeat: none
regionA
  rotate: false
  xy: 5, 10
  size: 15, 20
  orig: 15, 20
  offset: 0, 0
  index: -1
`
	doc, _ := ParseString(input)
	if diff := cmp.Diff(want, Format(doc)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCompensation(t *testing.T) {
	doc, _ := ParseString(`p.png
size: 400, 400
scale: 2
r
xy: 100, 200
size: 50, 60
orig: 60, 70
offset: 5, 5
`)
	out := Format(doc)

	for _, line := range []string{
		"  xy: 50, 100\n",
		"  size: 25, 30\n",
		"  orig: 30, 35\n",
		"  offset: 2, 2\n",
		"size: 200, 200\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestWriteRotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"true", "  rotate: true\n"},
		{"false", "  rotate: false\n"},
		{"90", "  rotate: true\n"},
		{"0", "  rotate: false\n"},
		{"45", "  rotate: 45\n"},
		{"-30", "  rotate: -30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			doc, _ := ParseString("p\nsize: 8, 8\nscale: 2\nr\nrotate: " + tt.in + "\n")
			out := Format(doc)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestWriteOptionalBorders(t *testing.T) {
	tests := []struct {
		name      string
		entries   string
		wantSplit string
		wantPad   string
	}{
		{"neither", "", "", ""},
		{"split only", "split: 4, 4, 6, 6\n", "  split: 2, 2, 3, 3\n", ""},
		{"pad only", "pad: 2, 3, 4, 5\n", "", "  pad: 1, 1, 2, 2\n"},
		{"both", "split: 4, 4, 6, 6\npad: 2, 3, 4, 5\n", "  split: 2, 2, 3, 3\n", "  pad: 1, 1, 2, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := ParseString("p\nsize: 8, 8\nscale: 2\nr\nxy: 0, 0\n" + tt.entries)
			out := Format(doc)

			checkLine(t, out, "split:", tt.wantSplit)
			checkLine(t, out, "pad:", tt.wantPad)
			if tt.wantSplit != "" && tt.wantPad != "" {
				if strings.Index(out, "split:") > strings.Index(out, "pad:") {
					t.Error("split must precede pad")
				}
			}
		})
	}
}

func checkLine(t *testing.T, out, key, want string) {
	t.Helper()
	if want == "" {
		if strings.Contains(out, key) {
			t.Errorf("unexpected %s line:\n%s", key, out)
		}
		return
	}
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

func TestWriteOrigFallback(t *testing.T) {
	// A region whose first entry is size: would parse as a page, so the
	// document is built directly.
	doc := model.NewDocument()
	page := model.NewPage("p")
	r := model.NewRegion("r")
	r.Width, r.Height = 7, 9
	page.AddRegion(r)
	doc.AddPage(page)

	if out := Format(doc); !strings.Contains(out, "  orig: 7, 9\n") {
		t.Errorf("orig should fall back to packed size:\n%s", out)
	}
}

func TestWriteExtensions(t *testing.T) {
	doc, _ := ParseString("p\nsize: 8, 8\nr\nxy: 1, 1\nhull: 4, 5\n")

	if out := Format(doc); strings.Contains(out, "hull") {
		t.Errorf("extensions must be dropped by default:\n%s", out)
	}

	out := Format(doc, WithExtensions())
	if !strings.HasSuffix(out, "  index: -1\n  hull: 4, 5\n") {
		t.Errorf("extension should follow index:\n%s", out)
	}
}

func TestWriteIndent(t *testing.T) {
	doc, _ := ParseString("p\nsize: 8, 8\nr\nxy: 1, 1\n")
	out := Format(doc, WithIndent("\t"))
	if !strings.Contains(out, "\txy: 1, 1\n") {
		t.Errorf("expected tab indent:\n%s", out)
	}
}

func TestWriteIdentityAtScaleOne(t *testing.T) {
	input := `one.png
size: 256, 128
format: RGBA4444
filter: MipMapLinearLinear, Linear
repeat: x
a
  bounds: 1, 2, 30, 40
  offsets: 3, 4, 36, 48
  rotate: true
  index: 2
b
  bounds: 40, 2, 10, 12
  offsets: 0, 0, 10, 12
  rotate: 33
  split: 1, 2, 3, 4
  pad: 5, 6, 7, 8
  weights: 9, 10

two.png
size: 32, 32
c
  xy: 0, 0
  size: 32, 32
  orig: 32, 32
  offset: 0, 0
`
	first, diags := ParseString(input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	second, diags := ParseString(Format(first, WithExtensions()))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics on reparse: %v", diags)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestWriteMultiplePages(t *testing.T) {
	doc := model.NewDocument()
	doc.AddPage(model.NewPage("a.png"))
	doc.AddPage(model.NewPage("b.png"))

	want := "a.png\nsize: 0, 0\nformat: RGBA8888\nfilter: Nearest, Nearest\nrepeat: none\n\n" +
		"b.png\nsize: 0, 0\nformat: RGBA8888\nfilter: Nearest, Nearest\nrepeat: none\n"
	if diff := cmp.Diff(want, Format(doc)); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLayoutBoundaries(t *testing.T) {
	if got := Format(model.NewDocument()); got != "" {
		t.Errorf("empty document = %q, want empty", got)
	}

	doc, _ := ParseString(sample4x)
	out := Format(doc)
	if !strings.HasSuffix(out, "  index: -1\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("output should end with a single newline: %q", out[len(out)-20:])
	}
	if n := strings.Count(out, "\n\n"); n != len(doc.Pages)-1 {
		t.Errorf("found %d blank lines, want %d between pages", n, len(doc.Pages)-1)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	doc, _ := ParseString(sample4x)
	err := Write(failingWriter{}, doc)
	if err == nil {
		t.Fatal("expected write error")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error = %v, want wrapped write error", err)
	}
}
