package atlas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/atlasdown/model"
)

// WriteOption configures Write and Format.
type WriteOption func(*writeConfig)

type writeConfig struct {
	indent     string
	extensions bool
}

// WithExtensions makes the writer emit unrecognized region properties after
// the index line. Stock 3.x runtimes do not accept them, so they are dropped
// by default.
func WithExtensions() WriteOption {
	return func(c *writeConfig) {
		c.extensions = true
	}
}

// WithIndent sets the prefix of region property lines. The default is two
// spaces.
func WithIndent(indent string) WriteOption {
	return func(c *writeConfig) {
		c.indent = indent
	}
}

// Write emits doc in the 3.x atlas dialect. Spatial values are compensated
// for each page's scale; rotation and index are written as is.
func Write(w io.Writer, doc *model.Document, opts ...WriteOption) error {
	cfg := writeConfig{indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}

	lw := &lineWriter{w: bufio.NewWriter(w)}
	for i, page := range doc.Pages {
		// pages are separated by one blank line, the last ends with a newline
		if i > 0 {
			lw.line("", "")
		}
		writePage(lw, page, &cfg)
	}
	if lw.err != nil {
		return fmt.Errorf("writing atlas: %w", lw.err)
	}
	if err := lw.w.Flush(); err != nil {
		return fmt.Errorf("writing atlas: %w", err)
	}
	return nil
}

// Format returns doc in the 3.x atlas dialect as a string.
func Format(doc *model.Document, opts ...WriteOption) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = Write(&sb, doc, opts...)
	return sb.String()
}

func writePage(lw *lineWriter, page *model.Page, cfg *writeConfig) {
	scale := page.Scale

	lw.line("", page.Name)
	lw.line("", "size: "+pair(Compensate(page.Width, scale), Compensate(page.Height, scale)))
	lw.line("", "format: "+page.Format)
	lw.line("", "filter: "+page.MinFilter+", "+page.MagFilter)
	lw.line("", "repeat: "+page.Repeat)

	for _, region := range page.Regions {
		writeRegion(lw, region, scale, cfg)
	}
}

func writeRegion(lw *lineWriter, r *model.Region, scale float64, cfg *writeConfig) {
	in := cfg.indent

	lw.line("", r.Name)
	lw.line(in, "rotate: "+rotation(r.Degrees))
	lw.line(in, "xy: "+pair(Compensate(r.X, scale), Compensate(r.Y, scale)))
	lw.line(in, "size: "+pair(Compensate(r.Width, scale), Compensate(r.Height, scale)))
	if r.Split != nil {
		lw.line(in, "split: "+border(CompensateBorder(*r.Split, scale)))
	}
	// pad does not depend on split being present
	if r.Pad != nil {
		lw.line(in, "pad: "+border(CompensateBorder(*r.Pad, scale)))
	}
	ow, oh := r.OriginalSize()
	lw.line(in, "orig: "+pair(Compensate(ow, scale), Compensate(oh, scale)))
	lw.line(in, "offset: "+pair(Compensate(r.OffsetX, scale), Compensate(r.OffsetY, scale)))
	lw.line(in, "index: "+strconv.Itoa(r.Index))

	if cfg.extensions {
		for _, ext := range r.Extensions {
			lw.line(in, ext.Key+": "+ints(ext.Values))
		}
	}
}

// rotation mirrors the parse convention: 90 is "true", 0 is "false" and any
// other angle is written as a number.
func rotation(degrees int) string {
	switch degrees {
	case 90:
		return "true"
	case 0:
		return "false"
	default:
		return strconv.Itoa(degrees)
	}
}

func pair(a, b int) string {
	return strconv.Itoa(a) + ", " + strconv.Itoa(b)
}

func border(b model.Border) string {
	return ints(b[:])
}

func ints(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// lineWriter remembers the first write error so callers can check once.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) line(prefix, text string) {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.w.WriteString(prefix + text + "\n")
}
