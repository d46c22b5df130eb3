package atlas

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/atlasdown/model"
)

// Diagnostic describes a line that was ignored or only partly applied.
type Diagnostic struct {
	Line   int    // 1-based line number
	Text   string // the trimmed line
	Reason string
}

// String formats the diagnostic as "line N: reason (text)".
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s (%q)", d.Line, d.Reason, d.Text)
}

// pageKeys are the entries that configure a page while it has no regions.
var pageKeys = map[string]bool{
	"size":   true,
	"format": true,
	"filter": true,
	"repeat": true,
	"pma":    true,
	"scale":  true,
}

// minValues is the number of values each known region key requires.
var minValues = map[string]int{
	"bounds":  4,
	"xy":      2,
	"size":    2,
	"offset":  2,
	"offsets": 4,
	"orig":    2,
	"rotate":  1,
	"index":   1,
	"split":   4,
	"pad":     4,
}

// Parse reads a 4.x atlas descriptor. A UTF-8 or UTF-16 byte order mark is
// honored. Malformed content never causes an error; it is reported through
// the returned diagnostics. Only read failures are returned as errors.
func Parse(r io.Reader) (*model.Document, []Diagnostic, error) {
	data, err := io.ReadAll(newDecoder(r))
	if err != nil {
		return nil, nil, fmt.Errorf("reading atlas: %w", err)
	}
	doc, diags := ParseString(string(data))
	return doc, diags, nil
}

// ParseString parses descriptor text that is already decoded.
func ParseString(text string) (*model.Document, []Diagnostic) {
	p := &parser{
		sc:    newScanner(text),
		doc:   model.NewDocument(),
		state: AwaitingBlockName,
	}
	p.run()
	return p.doc, p.diags
}

// parser holds the cursors for a single parse call.
type parser struct {
	sc     *scanner
	doc    *model.Document
	page   *model.Page
	region *model.Region
	state  State
	diags  []Diagnostic

	lineNo int
	line   string
}

func (p *parser) run() {
	for {
		line, lineNo, ok := p.sc.next()
		if !ok {
			return
		}
		p.line, p.lineNo = line, lineNo

		if IsNameLine(line) {
			p.state = ClassifyByLookahead
			p.openBlock(line, Classify(p.sc.peek(), p.page != nil))
			continue
		}

		key, values, ok := SplitEntry(line)
		if !ok {
			p.warn("entry has no key")
			continue
		}

		switch p.state {
		case ParsingPageProperties:
			if !pageKeys[key] {
				p.warn("unknown page property %q", key)
				continue
			}
			p.applyPage(key, values)
		case ParsingRegionProperties:
			p.applyRegion(key, values)
		default:
			p.warn("entry outside of any page")
		}
	}
}

// openBlock performs the transition out of ClassifyByLookahead.
func (p *parser) openBlock(name string, block Block) {
	switch block {
	case BlockPage:
		p.page = model.NewPage(name)
		p.doc.AddPage(p.page)
		p.region = nil
		p.state = ParsingPageProperties
	case BlockRegion:
		p.region = model.NewRegion(name)
		p.page.AddRegion(p.region)
		p.state = ParsingRegionProperties
	default:
		p.warn("name line outside of any page")
		p.state = AwaitingBlockName
	}
}

func (p *parser) applyPage(key string, values []string) {
	page := p.page
	switch key {
	case "size":
		if p.require(key, values, 2) {
			p.setInt(&page.Width, values[0])
			p.setInt(&page.Height, values[1])
		}
	case "format":
		page.Format = values[0]
	case "filter":
		if p.require(key, values, 2) {
			page.MinFilter = values[0]
			page.MagFilter = values[1]
		}
	case "repeat":
		page.Repeat = values[0]
	case "pma":
		page.PremultipliedAlpha = strings.EqualFold(values[0], "true")
	case "scale":
		scale, err := strconv.ParseFloat(values[0], 64)
		if err != nil || !page.SetScale(scale) {
			p.warn("invalid scale %q, using %g", values[0], page.Scale)
		}
	}
}

func (p *parser) applyRegion(key string, values []string) {
	region := p.region
	if n, known := minValues[key]; known && !p.require(key, values, n) {
		return
	}

	switch key {
	case "bounds":
		p.setInt(&region.X, values[0])
		p.setInt(&region.Y, values[1])
		p.setInt(&region.Width, values[2])
		p.setInt(&region.Height, values[3])
	case "xy":
		p.setInt(&region.X, values[0])
		p.setInt(&region.Y, values[1])
	case "size":
		p.setInt(&region.Width, values[0])
		p.setInt(&region.Height, values[1])
	case "offset":
		p.setInt(&region.OffsetX, values[0])
		p.setInt(&region.OffsetY, values[1])
	case "offsets":
		p.setInt(&region.OffsetX, values[0])
		p.setInt(&region.OffsetY, values[1])
		p.setInt(&region.OriginalWidth, values[2])
		p.setInt(&region.OriginalHeight, values[3])
	case "orig":
		p.setInt(&region.OriginalWidth, values[0])
		p.setInt(&region.OriginalHeight, values[1])
	case "rotate":
		switch strings.ToLower(values[0]) {
		case "true":
			region.Degrees = 90
		case "false":
			region.Degrees = 0
		default:
			p.setInt(&region.Degrees, values[0])
		}
	case "index":
		p.setInt(&region.Index, values[0])
	case "split":
		if b := p.border(values); b != nil {
			region.Split = b
		}
	case "pad":
		if b := p.border(values); b != nil {
			region.Pad = b
		}
	default:
		ints := make([]int, 0, len(values))
		for _, v := range values {
			if n, err := strconv.Atoi(v); err == nil {
				ints = append(ints, n)
			} else {
				p.warn("non-integer value %q for %q dropped", v, key)
			}
		}
		region.AddExtension(key, ints)
	}
}

// require reports whether values has at least n entries.
func (p *parser) require(key string, values []string, n int) bool {
	if len(values) < n {
		p.warn("%q needs %d values, got %d", key, n, len(values))
		return false
	}
	return true
}

// setInt stores the integer value of s in dst. dst is left alone if s is not
// an integer.
func (p *parser) setInt(dst *int, s string) {
	n, err := strconv.Atoi(s)
	if err != nil {
		p.warn("invalid integer %q", s)
		return
	}
	*dst = n
}

// border parses the first four values. It returns nil if any of them is not
// an integer.
func (p *parser) border(values []string) *model.Border {
	var b model.Border
	for i := range b {
		n, err := strconv.Atoi(values[i])
		if err != nil {
			p.warn("invalid integer %q", values[i])
			return nil
		}
		b[i] = n
	}
	return &b
}

func (p *parser) warn(format string, args ...interface{}) {
	p.diags = append(p.diags, Diagnostic{
		Line:   p.lineNo,
		Text:   p.line,
		Reason: fmt.Sprintf(format, args...),
	})
}
