package atlas

import (
	"strings"
)

// State is the position of the parser within the block structure.
type State int

const (
	// AwaitingBlockName means no page is open yet.
	AwaitingBlockName State = iota
	// ClassifyByLookahead means a name line was read and the following line
	// decides whether it opens a page or a region.
	ClassifyByLookahead
	// ParsingPageProperties means entries apply to the current page.
	ParsingPageProperties
	// ParsingRegionProperties means entries apply to the current region.
	ParsingRegionProperties
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case AwaitingBlockName:
		return "AwaitingBlockName"
	case ClassifyByLookahead:
		return "ClassifyByLookahead"
	case ParsingPageProperties:
		return "ParsingPageProperties"
	case ParsingRegionProperties:
		return "ParsingRegionProperties"
	default:
		return "Unknown"
	}
}

// Block is what a name line opens.
type Block int

const (
	// BlockPage opens a new page.
	BlockPage Block = iota
	// BlockRegion opens a new region under the current page.
	BlockRegion
	// BlockNone means the name line is ignored.
	BlockNone
)

// String returns the name of the block kind.
func (b Block) String() string {
	switch b {
	case BlockPage:
		return "page"
	case BlockRegion:
		return "region"
	default:
		return "none"
	}
}

// pagePrefix marks the first property line of a page block.
const pagePrefix = "size:"

// Classify decides what the name line opens given the trimmed line that
// immediately follows it and whether a page is currently open. A name line
// followed by a line starting with "size:" always opens a page.
func Classify(next string, havePage bool) Block {
	if strings.HasPrefix(next, pagePrefix) {
		return BlockPage
	}
	if havePage {
		return BlockRegion
	}
	return BlockNone
}

// IsNameLine reports whether a trimmed, non-empty line names a block.
func IsNameLine(line string) bool {
	return !strings.Contains(line, ":")
}

// SplitEntry splits a "key: v1, v2" line at its first colon. Each value is
// trimmed. ok is false for lines without a colon or with an empty key.
func SplitEntry(line string) (key string, values []string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", nil, false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", nil, false
	}
	parts := strings.Split(strings.TrimSpace(line[idx+1:]), ",")
	values = make([]string, len(parts))
	for i, p := range parts {
		values[i] = strings.TrimSpace(p)
	}
	return key, values, true
}

// scanner walks the descriptor one line at a time. It keeps the raw lines so
// that the line after the current one can be inspected without consuming it.
type scanner struct {
	lines []string
	pos   int // index of the next line to return
}

func newScanner(text string) *scanner {
	return &scanner{lines: strings.Split(text, "\n")}
}

// next returns the next non-blank trimmed line and its 1-based line number.
func (s *scanner) next() (line string, lineNo int, ok bool) {
	for s.pos < len(s.lines) {
		line = strings.TrimSpace(s.lines[s.pos])
		s.pos++
		if line != "" {
			return line, s.pos, true
		}
	}
	return "", 0, false
}

// peek returns the trimmed line physically following the last one returned
// by next, blank or not, without consuming it.
func (s *scanner) peek() string {
	if s.pos >= len(s.lines) {
		return ""
	}
	return strings.TrimSpace(s.lines[s.pos])
}
