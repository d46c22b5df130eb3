package atlasdown

import (
	"fmt"
	"strings"
)

// WarningKind classifies a recovered problem.
type WarningKind int

const (
	// MalformedLine means an atlas line was skipped or partly applied.
	MalformedLine WarningKind = iota
	// MissingCompanionImage means a page bitmap was not found.
	MissingCompanionImage
	// ImageResampleFailure means a page bitmap could not be rescaled.
	ImageResampleFailure
	// ExternalProcessFailure means the skeleton converter failed.
	ExternalProcessFailure
)

// String returns the name of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case MissingCompanionImage:
		return "missing image"
	case ImageResampleFailure:
		return "resample failed"
	case ExternalProcessFailure:
		return "converter failed"
	default:
		return "unknown"
	}
}

// Warning describes a problem that did not stop the conversion.
type Warning struct {
	Kind    WarningKind
	Page    string // page involved, if any
	Line    int    // atlas line for MalformedLine, 0 otherwise
	Message string
}

// String formats the warning on a single line.
func (w Warning) String() string {
	var sb strings.Builder
	sb.WriteString(w.Kind.String())
	if w.Line > 0 {
		fmt.Fprintf(&sb, " at line %d", w.Line)
	}
	if w.Page != "" {
		fmt.Fprintf(&sb, " [%s]", w.Page)
	}
	sb.WriteString(": ")
	sb.WriteString(w.Message)
	return sb.String()
}

// FormatWarnings joins warnings into a human readable, multi-line string.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
