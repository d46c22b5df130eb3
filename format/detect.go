// Package format provides file kind detection for Spine export files.
package format

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a file kind handled by the converter.
type Format int

const (
	// Unknown indicates an unrecognized file.
	Unknown Format = iota
	// Atlas indicates a texture atlas descriptor (.atlas).
	Atlas
	// SkeletonJSON indicates skeleton data in JSON form (.json).
	SkeletonJSON
	// SkeletonBinary indicates skeleton data in binary form (.skel).
	SkeletonBinary
	// PNG indicates a PNG page bitmap.
	PNG
	// JPEG indicates a JPEG page bitmap.
	JPEG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Atlas:
		return "Atlas"
	case SkeletonJSON:
		return "SkeletonJSON"
	case SkeletonBinary:
		return "SkeletonBinary"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Atlas:
		return ".atlas"
	case SkeletonJSON:
		return ".json"
	case SkeletonBinary:
		return ".skel"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	default:
		return ""
	}
}

// IsSkeleton returns true for either skeleton data form.
func (f Format) IsSkeleton() bool {
	return f == SkeletonJSON || f == SkeletonBinary
}

// IsImage returns true for page bitmap formats.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".atlas":
		return Atlas
	case ".json":
		return SkeletonJSON
	case ".skel":
		return SkeletonBinary
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	default:
		return Unknown
	}
}

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
)

// DetectFromMagic checks leading bytes to determine format.
// Binary skeleton files carry no signature and are never detected here.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, pngMagic) {
		return PNG
	}
	if bytes.HasPrefix(data, jpegMagic) {
		return JPEG
	}

	text := bytes.TrimPrefix(data, utf8BOM)
	text = bytes.TrimLeft(text, " \t\r\n")
	if len(text) == 0 {
		return Unknown
	}
	if text[0] == '{' {
		return SkeletonJSON
	}
	if detectAtlasMagic(text) {
		return Atlas
	}
	return Unknown
}

// detectAtlasMagic checks for a leading name line followed by a size entry,
// the way every atlas page block starts.
func detectAtlasMagic(text []byte) bool {
	lines := bytes.SplitN(text, []byte("\n"), 3)
	if len(lines) < 2 {
		return false
	}
	name := bytes.TrimSpace(lines[0])
	next := bytes.TrimSpace(lines[1])
	return len(name) > 0 && !bytes.ContainsRune(name, ':') && bytes.HasPrefix(next, []byte("size:"))
}

// DetectFromReader inspects the first bytes of r to determine format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// Output format rules for converted skeleton files.
const (
	RuleSame  = "same"  // keep the source extension
	RuleJSON  = "json"  // always write JSON
	RuleSkel  = "skel"  // always write binary
	RuleOther = "other" // swap JSON and binary
)

// SkeletonOutputSuffix returns the extension a converted skeleton file gets
// under rule. sourceExt is the extension of the input file.
func SkeletonOutputSuffix(sourceExt, rule string) (string, error) {
	src := strings.ToLower(sourceExt)
	switch rule {
	case RuleSame, "":
		return src, nil
	case RuleJSON:
		return SkeletonJSON.Extension(), nil
	case RuleSkel:
		return SkeletonBinary.Extension(), nil
	case RuleOther:
		switch Detect(src) {
		case SkeletonJSON:
			return SkeletonBinary.Extension(), nil
		case SkeletonBinary:
			return SkeletonJSON.Extension(), nil
		}
		return "", fmt.Errorf("rule %q only applies to .json or .skel files, got %q", rule, sourceExt)
	default:
		return "", fmt.Errorf("unsupported output rule %q", rule)
	}
}
