package atlas

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder wraps r so that a leading UTF-8 or UTF-16 byte order mark
// selects the input encoding and is stripped. Input without a BOM is read as
// UTF-8.
func newDecoder(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
