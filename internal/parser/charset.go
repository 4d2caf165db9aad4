package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps an io.Reader with automatic character encoding detection
// and conversion to UTF-8, so pages served as ISO-8859-1, Windows-1252 and the
// like parse correctly with goquery. The charset is detected from meta tags,
// BOMs, or heuristics; already-UTF-8 content passes through unchanged.
func NewUTF8Reader(body io.Reader) (io.Reader, error) {
	return charset.NewReader(body, "")
}
