package css

import (
	"errors"
)

// ErrUnclosedHeader is returned when leading comment is never closed and
// policy requires failure.
var ErrUnclosedHeader = errors.New("stylesheet header comment is not closed")

// FontFace is a single usable @font-face rule.
type FontFace struct {
	AssetPath    string // url with leading "./" removed
	UnicodeRange string // raw unicode-range value, empty if absent
	SourceLine   int    // 1-based line where rule was found, 0 if unknown
}

// Document is a stylesheet split into header and usable font faces.
type Document struct {
	Header string // verbatim, including line terminators
	Faces  []FontFace
	// HeaderClosed is false when no line with "*/" was found and the whole
	// input ended up in Header.
	HeaderClosed bool
}
