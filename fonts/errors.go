package fonts

import "errors"

// Sentinel errors for fonts package.
var (
	// ErrEmptyData is returned when font data is empty.
	ErrEmptyData = errors.New("fonts: empty font data")

	// ErrMalformed is returned when the byte stream is not a recognizable
	// font container (TTF, OTF or TTC).
	ErrMalformed = errors.New("fonts: malformed font data")

	// ErrNoGlyphs is returned when a font parses but carries no usable
	// glyphs or character map.
	ErrNoGlyphs = errors.New("fonts: font has no usable glyphs")

	// ErrMissingRegular is returned when a Set is built without a regular
	// variant. Regular is the fallback for every other variant and cannot
	// be omitted.
	ErrMissingRegular = errors.New("fonts: regular variant is required")
)
