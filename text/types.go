package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies horizontal text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (Latin, CJK, Cyrillic, ...).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Alignment specifies horizontal text alignment within the layout width.
type Alignment int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Glyph is a single shaped glyph placement within a Layout.
type Glyph struct {
	// GID is the glyph index in the source font.
	GID uint16

	// Cluster is the rune index in the paragraph this glyph belongs to.
	// Multiple glyphs can share a cluster (ligatures, combining marks);
	// lines never break inside a cluster.
	Cluster int

	// X, Y position the glyph origin (pen position on the baseline)
	// relative to the top-left corner of the text block.
	X, Y float64

	// XAdvance is the horizontal pen advance after this glyph.
	XAdvance float64
}
