package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ttcfTag is the magic number of an OpenType font collection header.
const ttcfTag = 0x74746366 // "ttcf"

// Source is a parsed font resource. It owns two views of the same font
// data: a go-text/typesetting font used for HarfBuzz shaping, and an
// x/image sfnt font used for glyph rasterization and metrics.
//
// Source is immutable after Load and safe for concurrent use. The
// typesetting font.Face objects handed out by ShapingFace are NOT safe
// for concurrent use; a fresh one is created per call, which is cheap.
type Source struct {
	shaping *font.Font
	raster  *sfnt.Font
}

// bufPool pools sfnt.Buffer instances. sfnt.Buffer is not safe for
// concurrent use, so every lookup borrows one for the duration of a call.
var bufPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Load parses raw font bytes (TTF, OTF or a TTC collection) into a Source.
// For collections the first font is used.
//
// Returns ErrEmptyData for empty input, ErrMalformed when the bytes are
// not a recognizable font container, and ErrNoGlyphs when the font has no
// glyphs or no usable character map.
func Load(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	rasterFont, err := parseSFNT(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	shapingFont, err := parseShaping(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	s := &Source{
		shaping: shapingFont,
		raster:  rasterFont,
	}

	if err := s.checkCoverage(); err != nil {
		return nil, err
	}

	return s, nil
}

// parseSFNT parses the x/image sfnt view of the font data.
func parseSFNT(data []byte) (*sfnt.Font, error) {
	if isCollection(data) {
		coll, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	}
	return sfnt.Parse(data)
}

// parseShaping parses the go-text/typesetting view of the font data.
func parseShaping(data []byte) (*font.Font, error) {
	if isCollection(data) {
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if len(faces) == 0 {
			return nil, ErrNoGlyphs
		}
		return faces[0].Font, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

// isCollection reports whether the data starts with a "ttcf" header.
func isCollection(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	tag := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	return tag == ttcfTag
}

// checkCoverage rejects fonts without glyphs or without a working cmap.
func (s *Source) checkCoverage() error {
	if s.raster.NumGlyphs() == 0 {
		return ErrNoGlyphs
	}

	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)

	// A single successful cmap lookup is enough; the result may be zero
	// (.notdef) for uncovered runes, but a lookup error means the font has
	// no usable character map.
	if _, err := s.raster.GlyphIndex(buf, 'A'); err != nil {
		return fmt.Errorf("%w: %v", ErrNoGlyphs, err)
	}
	return nil
}

// ShapingFace returns a fresh typesetting face for this source.
// font.Face is not safe for concurrent use, so callers must not share the
// returned face across goroutines; creating one per call is cheap because
// it only wraps the shared read-only font.
func (s *Source) ShapingFace() *font.Face {
	return font.NewFace(s.shaping)
}

// GlyphIndex returns the glyph index for a rune, or 0 (.notdef) when the
// font does not cover it.
func (s *Source) GlyphIndex(r rune) uint16 {
	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)

	gid, err := s.raster.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return uint16(gid)
}

// HasGlyph reports whether the font maps the rune to a real glyph.
func (s *Source) HasGlyph(r rune) bool {
	return s.GlyphIndex(r) != 0
}

// NumGlyphs returns the number of glyphs in the font.
func (s *Source) NumGlyphs() int {
	return s.raster.NumGlyphs()
}

// Name returns the font family name, or an empty string if the font does
// not carry one.
func (s *Source) Name() string {
	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)

	name, err := s.raster.Name(buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics holds font-wide vertical metrics scaled to a pixel size.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the font metrics at the given pixel size.
func (s *Source) Metrics(sizePx float64) Metrics {
	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)

	ppem := fixed.Int26_6(sizePx * 64)
	m, err := s.raster.Metrics(buf, ppem, xfont.HintingNone)
	if err != nil {
		// Degenerate but non-fatal: approximate from the size.
		return Metrics{Ascent: sizePx * 0.8, Descent: sizePx * 0.2}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
