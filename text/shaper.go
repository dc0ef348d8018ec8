package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper keeps an
// internal buffer and is not safe for concurrent use, but reuse across
// sequential calls avoids reallocation.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// shapedRun is the shaping result for one segment: glyphs positioned
// with pen X accumulating from runStartX, plus the run's vertical bounds.
type shapedRun struct {
	glyphs  []Glyph
	advance float64
	ascent  float64
	descent float64
}

// shapeSegment shapes one segment of a paragraph with HarfBuzz. The full
// paragraph rune slice is passed so the shaper sees surrounding context;
// only [seg.RuneStart, seg.RuneEnd) produces glyphs. Glyph X positions
// start at startX and Cluster carries paragraph rune indices.
func shapeSegment(paraRunes []rune, seg Segment, face *font.Face, sizePx float64, startX float64) shapedRun {
	input := shaping.Input{
		Text:      paraRunes,
		RunStart:  seg.RuneStart,
		RunEnd:    seg.RuneEnd,
		Direction: mapDirection(seg.Direction),
		Face:      face,
		Size:      floatToFixed(sizePx),
		Script:    seg.Script,
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	run := shapedRun{
		glyphs:  make([]Glyph, 0, len(output.Glyphs)),
		ascent:  fixedToFloat(output.LineBounds.Ascent),
		descent: -fixedToFloat(output.LineBounds.Descent),
	}

	x := startX
	for _, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		run.glyphs = append(run.glyphs, Glyph{
			GID:      uint16(g.GlyphID),
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		})
		x += adv
	}
	run.advance = x - startX
	return run
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// floatToFixed converts a float64 pixel size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
