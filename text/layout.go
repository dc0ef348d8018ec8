package text

import (
	"strings"

	"github.com/go-text/typesetting/font"

	"github.com/makequote/makequote/fonts"
)

// fallbackRune substitutes code points the font does not map, so layout
// never fails on uncovered input.
const fallbackRune = '�'

// Options configures text layout.
type Options struct {
	// MaxWidth is the maximum line width in pixels.
	// If 0, no line wrapping is performed.
	MaxWidth float64

	// LineSpacing is a multiplier for the gap between lines.
	// Zero or negative values are treated as 1.0.
	LineSpacing float64

	// Alignment specifies horizontal alignment within MaxWidth.
	Alignment Alignment

	// Direction is the base paragraph direction used when the text has
	// no strong directional characters.
	Direction Direction
}

// DefaultOptions returns the default layout options.
func DefaultOptions() Options {
	return Options{LineSpacing: 1.0}
}

// Line is one laid-out line of glyphs.
type Line struct {
	// Glyphs in left-to-right visual order, positioned relative to the
	// layout's top-left corner.
	Glyphs []Glyph

	// Width is the total advance width of the line.
	Width float64

	// Ascent and Descent are the vertical extents around the baseline.
	Ascent, Descent float64

	// Y is the baseline position within the layout.
	Y float64
}

// Layout is the result of laying out a text block: glyph placements in
// reading order, relative to the block's top-left corner at (0, 0).
type Layout struct {
	Lines []Line

	// Width is the widest line's advance width.
	Width float64

	// Height is the distance from the top of the first line to the
	// bottom of the last.
	Height float64
}

// LayoutText lays out text at the given pixel size. Hard line breaks
// split paragraphs; each paragraph is segmented, shaped, and wrapped to
// Options.MaxWidth. Empty text yields an empty layout with zero lines.
// Runes the font does not cover are replaced with U+FFFD when the font
// maps it, otherwise they shape to the font's .notdef glyph.
func LayoutText(content string, src *fonts.Source, sizePx float64, opts Options) *Layout {
	if content == "" || src == nil || sizePx <= 0 {
		return &Layout{}
	}
	if opts.LineSpacing <= 0 {
		opts.LineSpacing = 1.0
	}

	metrics := src.Metrics(sizePx)
	face := src.ShapingFace()

	layout := &Layout{}
	var y float64

	for _, para := range splitParagraphs(content) {
		runes := substituteFallback([]rune(para), src)

		var paraLines []Line
		if len(runes) == 0 {
			// Blank line: keeps its vertical space, no glyphs.
			paraLines = []Line{{Ascent: metrics.Ascent, Descent: metrics.Descent}}
		} else {
			paraLines = layoutParagraph(runes, face, sizePx, opts, metrics)
		}

		for i := range paraLines {
			line := &paraLines[i]
			if len(layout.Lines) == 0 && i == 0 {
				y = line.Ascent
			} else {
				y += line.Ascent
			}
			line.Y = y
			for j := range line.Glyphs {
				line.Glyphs[j].Y += y
			}
			y += line.Descent + metrics.LineGap*opts.LineSpacing

			alignLine(line, opts.Alignment, opts.MaxWidth)
			if line.Width > layout.Width {
				layout.Width = line.Width
			}
		}
		layout.Lines = append(layout.Lines, paraLines...)
	}

	if n := len(layout.Lines); n > 0 {
		last := &layout.Lines[n-1]
		layout.Height = last.Y + last.Descent
	}
	return layout
}

// splitParagraphs splits text at hard line breaks.
func splitParagraphs(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

// substituteFallback replaces unmapped runes with the fallback glyph's
// rune when the font covers it. Newlines never reach this point, so only
// printable content is substituted.
func substituteFallback(runes []rune, src *fonts.Source) []rune {
	if !src.HasGlyph(fallbackRune) {
		return runes
	}
	for i, r := range runes {
		if !src.HasGlyph(r) {
			runes[i] = fallbackRune
		}
	}
	return runes
}

// layoutParagraph shapes and wraps one paragraph into lines. Line glyph
// X positions are rebased to start at zero per line; Y stays relative to
// the baseline until LayoutText assigns baselines.
func layoutParagraph(runes []rune, face *font.Face, sizePx float64, opts Options, metrics fonts.Metrics) []Line {
	segments := segmentParagraph(runes, opts.Direction)

	var glyphs []Glyph
	var x float64
	ascent := metrics.Ascent
	descent := metrics.Descent

	for _, seg := range segments {
		run := shapeSegment(runes, seg, face, sizePx, x)
		glyphs = append(glyphs, run.glyphs...)
		x += run.advance
		if run.ascent > ascent {
			ascent = run.ascent
		}
		if run.descent > descent {
			descent = run.descent
		}
	}
	if len(glyphs) == 0 {
		return []Line{{Ascent: ascent, Descent: descent}}
	}

	wrapped := wrapGlyphs(glyphs, runes, opts.MaxWidth)

	lines := make([]Line, 0, len(wrapped))
	for _, lineGlyphs := range wrapped {
		line := Line{
			Glyphs:  lineGlyphs,
			Ascent:  ascent,
			Descent: descent,
		}
		if len(lineGlyphs) > 0 {
			startX := lineGlyphs[0].X
			for i := range lineGlyphs {
				lineGlyphs[i].X -= startX
			}
			last := &lineGlyphs[len(lineGlyphs)-1]
			line.Width = last.X + last.XAdvance
		}
		lines = append(lines, line)
	}
	return lines
}

// alignLine shifts a line's glyphs horizontally inside the container
// width. Left alignment is a no-op; with no container width the line
// itself is the container and nothing moves.
func alignLine(line *Line, alignment Alignment, maxWidth float64) {
	if alignment == AlignLeft || maxWidth <= 0 || len(line.Glyphs) == 0 {
		return
	}

	var offset float64
	switch alignment {
	case AlignCenter:
		offset = (maxWidth - line.Width) / 2
	case AlignRight:
		offset = maxWidth - line.Width
	}
	if offset == 0 {
		return
	}
	for i := range line.Glyphs {
		line.Glyphs[i].X += offset
	}
}
