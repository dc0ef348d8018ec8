package text

// breakClass classifies runes for line breaking (UAX #14, simplified).
type breakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther breakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before and after).
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '​': // zero-width space
		return breakZero
	case '(', '[', '{', '“', '‘', '〈', '《', '「', '『', '（':
		return breakOpen
	case ')', ']', '}', '”', '’',
		'、', '。', '〉', '》', '」', '』',
		'！', '）', '，', '．', '：', '；', '？':
		return breakClose
	case '-', '‐', '‑', '–', '—':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune reports whether the rune is a CJK character that allows
// breaking on either side.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF && classifyRune(r) == breakOther) // Fullwidth forms
}

// breakOpportunities returns, for each rune index, whether a line break
// is allowed immediately before that rune. Index 0 is always false.
func breakOpportunities(runes []rune) []bool {
	if len(runes) == 0 {
		return nil
	}

	classes := make([]breakClass, len(runes))
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}

	breaks := make([]bool, len(runes))
	for i := 1; i < len(runes); i++ {
		breaks[i] = allowBreak(classes[i-1], classes[i])
	}
	return breaks
}

// allowBreak decides whether a break is allowed between two classes.
func allowBreak(prev, curr breakClass) bool {
	// Never detach closing punctuation, never break right after an opener.
	if curr == breakClose || prev == breakOpen {
		return false
	}
	// Break after spaces, zero-width spaces and hyphens.
	if prev == breakSpace || prev == breakZero {
		return true
	}
	if prev == breakHyphen && curr != breakHyphen {
		return true
	}
	// CJK ideographs break on both sides.
	if curr == breakIdeographic || prev == breakIdeographic {
		return true
	}
	return false
}

// wrapGlyphs splits a paragraph's shaped glyphs into lines no wider than
// maxWidth. Breaks happen only at allowed rune boundaries that are also
// cluster boundaries, so multi-glyph clusters are never split. When a
// single unbreakable unit is wider than maxWidth it is placed alone on
// its own line and allowed to overflow; there is no hyphenation.
func wrapGlyphs(glyphs []Glyph, runes []rune, maxWidth float64) [][]Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return [][]Glyph{glyphs}
	}

	breaks := breakOpportunities(runes)
	canBreakBefore := func(i int) bool {
		if i <= 0 || i >= len(glyphs) {
			return false
		}
		c := glyphs[i].Cluster
		if c == glyphs[i-1].Cluster {
			return false // inside a cluster
		}
		return c < len(breaks) && breaks[c]
	}

	var lines [][]Glyph
	lineStart := 0
	startX := glyphs[0].X
	lastBreak := -1

	for i := 0; i < len(glyphs); i++ {
		if canBreakBefore(i) {
			// Reaching a break opportunity on an already overflowing
			// line ends it here: the oversized unit keeps its own line.
			if glyphs[i].X-startX > maxWidth && lastBreak <= lineStart {
				lines = append(lines, trimTrailingSpaces(glyphs[lineStart:i], runes))
				lineStart = skipLeadingSpaces(glyphs, runes, i)
				if lineStart >= len(glyphs) {
					return lines
				}
				startX = glyphs[lineStart].X
				lastBreak = -1
				i = lineStart
				continue
			}
			lastBreak = i
		}

		lineEnd := glyphs[i].X - startX + glyphs[i].XAdvance
		if lineEnd > maxWidth && lastBreak > lineStart {
			lines = append(lines, trimTrailingSpaces(glyphs[lineStart:lastBreak], runes))
			lineStart = skipLeadingSpaces(glyphs, runes, lastBreak)
			if lineStart >= len(glyphs) {
				return lines
			}
			startX = glyphs[lineStart].X
			lastBreak = -1
			i = lineStart
		}
	}

	if lineStart < len(glyphs) {
		lines = append(lines, trimTrailingSpaces(glyphs[lineStart:], runes))
	}
	return lines
}

// trimTrailingSpaces drops space glyphs at a line end so they do not
// count toward the line's width or skew alignment.
func trimTrailingSpaces(line []Glyph, runes []rune) []Glyph {
	for len(line) > 0 {
		c := line[len(line)-1].Cluster
		if c >= len(runes) || classifyRune(runes[c]) != breakSpace {
			break
		}
		line = line[:len(line)-1]
	}
	return line
}

// skipLeadingSpaces advances past space glyphs at a line start so wrapped
// lines do not begin with the space that triggered the break.
func skipLeadingSpaces(glyphs []Glyph, runes []rune, i int) int {
	for i < len(glyphs) {
		c := glyphs[i].Cluster
		if c >= len(runes) || classifyRune(runes[c]) != breakSpace {
			return i
		}
		i++
	}
	return i
}
