package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Segment is a contiguous run of paragraph text with uniform direction
// and script, ready to be shaped as one unit.
type Segment struct {
	// RuneStart and RuneEnd delimit the segment within the paragraph,
	// in rune offsets (end exclusive).
	RuneStart, RuneEnd int

	// Direction is the resolved bidi direction of the run.
	Direction Direction

	// Script is the dominant Unicode script of the run.
	Script language.Script
}

// segmentParagraph splits one paragraph (no hard line breaks) into
// direction- and script-uniform segments. Common-script runes
// (punctuation, digits, spaces) are merged into the surrounding script so
// they never force a segment boundary on their own.
func segmentParagraph(runes []rune, baseDir Direction) []Segment {
	if len(runes) == 0 {
		return nil
	}

	levels := computeBidiLevels(runes, baseDir)
	scripts := resolveScripts(runes)

	segments := make([]Segment, 0, 4)
	start := 0
	for i := 1; i < len(runes); i++ {
		if levels[i] == levels[start] && scripts[i] == scripts[start] {
			continue
		}
		segments = append(segments, makeSegment(start, i, levels[start], scripts[start]))
		start = i
	}
	segments = append(segments, makeSegment(start, len(runes), levels[start], scripts[start]))
	return segments
}

// computeBidiLevels resolves the embedding level of every rune using the
// Unicode bidi algorithm. Level parity determines run direction.
func computeBidiLevels(runes []rune, baseDir Direction) []int {
	levels := make([]int, len(runes))

	defaultDir := bidi.Neutral
	if baseDir == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, start and end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := startRune; j <= endRune && j < len(levels); j++ {
			levels[j] = level
		}
	}
	return levels
}

// resolveScripts assigns a concrete script to every rune. Common-script
// runes inherit the preceding concrete script, or the following one at
// the start of the paragraph.
func resolveScripts(runes []rune) []language.Script {
	scripts := make([]language.Script, len(runes))
	for i, r := range runes {
		scripts[i] = language.LookupScript(r)
	}

	last := language.Common
	for i := range scripts {
		if scripts[i] == language.Common {
			scripts[i] = last
		} else {
			last = scripts[i]
		}
	}

	// A Common prefix (e.g. leading quote marks) attaches to the first
	// concrete script that follows.
	next := language.Common
	for i := len(scripts) - 1; i >= 0; i-- {
		if scripts[i] == language.Common {
			scripts[i] = next
		} else {
			next = scripts[i]
		}
	}

	// All-Common text (digits, punctuation) shapes fine as Latin.
	for i := range scripts {
		if scripts[i] == language.Common {
			scripts[i] = language.Latin
		}
	}
	return scripts
}

func makeSegment(start, end, level int, script language.Script) Segment {
	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}
	return Segment{
		RuneStart: start,
		RuneEnd:   end,
		Direction: dir,
		Script:    script,
	}
}
