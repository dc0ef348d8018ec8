package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/makequote/makequote/fonts"
)

func loadTestSource(t *testing.T) *fonts.Source {
	t.Helper()
	src, err := fonts.Load(goregular.TTF)
	if err != nil {
		t.Fatalf("loading test font: %v", err)
	}
	return src
}

// TestLayoutTextEmpty tests that empty text yields zero lines.
func TestLayoutTextEmpty(t *testing.T) {
	src := loadTestSource(t)
	layout := LayoutText("", src, 32, DefaultOptions())
	if len(layout.Lines) != 0 {
		t.Errorf("got %d lines, want 0", len(layout.Lines))
	}
	if layout.Width != 0 || layout.Height != 0 {
		t.Errorf("got %gx%g, want 0x0", layout.Width, layout.Height)
	}
}

// TestLayoutTextSingleLine tests unwrapped layout of a short string.
func TestLayoutTextSingleLine(t *testing.T) {
	src := loadTestSource(t)
	layout := LayoutText("Hello", src, 32, DefaultOptions())
	if len(layout.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(layout.Lines))
	}
	line := layout.Lines[0]
	if len(line.Glyphs) != 5 {
		t.Errorf("got %d glyphs, want 5", len(line.Glyphs))
	}
	if line.Width <= 0 {
		t.Errorf("line width = %g, want > 0", line.Width)
	}
	if layout.Height <= 0 {
		t.Errorf("layout height = %g, want > 0", layout.Height)
	}
	// Glyph X positions advance monotonically in LTR text.
	for i := 1; i < len(line.Glyphs); i++ {
		if line.Glyphs[i].X <= line.Glyphs[i-1].X {
			t.Errorf("glyph %d at X=%g, not after glyph %d at X=%g",
				i, line.Glyphs[i].X, i-1, line.Glyphs[i-1].X)
		}
	}
}

// TestLayoutTextWrapping tests greedy wrapping within MaxWidth.
func TestLayoutTextWrapping(t *testing.T) {
	src := loadTestSource(t)
	opts := DefaultOptions()
	opts.MaxWidth = 200

	layout := LayoutText("the quick brown fox jumps over the lazy dog", src, 32, opts)
	if len(layout.Lines) < 2 {
		t.Fatalf("got %d lines, want wrapping", len(layout.Lines))
	}
	for i, line := range layout.Lines {
		if line.Width > opts.MaxWidth {
			t.Errorf("line %d width %g exceeds max %g", i, line.Width, opts.MaxWidth)
		}
		if len(line.Glyphs) == 0 {
			t.Errorf("line %d is empty", i)
		}
	}
	// Baselines strictly increase down the block.
	for i := 1; i < len(layout.Lines); i++ {
		if layout.Lines[i].Y <= layout.Lines[i-1].Y {
			t.Errorf("line %d baseline %g not below line %d baseline %g",
				i, layout.Lines[i].Y, i-1, layout.Lines[i-1].Y)
		}
	}
}

// TestLayoutTextOversizedWord tests that a word wider than MaxWidth gets
// its own overflowing line rather than being broken mid-word.
func TestLayoutTextOversizedWord(t *testing.T) {
	src := loadTestSource(t)
	opts := DefaultOptions()
	opts.MaxWidth = 60

	layout := LayoutText("a incomprehensibilities b", src, 32, opts)
	if len(layout.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(layout.Lines))
	}
	long := layout.Lines[1]
	if long.Width <= opts.MaxWidth {
		t.Errorf("oversized word line width %g, want overflow past %g", long.Width, opts.MaxWidth)
	}
	if len(long.Glyphs) != len("incomprehensibilities") {
		t.Errorf("oversized line has %d glyphs, want %d", len(long.Glyphs), len("incomprehensibilities"))
	}
}

// TestLayoutTextHardBreaks tests that newlines split lines and a blank
// line keeps its vertical space.
func TestLayoutTextHardBreaks(t *testing.T) {
	src := loadTestSource(t)
	layout := LayoutText("one\n\ntwo", src, 32, DefaultOptions())
	if len(layout.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(layout.Lines))
	}
	if len(layout.Lines[1].Glyphs) != 0 {
		t.Errorf("blank line has %d glyphs, want 0", len(layout.Lines[1].Glyphs))
	}
	if layout.Lines[2].Y <= layout.Lines[1].Y || layout.Lines[1].Y <= layout.Lines[0].Y {
		t.Error("blank line did not advance the baseline")
	}
}

// TestLayoutTextFallbackGlyph tests substitution of unmapped runes.
func TestLayoutTextFallbackGlyph(t *testing.T) {
	src := loadTestSource(t)
	if src.HasGlyph('大') {
		t.Skip("test font unexpectedly covers CJK")
	}
	fallbackGID := src.GlyphIndex(fallbackRune)
	if fallbackGID == 0 {
		t.Fatal("test font does not map U+FFFD")
	}

	layout := LayoutText("a大b", src, 32, DefaultOptions())
	if len(layout.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(layout.Lines))
	}
	line := layout.Lines[0]
	if len(line.Glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(line.Glyphs))
	}
	if line.Glyphs[1].GID != fallbackGID {
		t.Errorf("unmapped rune shaped to glyph %d, want fallback glyph %d",
			line.Glyphs[1].GID, fallbackGID)
	}
	if line.Glyphs[0].GID == 0 || line.Glyphs[2].GID == 0 {
		t.Error("mapped runes shaped to .notdef")
	}
}

// TestLayoutTextCenterAlignment tests centering within MaxWidth.
func TestLayoutTextCenterAlignment(t *testing.T) {
	src := loadTestSource(t)
	opts := DefaultOptions()
	opts.MaxWidth = 500
	opts.Alignment = AlignCenter

	layout := LayoutText("hi", src, 32, opts)
	if len(layout.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(layout.Lines))
	}
	line := layout.Lines[0]
	left := line.Glyphs[0].X
	last := line.Glyphs[len(line.Glyphs)-1]
	right := opts.MaxWidth - (last.X + last.XAdvance)
	if diff := left - right; diff > 1 || diff < -1 {
		t.Errorf("margins %g and %g differ by more than a pixel", left, right)
	}
}

// TestLayoutTextDeterministic tests that repeated layout is identical.
func TestLayoutTextDeterministic(t *testing.T) {
	src := loadTestSource(t)
	opts := DefaultOptions()
	opts.MaxWidth = 300
	opts.Alignment = AlignCenter

	const content = "determinism is a feature, not an accident"
	a := LayoutText(content, src, 48, opts)
	b := LayoutText(content, src, 48, opts)

	if len(a.Lines) != len(b.Lines) || a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("layouts differ: %d/%g/%g vs %d/%g/%g",
			len(a.Lines), a.Width, a.Height, len(b.Lines), b.Width, b.Height)
	}
	for i := range a.Lines {
		la, lb := a.Lines[i], b.Lines[i]
		if la.Y != lb.Y || la.Width != lb.Width || len(la.Glyphs) != len(lb.Glyphs) {
			t.Fatalf("line %d differs", i)
		}
		for j := range la.Glyphs {
			if la.Glyphs[j] != lb.Glyphs[j] {
				t.Fatalf("line %d glyph %d differs: %+v vs %+v", i, j, la.Glyphs[j], lb.Glyphs[j])
			}
		}
	}
}

// TestLayoutTextScaling tests that a larger size produces a wider line.
func TestLayoutTextScaling(t *testing.T) {
	src := loadTestSource(t)
	small := LayoutText("scale", src, 16, DefaultOptions())
	large := LayoutText("scale", src, 64, DefaultOptions())
	if small.Width <= 0 || large.Width <= small.Width {
		t.Errorf("widths %g and %g do not scale with size", small.Width, large.Width)
	}
	if large.Height <= small.Height {
		t.Errorf("heights %g and %g do not scale with size", small.Height, large.Height)
	}
}
