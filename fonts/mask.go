package fonts

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphMask rasterizes a glyph to an alpha mask at the given pixel size.
// The mask's Rect is positioned relative to the glyph origin: the origin
// sits on the baseline at the pen position, with y growing downwards.
// Returns nil for empty outlines (e.g. the space glyph) and for glyph
// indices the font cannot load.
func (s *Source) GlyphMask(gid uint16, sizePx float64) *image.Alpha {
	buf := bufPool.Get().(*sfnt.Buffer)
	defer bufPool.Put(buf)

	ppem := fixed.Int26_6(sizePx * 64)
	segments, err := s.raster.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil || len(segments) == 0 {
		return nil
	}

	bounds := segments.Bounds()
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	maxX := bounds.Max.X.Ceil()
	maxY := bounds.Max.Y.Ceil()
	width := maxX - minX
	height := maxY - minY
	if width <= 0 || height <= 0 {
		return nil
	}

	// The vector rasterizer expects coordinates in the positive quadrant,
	// so every point is shifted by the rounded outline minimum before
	// drawing and the mask rect is shifted back afterwards.
	rast := vector.NewRasterizer(width, height)
	rast.DrawOp = draw.Src
	offset := fixed.Point26_6{
		X: fixed.Int26_6(minX * 64),
		Y: fixed.Int26_6(minY * 64),
	}
	traceSegments(rast, segments, offset)

	mask := image.NewAlpha(rast.Bounds())
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(image.Pt(minX, minY))
	return mask
}

// traceSegments replays an sfnt outline into the rasterizer, translating
// every point by -offset. sfnt segments already use a y-down coordinate
// system, matching the raster target.
func traceSegments(rast *vector.Rasterizer, segments sfnt.Segments, offset fixed.Point26_6) {
	shift := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X-offset.X) / 64, float32(p.Y-offset.Y) / 64
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := shift(seg.Args[0])
			rast.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := shift(seg.Args[0])
			rast.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := shift(seg.Args[0])
			x, y := shift(seg.Args[1])
			rast.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			cx1, cy1 := shift(seg.Args[0])
			cx2, cy2 := shift(seg.Args[1])
			x, y := shift(seg.Args[2])
			rast.CubeTo(cx1, cy1, cx2, cy2, x, y)
		}
	}
}
