package canvas

import (
	"image"
	"image/color"
)

// FillHorizontalGradient blends a left-to-right linear gradient into the
// given rectangle. Each column's color is interpolated between from and
// to by its horizontal position, then composited source-over, so a
// transparent-to-opaque ramp fades out whatever is underneath.
func (c *Canvas) FillHorizontalGradient(rect image.Rectangle, from, to color.NRGBA) {
	rect = rect.Intersect(c.Bounds())
	if rect.Empty() {
		return
	}

	span := rect.Dx() - 1
	for x := rect.Min.X; x < rect.Max.X; x++ {
		var t float64
		if span > 0 {
			t = float64(x-rect.Min.X) / float64(span)
		}
		col := lerpColor(from, to, t)
		if col.A == 0 {
			continue
		}
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			c.blend(x, y, col)
		}
	}
}

// lerpColor interpolates between two colors. t is clamped to [0, 1].
func lerpColor(from, to color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: lerp(from.A, to.A),
	}
}
