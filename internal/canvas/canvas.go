// Package canvas provides the CPU pixel buffer the compositor draws
// into. All drawing uses source-over blending on non-premultiplied
// RGBA; there are no other blend modes.
package canvas

import (
	"image"
	"image/color"
)

// Canvas is a rectangular pixel buffer, 4 bytes per pixel, stored
// non-premultiplied.
type Canvas struct {
	width  int
	height int
	pix    []uint8
}

// New creates a canvas with the given dimensions, fully transparent.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Fill replaces every pixel with the given color.
func (c *Canvas) Fill(col color.NRGBA) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = col.A
	}
}

// SetPixel blends a color over a single pixel. Out-of-bounds
// coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.blend(x, y, col)
}

// Pixel returns the color of a single pixel, transparent when out of
// bounds.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.NRGBA{}
	}
	i := (y*c.width + x) * 4
	return color.NRGBA{R: c.pix[i+0], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// DrawImage blends an image over the canvas with its top-left corner at
// (x, y). Pixels falling outside the canvas are clipped.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	bounds := img.Bounds()
	for iy := 0; iy < bounds.Dy(); iy++ {
		dy := y + iy
		if dy < 0 || dy >= c.height {
			continue
		}
		for ix := 0; ix < bounds.Dx(); ix++ {
			dx := x + ix
			if dx < 0 || dx >= c.width {
				continue
			}
			nrgba := color.NRGBAModel.Convert(img.At(bounds.Min.X+ix, bounds.Min.Y+iy)).(color.NRGBA)
			c.blend(dx, dy, nrgba)
		}
	}
}

// DrawMask blends a solid color through an alpha mask. The mask's own
// bounds offset is honored, so a glyph mask positioned relative to its
// pen origin lands where the rasterizer placed it.
func (c *Canvas) DrawMask(mask *image.Alpha, x, y int, col color.NRGBA) {
	if mask == nil {
		return
	}
	bounds := mask.Bounds()
	for my := bounds.Min.Y; my < bounds.Max.Y; my++ {
		dy := y + my
		if dy < 0 || dy >= c.height {
			continue
		}
		for mx := bounds.Min.X; mx < bounds.Max.X; mx++ {
			dx := x + mx
			if dx < 0 || dx >= c.width {
				continue
			}
			a := mask.AlphaAt(mx, my).A
			if a == 0 {
				continue
			}
			c.blend(dx, dy, color.NRGBA{
				R: col.R,
				G: col.G,
				B: col.B,
				A: uint8(uint32(col.A) * uint32(a) / 255),
			})
		}
	}
}

// FillCircle blends a filled circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius int, col color.NRGBA) {
	if radius <= 0 {
		return
	}
	rsq := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rsq {
				c.SetPixel(cx+dx, cy+dy, col)
			}
		}
	}
}

// Image returns a copy of the canvas as an image.NRGBA.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.pix)
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// blend composites src over the pixel at (x, y). Coordinates must be
// in bounds.
func (c *Canvas) blend(x, y int, src color.NRGBA) {
	i := (y*c.width + x) * 4
	if src.A == 0xff {
		c.pix[i+0] = src.R
		c.pix[i+1] = src.G
		c.pix[i+2] = src.B
		c.pix[i+3] = 0xff
		return
	}
	if src.A == 0 {
		return
	}

	sa := uint32(src.A)
	da := uint32(c.pix[i+3])
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		c.pix[i+0], c.pix[i+1], c.pix[i+2], c.pix[i+3] = 0, 0, 0, 0
		return
	}

	blendChannel := func(s, d uint8) uint8 {
		v := (uint32(s)*sa + uint32(d)*da*(255-sa)/255) / outA
		return uint8(v)
	}
	c.pix[i+0] = blendChannel(src.R, c.pix[i+0])
	c.pix[i+1] = blendChannel(src.G, c.pix[i+1])
	c.pix[i+2] = blendChannel(src.B, c.pix[i+2])
	c.pix[i+3] = uint8(outA)
}
