package makequote

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/makequote/makequote/fonts"
	"github.com/makequote/makequote/internal/canvas"
	"github.com/makequote/makequote/text"
)

var (
	black        = color.NRGBA{A: 255}
	white        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	usernameGray = color.NRGBA{R: 147, G: 147, B: 147, A: 255}
)

// textGap is the horizontal padding around the text area, in pixels.
const textGap = 30

// render composes one quote image: black background, avatar flush left,
// a fade-to-black gradient over the avatar's right third, the quote
// block above the vertical center and the username at 3/4 height. All
// layers composite source-over in that fixed order.
func (p *Producer) render(cfg QuoteConfig) (*canvas.Canvas, error) {
	avatarImg, fit, err := cfg.avatar.fetch(p)
	if err != nil {
		return nil, err
	}

	c := canvas.New(p.width, p.height)
	c.Fill(black)

	if fit {
		avatarImg = fitAvatar(avatarImg, p.height)
	}
	c.DrawImage(avatarImg, 0, 0)
	avatarWidth := avatarImg.Bounds().Dx()

	gradientWidth := avatarWidth / 3
	c.FillHorizontalGradient(
		image.Rect(avatarWidth-gradientWidth, 0, avatarWidth, p.height),
		color.NRGBA{}, black)

	textArea := image.Rect(avatarWidth+textGap, 0, p.width-textGap, p.height)
	opts := text.DefaultOptions()
	opts.MaxWidth = float64(textArea.Dx())
	opts.Alignment = text.AlignCenter

	quoteSrc := p.fonts.Pick(fonts.Bold)
	quoteLayout := text.LayoutText(cfg.quote, quoteSrc, p.fontScale, opts)
	// The quote block ends at the vertical center of the canvas.
	quoteTop := p.height/2 - int(quoteLayout.Height)
	drawLayout(c, quoteLayout, quoteSrc, p.fontScale, textArea.Min.X, quoteTop, white)

	userSrc := p.fonts.Pick(fonts.Light)
	userScale := p.fontScale / 3
	userLayout := text.LayoutText(cfg.username, userSrc, userScale, opts)
	userTop := p.height - p.height/4
	drawLayout(c, userLayout, userSrc, userScale, textArea.Min.X, userTop, usernameGray)

	Logger().Debug("composed quote image",
		"avatar_width", avatarWidth,
		"quote_lines", len(quoteLayout.Lines),
		"quote_height", quoteLayout.Height)
	return c, nil
}

// fitAvatar scales an avatar to the canvas height preserving aspect
// ratio, then drops the left quarter so the subject sits against the
// left edge of the frame.
func fitAvatar(img image.Image, targetHeight int) image.Image {
	bounds := img.Bounds()
	scaledWidth := int(math.Round(float64(bounds.Dx()) / float64(bounds.Dy()) * float64(targetHeight)))
	if scaledWidth < 1 {
		scaledWidth = 1
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, scaledWidth, targetHeight))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)

	crop := scaledWidth / 4
	cropped := scaled.SubImage(image.Rect(crop, 0, scaledWidth, targetHeight)).(*image.NRGBA)
	// Rebase so the kept region draws from the placement origin.
	out := image.NewNRGBA(image.Rect(0, 0, scaledWidth-crop, targetHeight))
	xdraw.Draw(out, out.Bounds(), cropped, cropped.Bounds().Min, xdraw.Src)
	return out
}

// drawLayout blits a laid-out text block onto the canvas with its
// top-left corner at (x, y), tinting every glyph with the given color.
func drawLayout(c *canvas.Canvas, layout *text.Layout, src *fonts.Source, sizePx float64, x, y int, col color.NRGBA) {
	for _, line := range layout.Lines {
		for _, g := range line.Glyphs {
			mask := src.GlyphMask(g.GID, sizePx)
			if mask == nil {
				continue
			}
			penX := x + int(math.Round(g.X))
			penY := y + int(math.Round(g.Y))
			c.DrawMask(mask, penX, penY, col)
		}
	}
}
