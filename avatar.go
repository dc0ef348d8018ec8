package makequote

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"unicode"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/makequote/makequote/fonts"
	"github.com/makequote/makequote/internal/canvas"
	"github.com/makequote/makequote/text"
)

// AvatarSource supplies the avatar image for one render. Implementations
// are provided by AvatarFile, AvatarBytes and LetterAvatar; the interface
// is sealed because fetching needs the producer's canvas geometry.
type AvatarSource interface {
	// fetch returns the avatar image and whether it should go through
	// the scale-and-crop fit before placement.
	fetch(p *Producer) (img image.Image, fit bool, err error)
}

// AvatarFile reads the avatar from an image file. PNG, JPEG, GIF and
// WebP are decodable.
func AvatarFile(path string) AvatarSource {
	return avatarFile(path)
}

type avatarFile string

func (a avatarFile) fetch(*Producer) (image.Image, bool, error) {
	f, err := os.Open(filepath.Clean(string(a)))
	if err != nil {
		return nil, false, fmt.Errorf("%w: open %s: %v", ErrInvalidAvatar, a, err)
	}
	defer func() { _ = f.Close() }()

	img, err := decodeAvatar(f)
	if err != nil {
		return nil, false, err
	}
	return img, true, nil
}

// AvatarBytes decodes the avatar from in-memory image data.
func AvatarBytes(data []byte) AvatarSource {
	return avatarBytes(data)
}

type avatarBytes []byte

func (a avatarBytes) fetch(*Producer) (image.Image, bool, error) {
	img, err := decodeAvatar(bytes.NewReader(a))
	if err != nil {
		return nil, false, err
	}
	return img, true, nil
}

// decodeAvatar decodes an avatar image and rejects zero-dimension
// results.
func decodeAvatar(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidAvatar, err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: zero dimensions", ErrInvalidAvatar)
	}
	return img, nil
}

// letterPalette holds the colors a letter avatar cycles through, keyed
// by id modulo its length.
var letterPalette = [7]color.NRGBA{
	{R: 255, G: 81, B: 106, A: 255},
	{R: 255, G: 168, B: 92, A: 255},
	{R: 214, G: 105, B: 237, A: 255},
	{R: 84, G: 203, B: 104, A: 255},
	{R: 40, G: 201, B: 183, A: 255},
	{R: 42, G: 158, B: 241, A: 255},
	{R: 255, G: 113, B: 154, A: 255},
}

// letterAvatarScale is the pixel size of the initial drawn on a letter
// avatar.
const letterAvatarScale = 300.0

// LetterAvatar generates an avatar from the first letter of a name,
// drawn on a colored circle. The circle color is picked from a fixed
// palette by id, so the same id always yields the same color.
func LetterAvatar(id uint64, name string) AvatarSource {
	return &letterAvatar{id: id, name: name}
}

type letterAvatar struct {
	id   uint64
	name string
}

func (a *letterAvatar) fetch(p *Producer) (image.Image, bool, error) {
	runes := []rune(a.name)
	if len(runes) == 0 {
		return nil, false, fmt.Errorf("%w: empty letter avatar name", ErrInvalidAvatar)
	}
	letter := string(unicode.ToUpper(runes[0]))

	c := canvas.New(p.width/3, p.height)
	center := image.Pt(c.Width()/2, c.Height()/2)
	// Keep a 1/12 margin between the circle and the canvas edge.
	radius := c.Width()/2 - c.Width()/12
	c.FillCircle(center.X, center.Y, radius, letterPalette[a.id%uint64(len(letterPalette))])

	src := p.fonts.Pick(fonts.Bold)
	layout := text.LayoutText(letter, src, letterAvatarScale, text.DefaultOptions())
	drawLayout(c, layout, src, letterAvatarScale,
		center.X-int(layout.Width/2), center.Y-int(layout.Height/2), white)

	return c.Image(), false, nil
}
