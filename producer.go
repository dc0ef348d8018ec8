package makequote

import (
	"time"

	"github.com/makequote/makequote/fonts"
)

const (
	defaultWidth     = 1920
	defaultHeight    = 1080
	defaultFontScale = 120.0
)

// Producer renders quote images. It holds the parsed fonts and the
// output geometry, both fixed for its lifetime; each MakeImage call owns
// its canvas exclusively, so one Producer may serve concurrent calls.
type Producer struct {
	fonts       *fonts.Set
	width       int
	height      int
	fontScale   float64
	format      Format
	jpegQuality int
}

// Option configures a Producer.
type Option func(*Producer)

// WithOutputSize sets the output canvas dimensions in pixels. The
// default is 1920x1080.
func WithOutputSize(width, height int) Option {
	return func(p *Producer) {
		p.width = width
		p.height = height
	}
}

// WithFontScale sets the quote text pixel size. The username renders at
// a third of it. The default is 120.
func WithFontScale(scale float64) Option {
	return func(p *Producer) { p.fontScale = scale }
}

// WithFormat sets the output encoding. The default is FormatJPEG.
func WithFormat(f Format) Option {
	return func(p *Producer) { p.format = f }
}

// WithJPEGQuality sets the JPEG quality, 1 to 100. Values outside that
// range are clamped. Ignored for PNG output.
func WithJPEGQuality(q int) Option {
	return func(p *Producer) { p.jpegQuality = q }
}

// NewProducer builds a Producer around a font set. Invalid geometry is
// rejected here, before any rendering work begins.
func NewProducer(set *fonts.Set, opts ...Option) (*Producer, error) {
	if set == nil {
		return nil, ErrNoFonts
	}
	p := &Producer{
		fonts:       set,
		width:       defaultWidth,
		height:      defaultHeight,
		fontScale:   defaultFontScale,
		format:      FormatJPEG,
		jpegQuality: defaultJPEGQuality,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.width <= 0 || p.height <= 0 {
		return nil, &DimensionError{Width: p.width, Height: p.height}
	}
	if p.fontScale <= 0 {
		return nil, ErrInvalidScale
	}
	if p.jpegQuality < 1 {
		p.jpegQuality = 1
	} else if p.jpegQuality > 100 {
		p.jpegQuality = 100
	}
	return p, nil
}

// MakeImage renders one quote image and returns the encoded bytes. The
// pipeline runs layout, compositing and encoding in order; the first
// stage to fail short-circuits the rest and no bytes are returned.
func (p *Producer) MakeImage(cfg QuoteConfig) ([]byte, error) {
	start := time.Now()

	c, err := p.render(cfg)
	if err != nil {
		return nil, err
	}

	data, err := encodeImage(c.Image(), p.format, p.jpegQuality)
	if err != nil {
		return nil, err
	}

	Logger().Debug("quote image rendered",
		"size", len(data),
		"format", p.format.String(),
		"elapsed", time.Since(start))
	return data, nil
}
