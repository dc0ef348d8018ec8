package makequote

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
)

// Format selects the output image encoding.
type Format uint8

const (
	// FormatJPEG encodes the output as JPEG. This is the default.
	FormatJPEG Format = iota
	// FormatPNG encodes the output as PNG.
	FormatPNG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// defaultJPEGQuality matches common photographic web output.
const defaultJPEGQuality = 88

// encodeImage serializes the rendered canvas. Both stdlib encoders are
// deterministic for fixed input, so identical renders produce identical
// bytes.
func encodeImage(img image.Image, format Format, jpegQuality int) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("makequote: encode jpeg: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("makequote: encode png: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}
