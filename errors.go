package makequote

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFonts is returned by NewProducer when no font set is supplied.
	ErrNoFonts = errors.New("makequote: no font set")

	// ErrInvalidScale is returned by NewProducer for a non-positive
	// font scale.
	ErrInvalidScale = errors.New("makequote: font scale must be positive")

	// ErrEmptyUsername is returned by NewQuoteConfig for an empty
	// username.
	ErrEmptyUsername = errors.New("makequote: empty username")

	// ErrNoAvatar is returned by NewQuoteConfig when no avatar source is
	// supplied.
	ErrNoAvatar = errors.New("makequote: no avatar source")

	// ErrInvalidAvatar is returned when an avatar image cannot be read,
	// cannot be decoded, or has zero dimensions.
	ErrInvalidAvatar = errors.New("makequote: invalid avatar")

	// ErrUnsupportedFormat is returned when the output format is not
	// recognized by the encoder.
	ErrUnsupportedFormat = errors.New("makequote: unsupported output format")
)

// DimensionError reports an invalid output canvas size.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("makequote: output dimensions %dx%d must be positive", e.Width, e.Height)
}
