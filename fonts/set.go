package fonts

// Variant identifies a font weight slot within a Set.
type Variant uint8

const (
	// Regular is the default weight, required in every Set.
	Regular Variant = iota
	// Bold is an optional heavier weight, used for emphasized text.
	Bold
	// Light is an optional lighter weight, used for secondary text.
	Light

	numVariants
)

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	case Light:
		return "Light"
	default:
		return "Unknown"
	}
}

// Set groups weight variants of one font family. The Regular variant is
// mandatory; Bold and Light are optional and fall back to Regular when
// absent. Like Source, a Set is immutable after construction and safe for
// concurrent use.
type Set struct {
	sources [numVariants]*Source
}

// SetOption configures optional variants of a Set.
type SetOption func(*Set)

// WithBold adds a bold variant to the set. A nil source is ignored.
func WithBold(src *Source) SetOption {
	return func(s *Set) { s.sources[Bold] = src }
}

// WithLight adds a light variant to the set. A nil source is ignored.
func WithLight(src *Source) SetOption {
	return func(s *Set) { s.sources[Light] = src }
}

// NewSet builds a Set from a required regular source plus optional
// variants. Returns ErrMissingRegular when regular is nil.
func NewSet(regular *Source, opts ...SetOption) (*Set, error) {
	if regular == nil {
		return nil, ErrMissingRegular
	}
	s := &Set{}
	s.sources[Regular] = regular
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Pick returns the source for the requested variant, falling back to
// Regular when the variant was not provided.
func (s *Set) Pick(v Variant) *Source {
	if int(v) < len(s.sources) && s.sources[v] != nil {
		return s.sources[v]
	}
	return s.sources[Regular]
}

// Has reports whether the variant was explicitly provided.
func (s *Set) Has(v Variant) bool {
	return int(v) < len(s.sources) && s.sources[v] != nil
}
