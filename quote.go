package makequote

// QuoteConfig describes one quote image: who said it, their avatar, and
// what they said. Immutable once built; validated by NewQuoteConfig.
type QuoteConfig struct {
	username string
	quote    string
	avatar   AvatarSource
}

// NewQuoteConfig validates and builds a per-render configuration. The
// username must be non-empty and an avatar source must be supplied. An
// empty quote is allowed and renders an image without a quote block.
func NewQuoteConfig(username, quote string, avatar AvatarSource) (QuoteConfig, error) {
	if username == "" {
		return QuoteConfig{}, ErrEmptyUsername
	}
	if avatar == nil {
		return QuoteConfig{}, ErrNoAvatar
	}
	return QuoteConfig{username: username, quote: quote, avatar: avatar}, nil
}

// Username returns the configured username.
func (q QuoteConfig) Username() string { return q.username }

// Quote returns the configured quote text.
func (q QuoteConfig) Quote() string { return q.quote }
