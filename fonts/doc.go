// Package fonts loads raw font bytes into immutable, shareable resources.
//
// A Source is parsed once and reused across many render calls; a Set
// groups weight variants (regular, bold, light) of one family so callers
// can request emphasis without caring whether the variant was provided.
package fonts
