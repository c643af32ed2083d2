package text

import (
	"strings"
	"unicode"
)

// DefaultKeepChars are punctuation runes preserved by the default normalizer.
const DefaultKeepChars = "&'-"

// Normalizer folds text into a canonical comparable form. The same
// normalizer must be applied to query text and every corpus field so
// comparisons are always normalized-vs-normalized.
type Normalizer struct {
	keep map[rune]struct{}
}

// NewNormalizer creates a normalizer preserving the given punctuation runes.
func NewNormalizer(keepChars string) *Normalizer {
	keep := make(map[rune]struct{}, len(keepChars))
	for _, r := range keepChars {
		keep[r] = struct{}{}
	}
	return &Normalizer{keep: keep}
}

// DefaultNormalizer creates a normalizer with the default keep-set.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultKeepChars)
}

// Normalize lowercases, trims, collapses internal whitespace, and strips
// punctuation outside the keep-set. Total and deterministic; empty input
// yields the empty string. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			if _, ok := n.keep[r]; ok {
				if space && b.Len() > 0 {
					b.WriteByte(' ')
				}
				space = false
				b.WriteRune(r)
			}
			// Punctuation outside the keep-set is dropped.
		}
	}
	return b.String()
}
