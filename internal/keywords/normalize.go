package keywords

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer folds case and strips accents so "Développeur" matches "developpeur".
// It is not safe for concurrent use; make one per goroutine.
type Normalizer struct {
	folder cases.Caser
	strip  transform.Transformer
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		folder: cases.Fold(),
		strip:  transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

func (n *Normalizer) String(s string) string {
	stripped, _, err := transform.String(n.strip, s)
	if err != nil {
		stripped = s
	}
	return n.folder.String(stripped)
}
