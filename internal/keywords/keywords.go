// Package keywords finds the configured skills and roles in a resume.
package keywords

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go-jobsearch-automation/internal/resume"

	"github.com/rs/zerolog/log"
)

// Vocabulary is the fixed list of terms a resume is matched against.
type Vocabulary struct {
	Skills      []string `yaml:"skills"`
	Roles       []string `yaml:"roles"`
	Preferences []string `yaml:"preferences"`
}

// Set is the keywords found in one resume. Terms keep vocabulary order.
type Set struct {
	skills      []string
	roles       []string
	preferences []string
}

// NewSet builds a set directly, dropping duplicates.
func NewSet(skills, roles, preferences []string) Set {
	return Set{
		skills:      dedupe(skills),
		roles:       dedupe(roles),
		preferences: dedupe(preferences),
	}
}

func (s Set) Skills() []string { return slices.Clone(s.skills) }
func (s Set) Roles() []string { return slices.Clone(s.roles) }
func (s Set) Preferences() []string { return slices.Clone(s.preferences) }

func (s Set) HasSkill(term string) bool { return slices.Contains(s.skills, term) }
func (s Set) HasRole(term string) bool { return slices.Contains(s.roles, term) }

// Empty reports whether no skill and no role was found.
func (s Set) Empty() bool {
	return len(s.skills) == 0 && len(s.roles) == 0
}

func (s Set) String() string {
	return fmt.Sprintf("skills=%v roles=%v", s.skills, s.roles)
}

// Extractor matches text against a vocabulary.
type Extractor struct {
	vocab Vocabulary
}

func NewExtractor(v Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract keeps the vocabulary skills and roles contained in text, ignoring
// case and accents.
// Preferences are always the vocabulary's.
func (e *Extractor) Extract(text string) Set {
	n := NewNormalizer()
	folded := n.String(text)
	return NewSet(
		matching(n, folded, e.vocab.Skills),
		matching(n, folded, e.vocab.Roles),
		e.vocab.Preferences,
	)
}

func matching(n *Normalizer, folded string, terms []string) []string {
	var found []string
	for _, term := range terms {
		t := strings.TrimSpace(term)
		if t == "" {
			continue
		}
		if strings.Contains(folded, n.String(t)) {
			found = append(found, t)
		}
	}
	return found
}

// FromResume reads the resume at path and extracts its keywords. On failure it
// returns an empty set with the source's error.
func (e *Extractor) FromResume(ctx context.Context, src resume.Source, path string) (Set, error) {
	text, err := src.ExtractText(ctx, path)
	if err != nil {
		return Set{preferences: slices.Clone(e.vocab.Preferences)}, fmt.Errorf("extract keywords: %w", err)
	}
	set := e.Extract(text)
	log.Info().Strs("skills", set.skills).Strs("roles", set.roles).Msg("🔑 Extracted resume keywords")
	return set, nil
}

func dedupe(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
