// Package dedup tracks which job URLs a run has already handled.
package dedup

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// URLSource is the part of the job store dedup needs.
type URLSource interface {
	AllURLs(ctx context.Context) (map[string]struct{}, error)
}

// Seen is the set of URLs stored before the run plus those met during it.
type Seen struct {
	mu   sync.Mutex
	urls map[string]struct{}
}

// Load seeds the set from every URL in the store.
func Load(ctx context.Context, store URLSource) (*Seen, error) {
	urls, err := store.AllURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load known job urls: %w", err)
	}
	if urls == nil {
		urls = make(map[string]struct{})
	}
	log.Info().Int("known", len(urls)).Msgf("📋 Loaded %d previously seen jobs", len(urls))
	return &Seen{urls: urls}, nil
}

// Mark records url and reports whether it was new.
func (s *Seen) Mark(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.urls[url]; ok {
		return false
	}
	s.urls[url] = struct{}{}
	return true
}

// Len is the number of known URLs.
func (s *Seen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.urls)
}
