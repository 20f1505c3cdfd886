// Package browser is the rendering backend: a headless browser session that
// returns fully rendered page content.
package browser

import (
	"context"
	"time"
)

// RenderOptions describe when a rendered page counts as ready.
type RenderOptions struct {
	// WaitFor is a CSS selector that must be attached before the page is read.
	// Empty means DOM content loaded is enough.
	WaitFor string
	// Settle is a fixed extra wait after readiness for late dynamic content.
	Settle time.Duration
	// Scroll to the bottom before reading, to trigger lazy loaded lists.
	Scroll bool
}

// SearchOptions drive a page that only lists results after a search is submitted.
type SearchOptions struct {
	// Input is the CSS selector of the search field.
	Input string
	// Text is typed into the field and submitted with Enter.
	Text string
	// WaitFor is the selector of the results.
	WaitFor string
	Settle  time.Duration
}

// Renderer is what adapters need from a browser session.
type Renderer interface {
	Render(ctx context.Context, url string, opts RenderOptions) (string, error)
	Search(ctx context.Context, url string, opts SearchOptions) (string, error)
}
