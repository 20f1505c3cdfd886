// Package browsertest provides an in-memory browser.Renderer for tests.
package browsertest

import (
	"context"
	"fmt"
	"sync"

	"go-jobsearch-automation/internal/browser"
)

// Renderer serves canned pages keyed by URL. Search results are keyed by the
// typed text. Unknown keys fail like a navigation timeout would.
type Renderer struct {
	Pages    map[string]string
	Searches map[string]string

	mu       sync.Mutex
	Rendered []string
	// Options holds the RenderOptions of every Render call, in order.
	Options []browser.RenderOptions
	Typed    []string
}

var _ browser.Renderer = (*Renderer)(nil)

func (r *Renderer) Render(ctx context.Context, url string, opts browser.RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	r.Rendered = append(r.Rendered, url)
	r.Options = append(r.Options, opts)
	r.mu.Unlock()
	if page, ok := r.Pages[url]; ok {
		return page, nil
	}
	return "", fmt.Errorf("render %s: timeout", url)
}

func (r *Renderer) Search(ctx context.Context, url string, opts browser.SearchOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	r.Typed = append(r.Typed, opts.Text)
	r.mu.Unlock()
	if page, ok := r.Searches[opts.Text]; ok {
		return page, nil
	}
	return "", fmt.Errorf("search %s for %q: timeout", url, opts.Text)
}
