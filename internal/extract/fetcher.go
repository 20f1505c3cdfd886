package extract

import (
	"context"
	"time"

	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/utils"

	"github.com/rs/zerolog/log"
)

// Getter is the plain HTTP backend.
type Getter interface {
	Get(ctx context.Context, url string) (string, error)
}

// Fetcher resolves full descriptions for job detail URLs. It never returns an
// error: every failure degrades to a sentinel string.
type Fetcher struct {
	HTTP     Getter
	Renderer browser.Renderer
	// Delay is slept before every detail fetch.
	Delay time.Duration
}

const (
	backendHTTP    = "http"
	backendBrowser = "browser"
)

// ViaHTTP fetches url with the HTTP backend and extracts with the generic chain.
func (f *Fetcher) ViaHTTP(ctx context.Context, url, siteSelector string) string {
	if url == "" || url == "N/A" {
		return NoURL
	}
	if err := utils.Pause(ctx, f.Delay); err != nil {
		return Unavailable(backendHTTP)
	}

	logger := log.With().Str("url", url).Str("backend", backendHTTP).Logger()
	logger.Debug().Msg("Fetching full description")
	html, err := f.HTTP.Get(ctx, url)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to fetch description")
		return Unavailable(backendHTTP)
	}
	text, err := Description(html, siteSelector)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to parse description")
		return Unavailable(backendHTTP)
	}
	return text
}

// ViaBrowser renders url, waits for waitFor, and applies strategies.
func (f *Fetcher) ViaBrowser(ctx context.Context, url, waitFor string, strategies ...Strategy) string {
	if url == "" || url == "N/A" {
		return NoURL
	}
	if f.Renderer == nil {
		return NoRenderer
	}
	if err := utils.Pause(ctx, f.Delay); err != nil {
		return Unavailable(backendBrowser)
	}

	logger := log.With().Str("url", url).Str("backend", backendBrowser).Logger()
	logger.Debug().Msg("Rendering full description")
	html, err := f.Renderer.Render(ctx, url, browser.RenderOptions{
		WaitFor: waitFor,
		Settle:  2 * time.Second,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to render description")
		return Unavailable(backendBrowser)
	}
	text, err := Extract(html, strategies...)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to parse rendered description")
		return Unavailable(backendBrowser)
	}
	return text
}

// genericWait is the readiness condition for rendered pages of unknown layout.
const genericWait = `div[class*="description"], div[class*="content"], div[class*="job-details"]`

// HTTPThenBrowser tries the HTTP backend first and renders only when it failed.
func (f *Fetcher) HTTPThenBrowser(ctx context.Context, url string) string {
	desc := f.ViaHTTP(ctx, url, "")
	if !IsUnavailable(desc) {
		return desc
	}
	if f.Renderer == nil {
		return "N/A (Could not fetch description, browser session not available for fallback)"
	}
	return f.ViaBrowser(ctx, url, genericWait, GenericChain("")...)
}
