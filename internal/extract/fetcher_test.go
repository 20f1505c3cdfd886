package extract

import (
	"context"
	"errors"
	"testing"

	"go-jobsearch-automation/internal/browser/browsertest"

	"github.com/stretchr/testify/assert"
)

type fakeHTTP map[string]string

func (f fakeHTTP) Get(_ context.Context, url string) (string, error) {
	if page, ok := f[url]; ok {
		return page, nil
	}
	return "", errors.New("502 " + url)
}

func TestFetcher_ViaHTTP(t *testing.T) {
	f := &Fetcher{HTTP: fakeHTTP{"https://a.org/1": `<div class="description">Hello</div>`}}
	ctx := context.Background()

	assert.Equal(t, NoURL, f.ViaHTTP(ctx, "", ""))
	assert.Equal(t, NoURL, f.ViaHTTP(ctx, "N/A", ""))
	assert.Equal(t, "Hello", f.ViaHTTP(ctx, "https://a.org/1", ""))
	assert.Equal(t, Unavailable("http"), f.ViaHTTP(ctx, "https://a.org/2", ""))
}

func TestFetcher_HTTPThenBrowser(t *testing.T) {
	ctx := context.Background()

	t.Run("no renderer for fallback", func(t *testing.T) {
		f := &Fetcher{HTTP: fakeHTTP{}}
		assert.Contains(t, f.HTTPThenBrowser(ctx, "https://a.org/x"), "browser session not available for fallback")
	})

	t.Run("rendered fallback", func(t *testing.T) {
		r := &browsertest.Renderer{Pages: map[string]string{"https://a.org/x": `<div class="job-content">Rendered</div>`}}
		f := &Fetcher{HTTP: fakeHTTP{}, Renderer: r}
		assert.Equal(t, "Rendered", f.HTTPThenBrowser(ctx, "https://a.org/x"))
		assert.Equal(t, []string{"https://a.org/x"}, r.Rendered)
	})

	t.Run("http success skips the browser", func(t *testing.T) {
		r := &browsertest.Renderer{}
		f := &Fetcher{HTTP: fakeHTTP{"https://a.org/y": `<p>Plain</p>`}, Renderer: r}
		assert.Equal(t, "Plain", f.HTTPThenBrowser(ctx, "https://a.org/y"))
		assert.Empty(t, r.Rendered)
	})
}

func TestFetcher_ViaBrowser_NoRenderer(t *testing.T) {
	f := &Fetcher{}
	assert.Equal(t, NoRenderer, f.ViaBrowser(context.Background(), "https://a.org/z", "body"))
}
