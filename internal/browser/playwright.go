package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobsearch-automation/utils"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
)

// Options configure a browser session.
type Options struct {
	Headless      bool
	UserAgent     string
	Headers       map[string]string
	CookieFiles   []string
	ScreenshotDir string
	// Timeout bounds each navigation and each readiness wait.
	Timeout time.Duration
}

// DefaultTimeout bounds navigation and readiness waits when Options.Timeout is unset.
const DefaultTimeout = 20 * time.Second

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// Session owns one playwright driver, browser, context and page for a whole run.
// It is not safe for concurrent use; Close must be called when the run ends.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	timeout time.Duration
	shots   *utils.ScreenShotDebugger
}

// Open starts chromium and prepares a single page.
func Open(opts Options) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	s := &Session{pw: pw, timeout: opts.timeout(), shots: utils.NewScreenShotDebugger(opts.ScreenshotDir)}
	if err := s.setup(opts); err != nil {
		s.Close()
		return nil, err
	}
	log.Info().Bool("headless", opts.Headless).Msg("✅ Browser initialized successfully!")
	return s, nil
}

func (s *Session) setup(opts Options) error {
	var err error

	s.browser, err = s.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     []string{"--no-sandbox", "--disable-dev-shm-usage"},
	})
	if err != nil {
		return fmt.Errorf("could not launch chromium: %w", err)
	}

	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	}
	if opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(opts.UserAgent)
	}
	if lang, ok := opts.Headers["Accept-Language"]; ok {
		ctxOpts.ExtraHttpHeaders = map[string]string{"Accept-Language": lang}
	}
	s.context, err = s.browser.NewContext(ctxOpts)
	if err != nil {
		return fmt.Errorf("could not create browser context: %w", err)
	}

	for _, file := range opts.CookieFiles {
		cookies, err := LoadCookies(file)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("⚠️ Could not load cookies. Continuing.")
			continue
		}
		if err := s.context.AddCookies(cookies); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("⚠️ Could not add cookies. Continuing.")
			continue
		}
		log.Info().Str("file", file).Int("count", len(cookies)).Msg("🍪 Loaded cookies")
	}

	s.page, err = s.context.NewPage()
	if err != nil {
		return fmt.Errorf("could not create page: %w", err)
	}
	return nil
}

// Close releases the page, context, browser and driver. Safe on a partly opened session.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.page != nil {
		errs = append(errs, s.page.Close())
	}
	if s.context != nil {
		errs = append(errs, s.context.Close())
	}
	if s.browser != nil {
		errs = append(errs, s.browser.Close())
	}
	if s.pw != nil {
		errs = append(errs, s.pw.Stop())
	}
	s.page, s.context, s.browser, s.pw = nil, nil, nil, nil
	return errors.Join(errs...)
}

func (s *Session) ms() *float64 {
	return playwright.Float(float64(s.timeout.Milliseconds()))
}

func (s *Session) goTo(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.page == nil {
		return errors.New("browser session is closed")
	}
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   s.ms(),
	}); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *Session) waitFor(selector, shotName string) error {
	if selector == "" {
		return nil
	}
	if err := s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: s.ms(),
	}); err != nil {
		s.shots.CaptureAndLog(s.page, shotName, fmt.Sprintf("🚨 Timed out waiting for %s", selector))
		return fmt.Errorf("wait for %q: %w", selector, err)
	}
	return nil
}

// Render navigates to url and returns the page HTML once opts.WaitFor is present.
func (s *Session) Render(ctx context.Context, url string, opts RenderOptions) (string, error) {
	if err := s.goTo(ctx, url); err != nil {
		return "", err
	}
	if err := s.waitFor(opts.WaitFor, "render-timeout"); err != nil {
		return "", err
	}
	if opts.Scroll {
		if err := scrollToBottom(ctx, s.page, time.Second); err != nil {
			log.Debug().Err(err).Str("url", url).Msg("scroll failed")
		}
	}
	if err := utils.Pause(ctx, opts.Settle); err != nil {
		return "", err
	}
	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("read page content: %w", err)
	}
	return html, nil
}

// Search types opts.Text into the search field, presses Enter and returns the results page.
func (s *Session) Search(ctx context.Context, url string, opts SearchOptions) (string, error) {
	if err := s.goTo(ctx, url); err != nil {
		return "", err
	}
	if err := s.waitFor(opts.Input, "search-input-timeout"); err != nil {
		return "", err
	}
	input := s.page.Locator(opts.Input).First()
	if err := input.Fill(opts.Text); err != nil {
		return "", fmt.Errorf("type search text: %w", err)
	}
	if err := input.Press("Enter"); err != nil {
		return "", fmt.Errorf("submit search: %w", err)
	}
	if err := s.waitFor(opts.WaitFor, "search-results-timeout"); err != nil {
		return "", err
	}
	if err := utils.Pause(ctx, opts.Settle); err != nil {
		return "", err
	}
	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("read page content: %w", err)
	}
	return html, nil
}
