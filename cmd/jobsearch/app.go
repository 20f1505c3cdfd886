package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-jobsearch-automation/internal/browser"
	"go-jobsearch-automation/internal/config"
	"go-jobsearch-automation/internal/database"
	"go-jobsearch-automation/internal/fetch"
	"go-jobsearch-automation/internal/filter"
	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/pipeline"
	"go-jobsearch-automation/internal/reporter"
	"go-jobsearch-automation/internal/resume"
)

// app holds what a command needs; close releases the store.
type app struct {
	runner *pipeline.Runner
	store  database.Repository
	close  func() error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("initializing job store: %w", err)
	}

	resumeReader, err := resume.NewReader(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}

	runner := pipeline.New(pipeline.Deps{
		Store:        store,
		Resume:       resumeReader,
		ResumePath:   cfg.ResumePath,
		Extractor:    keywords.NewExtractor(cfg.Vocabulary),
		Filter:       filter.New(cfg.MinSkillMatches, time.Now),
		Sources:      pipeline.DefaultSources(fetch.New(cfg.Headers, cfg.RequestTimeout()), cfg.DescriptionDelay(), time.Now),
		OpenRenderer: rendererFactory(cfg),
		Notifiers:    notifiers(cfg),
		Delay:        cfg.ScrapingDelay(),
	})
	return &app{runner: runner, store: store, close: store.Close}, nil
}

func notifiers(cfg *config.Config) []reporter.Notifier {
	return []reporter.Notifier{
		reporter.NewEmail(reporter.EmailConfig{
			Sender:    cfg.Email.Sender,
			Password:  cfg.Email.Password,
			Recipient: cfg.Email.Recipient,
			Server:    cfg.Email.SMTPServer,
			Port:      cfg.Email.SMTPPort,
		}),
		reporter.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID),
	}
}

func rendererFactory(cfg *config.Config) pipeline.RendererFactory {
	return func() (browser.Renderer, func() error, error) {
		session, err := browser.Open(browser.Options{
			Headless:      cfg.Browser.Headless,
			UserAgent:     cfg.Headers["User-Agent"],
			Headers:       cfg.Headers,
			CookieFiles:   cookieFiles(cfg.Browser.CookiesPath),
			ScreenshotDir: cfg.Browser.ScreenshotDir,
			Timeout:       browser.DefaultTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return session, session.Close, nil
	}
}

// cookieFiles accepts a single JSON file or a directory of them.
func cookieFiles(path string) []string {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return []string{path}
	}
	files, _ := filepath.Glob(filepath.Join(path, "*.json"))
	return files
}
