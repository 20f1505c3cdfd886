package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"
)

// ScreenShotDebugger saves full page screenshots when a page misbehaves.
// A debugger with an empty output dir does nothing.
type ScreenShotDebugger struct {
	outputDir string
}

func NewScreenShotDebugger(dir string) *ScreenShotDebugger {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("⚠️ Could not create screenshot dir")
			dir = ""
		}
	}
	return &ScreenShotDebugger{outputDir: dir}
}

func (s *ScreenShotDebugger) Enabled() bool {
	return s != nil && s.outputDir != ""
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	if !s.Enabled() {
		return nil
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))
	log.Info().Msgf("📸 %s", message)

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		log.Warn().Err(err).Msg("⚠️ Failed to capture screenshot")
		return err
	}

	log.Info().Str("path", path).Msg("   Screenshot saved")
	return nil
}
