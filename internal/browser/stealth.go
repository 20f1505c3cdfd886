package browser

import (
	"context"
	"time"

	"go-jobsearch-automation/utils"

	"github.com/playwright-community/playwright-go"
)

const scrollRounds = 3

// scrollToBottom scrolls a few times with a fixed pause so infinite lists load.
func scrollToBottom(ctx context.Context, page playwright.Page, pause time.Duration) error {
	for i := 0; i < scrollRounds; i++ {
		if _, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
			return err
		}
		if err := utils.Pause(ctx, pause); err != nil {
			return err
		}
	}
	return nil
}
