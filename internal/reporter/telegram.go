package reporter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// telegramLimit is kept under the API's 4096 character message cap.
const telegramLimit = 4000

type Telegram struct {
	token  string
	chatID int64

	once    sync.Once
	bot     *tgbotapi.BotAPI
	initErr error
}

// NewTelegram prepares a telegram notifier. The bot is only contacted on first Send.
func NewTelegram(token string, chatID int64) *Telegram {
	return &Telegram{token: token, chatID: chatID}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) configured() bool {
	return t.token != "" && t.chatID != 0
}

func (t *Telegram) Send(ctx context.Context, recipient, subject, body string) error {
	if !t.configured() {
		log.Warn().Msg("Telegram bot token or chat id not configured. Skipping telegram notification.")
		return nil
	}
	chatID := t.chatID
	if recipient != "" {
		id, err := strconv.ParseInt(recipient, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid telegram chat id %q: %w", recipient, err)
		}
		chatID = id
	}

	t.once.Do(func() {
		t.bot, t.initErr = tgbotapi.NewBotAPI(t.token)
	})
	if t.initErr != nil {
		return fmt.Errorf("failed to init telegram bot: %w", t.initErr)
	}

	for _, chunk := range Chunks(subject+"\n\n"+body, telegramLimit) {
		if err := ctx.Err(); err != nil {
			return err
		}
		// plain text, titles are not escaped for HTML
		if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
	}
	log.Info().Int64("chat_id", chatID).Msg("📨 Telegram notification sent")
	return nil
}

// Chunks splits text on blank lines into pieces of at most limit characters.
// A single block longer than limit is cut hard.
func Chunks(text string, limit int) []string {
	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, block := range strings.Split(text, "\n\n") {
		runes := []rune(block)
		for len(runes) > limit {
			flush()
			chunks = append(chunks, string(runes[:limit]))
			runes = runes[limit:]
		}
		n := len(runes)
		if curLen > 0 && curLen+2+n > limit {
			flush()
		}
		if curLen > 0 {
			cur.WriteString("\n\n")
			curLen += 2
		}
		cur.WriteString(string(runes))
		curLen += n
	}
	flush()
	return chunks
}
