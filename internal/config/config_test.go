package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "jobs.db", cfg.DBName)
	assert.Equal(t, 5, cfg.ScrapingDelaySeconds)
	assert.Equal(t, 1, cfg.DescriptionDelaySeconds)
	assert.Equal(t, 2, cfg.MinSkillMatches)
	assert.Equal(t, 15, cfg.RequestTimeoutSeconds)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPServer)
	assert.Equal(t, 465, cfg.Email.SMTPPort)
	assert.Equal(t, "0 8 * * *", cfg.Schedule)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, DefaultSkills(), cfg.Vocabulary.Skills)
	assert.Equal(t, DefaultRoles(), cfg.Vocabulary.Roles)
	assert.Equal(t, DefaultPreferences(), cfg.Vocabulary.Preferences)
	assert.Equal(t, "en-US,en;q=0.9", cfg.Headers["Accept-Language"])
}

func TestLoadFile_YAMLThenEnv(t *testing.T) {
	path := writeYAML(t, `
resume_path: cv.pdf
min_skill_matches: 3
vocabulary:
  skills: [go, postgres]
browser:
  headless: false
  cookies_path: .cookies
email:
  sender: me@example.org
telegram:
  chat_id: 7
log:
  level: debug
`)
	t.Setenv("RESUME_PATH", "/data/resume.pdf")
	t.Setenv("JOB_SEARCH_SMTP_PORT", "587")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/resume.pdf", cfg.ResumePath)
	assert.Equal(t, 3, cfg.MinSkillMatches)
	assert.Equal(t, []string{"go", "postgres"}, cfg.Vocabulary.Skills)
	assert.Equal(t, DefaultRoles(), cfg.Vocabulary.Roles)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, ".cookies", cfg.Browser.CookiesPath)
	assert.Equal(t, "me@example.org", cfg.Email.Sender)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, int64(12345), cfg.Telegram.ChatID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Run("bad number", func(t *testing.T) {
		t.Setenv("MIN_SKILL_MATCHES", "two")
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("negative delay", func(t *testing.T) {
		_, err := LoadFile(writeYAML(t, "scraping_delay_seconds: -1\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadFile(writeYAML(t, "vocabulary: [unclosed\n"))
		assert.Error(t, err)
	})
}

func TestLoad_UsesConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, "db_name: custom.db\n"))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "custom.db", cfg.DBName)
}
