// Load .env, then the YAML file, then environment overrides, then defaults.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-jobsearch-automation/internal/keywords"
	"go-jobsearch-automation/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

var ErrInvalid = errors.New("invalid configuration")

type BrowserConfig struct {
	Headless      bool   `yaml:"headless"`
	CookiesPath   string `yaml:"cookies_path"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

type EmailConfig struct {
	Sender     string `yaml:"sender"`
	Password   string `yaml:"password"`
	Recipient  string `yaml:"recipient"`
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
}

type TelegramConfig struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id"`
}

type Config struct {
	ResumePath  string `yaml:"resume_path"`
	DBName      string `yaml:"db_name"`
	DatabaseURL string `yaml:"database_url"`

	ScrapingDelaySeconds    int `yaml:"scraping_delay_seconds"`
	DescriptionDelaySeconds int `yaml:"description_delay_seconds"`
	MinSkillMatches         int `yaml:"min_skill_matches"`
	RequestTimeoutSeconds   int `yaml:"request_timeout_seconds"`

	Headers    map[string]string   `yaml:"headers"`
	Vocabulary keywords.Vocabulary `yaml:"vocabulary"`

	// Browser is decoded through fileConfig.
	Browser  BrowserConfig  `yaml:"-"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Schedule string         `yaml:"schedule"`
	Port     string         `yaml:"port"`
	Log      logger.Config  `yaml:"log"`
}

// fileConfig is the YAML shape; browser.headless needs to tell absent from false.
type fileConfig struct {
	Config  `yaml:",inline"`
	Browser struct {
		Headless      *bool  `yaml:"headless"`
		CookiesPath   string `yaml:"cookies_path"`
		ScreenshotDir string `yaml:"screenshot_dir"`
	} `yaml:"browser"`
}

// Load reads configuration from CONFIG_PATH (or configs/config.yaml) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit YAML path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug().Str("path", path).Msg("No config file, using environment and defaults")
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg := fc.Config
	cfg.Browser = BrowserConfig{
		Headless:      fc.Browser.Headless == nil || *fc.Browser.Headless,
		CookiesPath:   fc.Browser.CookiesPath,
		ScreenshotDir: fc.Browser.ScreenshotDir,
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"RESUME_PATH":                &c.ResumePath,
		"DB_NAME":                    &c.DBName,
		"DATABASE_URL":               &c.DatabaseURL,
		"JOB_SEARCH_EMAIL_SENDER":    &c.Email.Sender,
		"JOB_SEARCH_EMAIL_PASSWORD":  &c.Email.Password,
		"JOB_SEARCH_EMAIL_RECIPIENT": &c.Email.Recipient,
		"JOB_SEARCH_SMTP_SERVER":     &c.Email.SMTPServer,
		"TELEGRAM_BOT_TOKEN":         &c.Telegram.Token,
		"COOKIES_PATH":               &c.Browser.CookiesPath,
		"SCREENSHOT_DIR":             &c.Browser.ScreenshotDir,
		"SCHEDULE":                   &c.Schedule,
		"PORT":                       &c.Port,
		"LOG_LEVEL":                  &c.Log.Level,
		"LOG_FORMAT":                 &c.Log.Format,
	}
	for key, dst := range str {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"SCRAPING_DELAY_SECONDS":    &c.ScrapingDelaySeconds,
		"DESCRIPTION_DELAY_SECONDS": &c.DescriptionDelaySeconds,
		"MIN_SKILL_MATCHES":         &c.MinSkillMatches,
		"REQUEST_TIMEOUT_SECONDS":   &c.RequestTimeoutSeconds,
		"JOB_SEARCH_SMTP_PORT":      &c.Email.SMTPPort,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, key, v)
		}
		*dst = n
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid TELEGRAM_CHAT_ID: %v", ErrInvalid, err)
		}
		c.Telegram.ChatID = id
	}
	if v := os.Getenv("BROWSER_HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: invalid BROWSER_HEADLESS: %v", ErrInvalid, err)
		}
		c.Browser.Headless = b
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.DBName == "" {
		c.DBName = "jobs.db"
	}
	if c.ScrapingDelaySeconds == 0 {
		c.ScrapingDelaySeconds = 5
	}
	if c.DescriptionDelaySeconds == 0 {
		c.DescriptionDelaySeconds = 1
	}
	if c.MinSkillMatches == 0 {
		c.MinSkillMatches = 2
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 15
	}
	if c.Email.SMTPServer == "" {
		c.Email.SMTPServer = "smtp.gmail.com"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 465
	}
	if c.Schedule == "" {
		c.Schedule = "0 8 * * *"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if len(c.Headers) == 0 {
		c.Headers = DefaultHeaders()
	}
	if len(c.Vocabulary.Skills) == 0 {
		c.Vocabulary.Skills = DefaultSkills()
	}
	if len(c.Vocabulary.Roles) == 0 {
		c.Vocabulary.Roles = DefaultRoles()
	}
	if len(c.Vocabulary.Preferences) == 0 {
		c.Vocabulary.Preferences = DefaultPreferences()
	}
}

// Validate checks ranges. The resume path is checked when a run starts.
func (c *Config) Validate() error {
	var problems []string
	if c.ScrapingDelaySeconds < 0 {
		problems = append(problems, "scraping delay must not be negative")
	}
	if c.DescriptionDelaySeconds < 0 {
		problems = append(problems, "description delay must not be negative")
	}
	if c.MinSkillMatches < 0 {
		problems = append(problems, "minimum skill matches must not be negative")
	}
	if c.RequestTimeoutSeconds < 0 {
		problems = append(problems, "request timeout must not be negative")
	}
	if c.Email.SMTPPort < 0 || c.Email.SMTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("smtp port %d out of range", c.Email.SMTPPort))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) ScrapingDelay() time.Duration {
	return time.Duration(c.ScrapingDelaySeconds) * time.Second
}

func (c *Config) DescriptionDelay() time.Duration {
	return time.Duration(c.DescriptionDelaySeconds) * time.Second
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
