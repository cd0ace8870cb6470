package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ChartSentinel/internal/model"
	"ChartSentinel/internal/pattern"
)

// Config holds all application configuration.
type Config struct {
	Scan struct {
		Tickers    []string `yaml:"tickers"`
		StartDate  string   `yaml:"start_date"` // YYYY-MM-DD
		Patterns   []string `yaml:"patterns"`   // display labels; empty means all
		GannLevels bool     `yaml:"gann_levels"`
	} `yaml:"scan"`
	Export struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"export"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCAN_TICKERS"); v != "" {
		cfg.Scan.Tickers = splitList(v)
	}
	if v := os.Getenv("SCAN_START_DATE"); v != "" {
		cfg.Scan.StartDate = v
	}
	if v := os.Getenv("SCAN_PATTERNS"); v != "" {
		cfg.Scan.Patterns = splitList(v)
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Export.CSVPath = v
	}

	// Defaults
	if cfg.Scan.StartDate == "" {
		cfg.Scan.StartDate = time.Now().AddDate(-1, 0, 0).Format("2006-01-02")
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 0 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/chart_sentinel.db"
	}

	return cfg, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that all required fields are set and resolvable.
func (c *Config) Validate() error {
	if len(c.Scan.Tickers) == 0 {
		return fmt.Errorf("scan.tickers: at least one ticker is required")
	}
	if _, err := c.StartTime(); err != nil {
		return err
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	return nil
}

// StartTime parses the configured scan start date.
func (c *Config) StartTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Scan.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("scan.start_date: %w", err)
	}
	return t, nil
}

// Kinds resolves the configured pattern labels to pattern kinds. An empty
// selection means the full catalog.
func (c *Config) Kinds() ([]model.Kind, error) {
	if len(c.Scan.Patterns) == 0 {
		return pattern.Kinds(), nil
	}
	kinds := make([]model.Kind, 0, len(c.Scan.Patterns))
	for _, label := range c.Scan.Patterns {
		kind, ok := pattern.KindForLabel(label)
		if !ok {
			return nil, fmt.Errorf("scan.patterns: unknown pattern %q", label)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}
