package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ReminderConfig controls the daily check-in notification.
type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "20:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon",...,"Sun"]
	Holidays []string `mapstructure:"holidays"` // ["2026-01-01"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Asia/Kolkata" (optional)
}

// ClaudeConfig holds the generative-text service settings.
type ClaudeConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// String masks the API key.
func (c ClaudeConfig) String() string {
	return fmt.Sprintf("ClaudeConfig{APIKey:%s, Model:%s}", maskAPIKey(c.APIKey), c.Model)
}

func maskAPIKey(key string) string {
	const visible = 4
	if key == "" {
		return ""
	}
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

// Config holds all configuration for moodlog.
type Config struct {
	DataDir    string         `mapstructure:"data_dir"`
	Theme      string         `mapstructure:"theme"`
	ColorTheme string         `mapstructure:"colortheme"`
	Claude     ClaudeConfig   `mapstructure:"claude"`
	Reminder   ReminderConfig `mapstructure:"reminder"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:    "",
		Theme:      "dark",
		ColorTheme: "mocha",
		Claude: ClaudeConfig{
			Model: "claude-haiku-4-5-20251001",
		},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
			Timezone: "",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "moodlog")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from the yaml file and environment. A missing
// file is fine; defaults apply.
func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("colortheme", cfg.ColorTheme)
	v.SetDefault("claude.model", cfg.Claude.Model)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	v.SetEnvPrefix("MOODLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("claude.api_key", "ANTHROPIC_API_KEY")

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize workdays to three-letter abbreviations
	days := cfg.Reminder.Workdays[:0]
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) < 3 {
			continue
		}
		days = append(days, strings.Title(strings.ToLower(d[:3])))
	}
	cfg.Reminder.Workdays = days

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks field consistency.
func (c *Config) Validate() error {
	if c.Claude.Model == "" {
		return fmt.Errorf("claude.model must not be empty")
	}
	if c.Reminder.Time != "" {
		if _, err := time.Parse("15:04", c.Reminder.Time); err != nil {
			return fmt.Errorf("reminder.time %q is not HH:MM", c.Reminder.Time)
		}
	}
	for _, h := range c.Reminder.Holidays {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(h)); err != nil {
			return fmt.Errorf("reminder.holidays entry %q is not YYYY-MM-DD", h)
		}
	}
	return nil
}

// Location returns the configured timezone, falling back to local time.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
