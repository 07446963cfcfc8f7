// Package config manages application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/roboco-io/postblocks/internal/content"
	"github.com/roboco-io/postblocks/internal/logging"
)

// Config represents the application configuration.
type Config struct {
	Excerpt  ExcerptConfig  `yaml:"excerpt" json:"excerpt"`
	Reading  ReadingConfig  `yaml:"reading" json:"reading"`
	Sanitize SanitizeConfig `yaml:"sanitize" json:"sanitize"`
	Backup   BackupConfig   `yaml:"backup" json:"backup"`
	Log      LogConfig      `yaml:"log" json:"log"`
}

// ExcerptConfig controls excerpt extraction.
type ExcerptConfig struct {
	MaxLength int `yaml:"max_length" json:"max_length"`
}

// ReadingConfig controls reading time estimates.
type ReadingConfig struct {
	WordsPerMinute int `yaml:"words_per_minute" json:"words_per_minute"`
}

// SanitizeConfig selects the default sanitize policy.
type SanitizeConfig struct {
	Policy string `yaml:"policy" json:"policy"`
}

// BackupConfig controls where backups are written.
type BackupConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Excerpt:  ExcerptConfig{MaxLength: content.DefaultExcerptLength},
		Reading:  ReadingConfig{WordsPerMinute: content.DefaultWordsPerMinute},
		Sanitize: SanitizeConfig{Policy: string(content.PolicyBasic)},
		Backup:   BackupConfig{Dir: filepath.Join("~", ConfigDirName, "backups")},
		Log:      LogConfig{Level: logging.LevelInfo},
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Excerpt),
		validation.Field(&c.Reading),
		validation.Field(&c.Sanitize),
		validation.Field(&c.Backup),
		validation.Field(&c.Log),
	)
}

func (e ExcerptConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.MaxLength, validation.Required, validation.Min(1)),
	)
}

func (r ReadingConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WordsPerMinute, validation.Required, validation.Min(1)),
	)
}

func (s SanitizeConfig) Validate() error {
	policies := make([]any, 0, len(content.Policies()))
	for _, p := range content.Policies() {
		policies = append(policies, string(p))
	}
	return validation.ValidateStruct(&s,
		validation.Field(&s.Policy, validation.Required, validation.In(policies...)),
	)
}

func (b BackupConfig) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Dir, validation.Required),
	)
}

func (l LogConfig) Validate() error {
	levels := make([]any, 0, len(logging.Levels()))
	for _, lv := range logging.Levels() {
		levels = append(levels, lv)
	}
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In(levels...)),
	)
}

// Keys returns the dotted keys accepted by Set, sorted.
func Keys() []string {
	keys := []string{"excerpt.max_length", "reading.words_per_minute", "sanitize.policy", "backup.dir", "log.level"}
	sort.Strings(keys)
	return keys
}

// Set assigns a value by dotted key, e.g. "excerpt.max_length".
// The result is not validated; call Validate afterwards.
func (c *Config) Set(key, value string) error {
	switch key {
	case "excerpt.max_length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		c.Excerpt.MaxLength = n
	case "reading.words_per_minute":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		c.Reading.WordsPerMinute = n
	case "sanitize.policy":
		c.Sanitize.Policy = value
	case "backup.dir":
		c.Backup.Dir = value
	case "log.level":
		c.Log.Level = value
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// ExpandHome replaces a leading ~ in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
