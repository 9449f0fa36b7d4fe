// Package config provides configuration types, defaults and validation for
// keyline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/spf13/viper"

	"github.com/iw2rmb/keyline/buffer"
	"github.com/iw2rmb/keyline/internal/log"
)

// EnvPrefix is the prefix viper uses for environment overrides
// (KEYLINE_PROMPT, KEYLINE_DEBUG, ...).
const EnvPrefix = "KEYLINE"

// Config holds all configuration options for keyline.
type Config struct {
	Prompt         string           `mapstructure:"prompt"`
	Width          int              `mapstructure:"width"`           // 0: detect from the terminal
	WordSeparators string           `mapstructure:"word_separators"` // runes that delimit words
	Completion     CompletionConfig `mapstructure:"completion"`
	LogFile        string           `mapstructure:"log_file"`
	LogLevel       string           `mapstructure:"log_level"`
	Debug          bool             `mapstructure:"debug"`
}

// CompletionConfig selects and tunes the completion sources.
type CompletionConfig struct {
	Separators string        `mapstructure:"separators"`
	Words      []string      `mapstructure:"words"`
	Paths      bool          `mapstructure:"paths"` // complete filesystem paths
	Root       string        `mapstructure:"root"`  // base directory for relative paths
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Prompt:         "> ",
		Width:          0,
		WordSeparators: " /",
		Completion: CompletionConfig{
			Separators: " ",
			Words:      nil,
			Paths:      true,
			Root:       ".",
			CacheTTL:   2 * time.Second,
		},
		LogFile:  "",
		LogLevel: "info",
	}
}

// SetDefaults registers Defaults with v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("prompt", d.Prompt)
	v.SetDefault("width", d.Width)
	v.SetDefault("word_separators", d.WordSeparators)
	v.SetDefault("completion.separators", d.Completion.Separators)
	v.SetDefault("completion.words", d.Completion.Words)
	v.SetDefault("completion.paths", d.Completion.Paths)
	v.SetDefault("completion.root", d.Completion.Root)
	v.SetDefault("completion.cache_ttl", d.Completion.CacheTTL)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("debug", false)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	log.Debug(log.CatConfig, "Loaded config", "file", v.ConfigFileUsed(), "prompt", cfg.Prompt, "width", cfg.Width)
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	if err := validateSeparators("word_separators", c.WordSeparators); err != nil {
		return err
	}
	if c.Completion.Separators == "" {
		return errors.New("completion.separators must not be empty")
	}
	if err := validateSeparators("completion.separators", c.Completion.Separators); err != nil {
		return err
	}
	for i, w := range c.Completion.Words {
		if w == "" {
			return fmt.Errorf("completion.words[%d] is empty", i)
		}
	}
	if c.Completion.CacheTTL < 0 {
		return fmt.Errorf("completion.cache_ttl must be >= 0, got %s", c.Completion.CacheTTL)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func validateSeparators(key, seps string) error {
	for _, r := range seps {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s contains control character %U", key, r)
		}
	}
	return nil
}

// WordSeparatorSet returns the word separators as a buffer.Separators,
// falling back to buffer.DefaultWordSeparators when none are configured.
func (c Config) WordSeparatorSet() buffer.Separators {
	if c.WordSeparators == "" {
		return buffer.DefaultWordSeparators
	}
	return buffer.Separators(c.WordSeparators)
}

// CompletionSeparatorSet returns the completion boundary separators.
func (c Config) CompletionSeparatorSet() []rune {
	return []rune(c.Completion.Separators)
}

// DefaultPath is the per-user config location: ~/.config/keyline/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "keyline", "config.yaml")
	}
	return filepath.Join(home, ".config", "keyline", "config.yaml")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# keyline configuration

# Prompt printed before each line
prompt: "> "

# Terminal width in columns (0: detect)
width: 0

# Characters that delimit words for word movement and ctrl+w
word_separators: " /"

completion:
  # Characters that start a new completion fragment
  separators: " "
  # Fixed vocabulary offered by tab completion
  # words: [help, history, quit]
  # Offer filesystem paths below root
  paths: true
  root: .
  # How long completion results are reused for identical input
  cache_ttl: 2s

# Debug log destination (enabled with --debug or KEYLINE_DEBUG=1)
# log_file: /tmp/keyline.log
log_level: info
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
