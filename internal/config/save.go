package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/keyline/internal/log"
)

// fileConfig is the on-disk shape of Config. Durations are written in
// time.Duration string form so viper decodes them back unchanged.
type fileConfig struct {
	Prompt         string         `yaml:"prompt"`
	Width          int            `yaml:"width"`
	WordSeparators string         `yaml:"word_separators"`
	Completion     fileCompletion `yaml:"completion"`
	LogFile        string         `yaml:"log_file,omitempty"`
	LogLevel       string         `yaml:"log_level,omitempty"`
}

type fileCompletion struct {
	Separators string   `yaml:"separators"`
	Words      []string `yaml:"words,omitempty"`
	Paths      bool     `yaml:"paths"`
	Root       string   `yaml:"root,omitempty"`
	CacheTTL   string   `yaml:"cache_ttl"`
}

// Save validates cfg and writes it to configPath as YAML. Debug is a
// runtime switch and is not persisted.
func Save(configPath string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	data, err := yaml.Marshal(fileConfig{
		Prompt:         cfg.Prompt,
		Width:          cfg.Width,
		WordSeparators: cfg.WordSeparators,
		Completion: fileCompletion{
			Separators: cfg.Completion.Separators,
			Words:      cfg.Completion.Words,
			Paths:      cfg.Completion.Paths,
			Root:       cfg.Completion.Root,
			CacheTTL:   cfg.Completion.CacheTTL.String(),
		},
		LogFile:  cfg.LogFile,
		LogLevel: cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	log.Info(log.CatConfig, "Saved config", "path", configPath)
	return nil
}
