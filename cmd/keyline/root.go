package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/keyline"
	"github.com/iw2rmb/keyline/internal/config"
	"github.com/iw2rmb/keyline/internal/log"
)

// localConfigFile is checked before the per-user config.
const localConfigFile = ".keyline.yaml"

var version = keyline.Version()

func init() {
	// Query the background color before any Bubble Tea program owns stdin.
	_ = lipgloss.HasDarkBackground()
}

type rootOptions struct {
	cfgFile string
	raw     bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "keyline",
		Short:        "An interactive line editor with readline key bindings",
		Long:         `keyline reads lines with emacs-style editing, history recall and tab completion, either inside a small TUI or directly on the terminal (--raw).`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, opts.cfgFile)
			if err != nil {
				return err
			}
			cleanup, err := initLogging(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			log.Info(log.CatApp, "keyline starting", "version", version, "raw", opts.raw, "config", v.ConfigFileUsed())
			if opts.raw {
				return runRaw(cfg)
			}
			return runTUI(cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: ./.keyline.yaml, then ~/.config/keyline/config.yaml)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false,
		"edit directly on the terminal instead of the TUI")
	cmd.Flags().IntP("width", "w", 0, "console width in columns (0: detect)")
	cmd.Flags().Bool("debug", false, "write debug logs (also KEYLINE_DEBUG)")

	_ = v.BindPFlag("width", cmd.Flags().Lookup("width"))
	_ = v.BindPFlag("debug", cmd.Flags().Lookup("debug"))

	cmd.AddCommand(newConfigCmd(v, opts))
	return cmd
}

// loadConfig resolves the config file, then decodes defaults, file, env and
// flags through v.
func loadConfig(v *viper.Viper, cfgFile string) (config.Config, error) {
	config.SetDefaults(v)
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(localConfigFile):
		v.SetConfigFile(localConfigFile)
	default:
		v.AddConfigPath(filepath.Dir(config.DefaultPath()))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// initLogging enables the file logger when debugging or when a log file is
// configured. Debug mode logs every level.
func initLogging(cfg config.Config) (func(), error) {
	if !cfg.Debug && cfg.LogFile == "" {
		return func() {}, nil
	}
	path := cfg.LogFile
	if path == "" {
		path = "keyline-debug.log"
	}

	cleanup, err := log.InitWithTeaLog(path, "keyline")
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	level := log.LevelDebug
	if !cfg.Debug {
		level, _ = log.ParseLevel(cfg.LogLevel)
	}
	log.SetMinLevel(level)
	return cleanup, nil
}

var rootCmd = newRootCmd()

func execute() error {
	return rootCmd.Execute()
}

func setVersion(v string) {
	version = v
	rootCmd.Version = v
}
