package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/keyline/internal/config"
	"github.com/iw2rmb/keyline/internal/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := writeFile(t, "keyline.yaml", "prompt: \"$ \"\nwidth: 50\ncompletion:\n  words: [make, man]\n")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "$ ", cfg.Prompt)
	require.Equal(t, 50, cfg.Width)
	require.Equal(t, []string{"make", "man"}, cfg.Completion.Words)
	require.Equal(t, 2*time.Second, cfg.Completion.CacheTTL, "unset keys keep defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "keyline.yaml", "prompt: \"$ \"\n")
	t.Setenv("KEYLINE_PROMPT", "% ")
	t.Setenv("KEYLINE_COMPLETION_CACHE_TTL", "5s")

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "% ", cfg.Prompt)
	require.Equal(t, 5*time.Second, cfg.Completion.CacheTTL)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config")

	path := writeFile(t, "bad.yaml", "width: -3\n")
	_, err = loadConfig(viper.New(), path)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestConfigInit_WritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "init", path})
	require.ErrorContains(t, cmd.Execute(), "already exists")
}

func TestConfigSave_WritesEffectiveConfig(t *testing.T) {
	src := writeFile(t, "in.yaml", "prompt: \"# \"\nword_separators: \" -\"\n")
	dst := filepath.Join(t.TempDir(), "out.yaml")
	t.Setenv("KEYLINE_WIDTH", "72")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", src, "config", "save", dst})
	require.NoError(t, cmd.Execute())

	cfg, err := loadConfig(viper.New(), dst)
	require.NoError(t, err)
	require.Equal(t, "# ", cfg.Prompt)
	require.Equal(t, " -", cfg.WordSeparators)
	require.Equal(t, 72, cfg.Width)
}

func TestInitLogging(t *testing.T) {
	cleanup, err := initLogging(config.Defaults())
	require.NoError(t, err)
	cleanup()

	cfg := config.Defaults()
	cfg.Debug = true
	cfg.LogFile = filepath.Join(t.TempDir(), "debug.log")
	cleanup, err = initLogging(cfg)
	require.NoError(t, err)
	log.Debug(log.CatApp, "probe", "n", 1)
	cleanup()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] [app] probe n=1")
}

func TestInitLogging_LevelFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogFile = filepath.Join(t.TempDir(), "app.log")
	cfg.LogLevel = "warn"
	cleanup, err := initLogging(cfg)
	require.NoError(t, err)
	log.Info(log.CatApp, "hidden")
	log.Warn(log.CatApp, "shown")
	cleanup()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "[WARN] [app] shown")
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), version)
}
