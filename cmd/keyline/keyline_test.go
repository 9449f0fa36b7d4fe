package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/keyline/internal/config"
)

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.Width = 40
	cfg.Completion.Root = "/work"
	cfg.Completion.Words = []string{"cat", "cd"}
	return cfg
}

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/src", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/notes.txt", []byte("x"), 0o644))
	return fs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "expected tea.Quit")
}
