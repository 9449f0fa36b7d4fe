package main

import (
	"github.com/spf13/afero"

	"github.com/iw2rmb/keyline/complete"
	"github.com/iw2rmb/keyline/console"
	"github.com/iw2rmb/keyline/editor"
	"github.com/iw2rmb/keyline/internal/config"
)

// lineEditor holds what every prompt shares: the configured completer and
// the lines entered so far.
type lineEditor struct {
	cfg       config.Config
	completer editor.Completer
	history   []string
}

func newLineEditor(cfg config.Config, fs afero.Fs) *lineEditor {
	return &lineEditor{cfg: cfg, completer: newCompleter(cfg, fs)}
}

func newCompleter(cfg config.Config, fs afero.Fs) editor.Completer {
	seps := cfg.CompletionSeparatorSet()
	var chain complete.Chain
	if len(cfg.Completion.Words) > 0 {
		chain = append(chain, complete.NewWords(cfg.Completion.Words, seps))
	}
	if cfg.Completion.Paths {
		paths := complete.NewPaths(fs, cfg.Completion.Root, seps)
		chain = append(chain, complete.NewCached(paths, cfg.Completion.CacheTTL))
	}
	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	default:
		return chain
	}
}

// session starts a new line at the console cursor.
func (l *lineEditor) session(con console.Console) *editor.Session {
	return editor.New(con, editor.Config{
		WordSeparators: l.cfg.WordSeparatorSet(),
		History:        editor.Lines(l.history),
		Completer:      l.completer,
	})
}

// commit records a finished line. Blank lines and immediate repeats are not
// added to the history.
func (l *lineEditor) commit(line string) {
	if line == "" {
		return
	}
	if n := len(l.history); n > 0 && l.history[n-1] == line {
		return
	}
	l.history = append(l.history, line)
}
