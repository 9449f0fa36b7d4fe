package editor

import "github.com/iw2rmb/keyline/buffer"

// Config configures a Session. The zero value is usable: default word
// separators and bindings, empty history, no completion.
type Config struct {
	// WordSeparators delimit words for word movement and cut-word.
	// Default: buffer.DefaultWordSeparators.
	WordSeparators buffer.Separators

	// History is read, never written. The session starts just past its
	// last entry.
	History History

	// Completer supplies tab-completion candidates. Nil disables completion.
	Completer Completer

	// Bindings is copied when the session is created. Default:
	// DefaultBindings().
	Bindings Bindings

	// UndoLimit bounds the undo stack. Default: buffer.DefaultUndoLimit.
	UndoLimit int
}

func normalizeConfig(cfg Config) Config {
	if len(cfg.WordSeparators) == 0 {
		cfg.WordSeparators = buffer.DefaultWordSeparators
	}
	if cfg.History == nil {
		cfg.History = Lines(nil)
	}
	cfg.Bindings = normalizeBindings(cfg.Bindings)
	return cfg
}
