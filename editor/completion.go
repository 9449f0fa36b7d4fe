package editor

import "github.com/iw2rmb/keyline/internal/log"

// Completer supplies tab-completion candidates.
type Completer interface {
	// Separators end the segment being completed.
	Separators() []rune
	// Suggest returns full replacements for text[boundary:], in cycling
	// order. boundary is a rune offset.
	Suggest(text string, boundary int) []string
}

type completionState struct {
	prefix     string
	candidates []string
	index      int
}

func (s *Session) resetCompletion() {
	if s.completion != nil {
		log.Debug(log.CatComplete, "Completion ended", "session", s.id, "index", s.completion.index)
	}
	s.completion = nil
}

func (s *Session) complete() error {
	if s.completion != nil {
		return s.cycleCompletion(1)
	}
	if s.cfg.Completer == nil {
		return nil
	}
	boundary, err := s.buf.SegmentStart(s.cursor.Offset(), s.cfg.Completer.Separators())
	if err != nil {
		return err
	}
	prefix, err := s.buf.Slice(0, boundary)
	if err != nil {
		return err
	}
	candidates := s.cfg.Completer.Suggest(s.buf.Text(), boundary)
	log.Debug(log.CatComplete, "Completion requested", "session", s.id, "boundary", boundary,
		"candidates", len(candidates))
	if len(candidates) == 0 {
		return nil
	}
	s.completion = &completionState{
		prefix:     prefix,
		candidates: append([]string(nil), candidates...),
	}
	return s.replace(prefix + candidates[0])
}

func (s *Session) cycleCompletion(step int) error {
	c := s.completion
	if c == nil {
		return nil
	}
	n := len(c.candidates)
	c.index = ((c.index+step)%n + n) % n
	return s.replace(c.prefix + c.candidates[c.index])
}
