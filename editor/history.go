package editor

// History is a read-only list of previously submitted lines, oldest first.
type History interface {
	Len() int
	At(i int) string
}

// Lines adapts a string slice to History.
type Lines []string

func (l Lines) Len() int        { return len(l) }
func (l Lines) At(i int) string { return l[i] }

func (s *Session) historyPrev() error {
	if s.historyIndex == 0 {
		return nil
	}
	s.historyIndex--
	return s.replace(s.cfg.History.At(s.historyIndex))
}

func (s *Session) historyNext() error {
	n := s.cfg.History.Len()
	if s.historyIndex >= n {
		return nil
	}
	s.historyIndex++
	if s.historyIndex == n {
		return s.clear()
	}
	return s.replace(s.cfg.History.At(s.historyIndex))
}
