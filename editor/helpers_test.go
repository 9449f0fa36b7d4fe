package editor

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/keyline/console"
)

type wordCompleter struct {
	seps  []rune
	words []string
}

func (c wordCompleter) Separators() []rune { return c.seps }

func (c wordCompleter) Suggest(text string, boundary int) []string {
	word := []rune(text)[boundary:]
	for i, r := range word {
		if slices.Contains(c.seps, r) {
			word = word[:i]
			break
		}
	}
	var out []string
	for _, w := range c.words {
		if strings.HasPrefix(w, string(word)) {
			out = append(out, w)
		}
	}
	return out
}

func newTestSession(t *testing.T, width int, prompt string, cfg Config) (*Session, *console.Screen) {
	t.Helper()
	scr := console.NewScreen(width)
	scr.Write(prompt)
	return New(scr, cfg), scr
}

func typeText(s *Session, text string) {
	for _, r := range text {
		s.Handle(Rune(r))
	}
}

func press(s *Session, k Key, mod Modifiers) {
	s.Handle(Press(k, mod))
}

// cellsFrom reads n cells starting at (left, top), wrapping at the screen
// width.
func cellsFrom(scr *console.Screen, left, top, n int) string {
	w := scr.BufferWidth()
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		abs := left + i
		out = append(out, scr.Cell(abs%w, top+abs/w))
	}
	return string(out)
}

// requireScreenMatches checks that the screen shows exactly the session text
// at its origin followed by blanks, with the cursor where the tracker says.
func requireScreenMatches(t require.TestingT, s *Session, scr *console.Screen, tail int) {
	left, top := s.Tracker().Origin()
	text := s.Text()
	n := len([]rune(text))
	require.Equal(t, text+strings.Repeat(" ", tail), cellsFrom(scr, left, top, n+tail), "screen contents")

	wantLeft, wantTop := s.Tracker().Locate(s.Cursor())
	require.Equal(t, [2]int{wantLeft, wantTop}, [2]int{scr.CursorLeft(), scr.CursorTop()}, "screen cursor")
}
