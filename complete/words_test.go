package complete

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/keyline/console"
	"github.com/iw2rmb/keyline/editor"
)

var _ editor.Completer = (*Words)(nil)

func TestWords_PrefixMatchesSorted(t *testing.T) {
	w := NewWords([]string{"foobar", "bar", "foo", "foo", ""}, nil)

	require.Equal(t, []string{"foo", "foobar"}, w.Suggest("cd fo", 3))
	require.Equal(t, []string{"bar", "foo", "foobar"}, w.Suggest("cd ", 3), "empty segment lists everything")
	require.Equal(t, []rune{' '}, w.Separators())
}

func TestWords_SegmentStopsAtSeparator(t *testing.T) {
	w := NewWords([]string{"foo", "fizz"}, nil)
	require.Equal(t, []string{"fizz"}, w.Suggest("cd fi zz", 3))
}

func TestWords_FuzzyFallback(t *testing.T) {
	w := NewWords([]string{"bar", "foo", "foobar"}, nil)
	require.Equal(t, []string{"foobar"}, w.Suggest("fb", 0))
	require.Empty(t, w.Suggest("zzz", 0))
}

func TestWords_BoundaryOutOfRange(t *testing.T) {
	w := NewWords([]string{"a"}, nil)
	require.Equal(t, []string{"a"}, w.Suggest("x", 7))
}

func TestWords_DrivesSessionCompletion(t *testing.T) {
	scr := console.NewScreen(40)
	s := editor.New(scr, editor.Config{Completer: NewWords([]string{"foo", "foobar"}, nil)})
	for _, r := range "cd fo" {
		s.Handle(editor.Rune(r))
	}

	tab := editor.Press(editor.KeyTab, editor.ModNone)
	s.Handle(tab)
	require.Equal(t, "cd foo", s.Text())
	s.Handle(tab)
	require.Equal(t, "cd foobar", s.Text())
	s.Handle(tab)
	require.Equal(t, "cd foo", s.Text())
	require.Equal(t, "cd foo", scr.Line(0))
}
