package console

import (
	"strings"
	"testing"
)

func TestScreen_WriteWrapsAtWidth(t *testing.T) {
	s := NewScreen(4)
	s.Write("abcdef")

	if got, want := s.Lines(), []string{"abcd", "ef"}; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	if got, want := [2]int{s.CursorLeft(), s.CursorTop()}, [2]int{2, 1}; got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestScreen_WriteExactlyToWidthMovesToNextRow(t *testing.T) {
	s := NewScreen(3)
	s.Write("abc")

	if got, want := [2]int{s.CursorLeft(), s.CursorTop()}, [2]int{0, 1}; got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if got, want := s.Height(), 2; got != want {
		t.Fatalf("height: got %d, want %d", got, want)
	}
}

func TestScreen_OverwriteAndBlanks(t *testing.T) {
	s := NewScreen(10)
	s.Write("hello")
	s.SetCursorPosition(1, 0)
	s.Write("ip  ")

	if got, want := s.Line(0), "hip"; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
	if got := s.Cell(4, 0); got != ' ' {
		t.Fatalf("cell(4,0): got %q, want blank", got)
	}
}

func TestScreen_SetCursorPositionPanicsOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 0}, {5, 0}, {0, -1}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("SetCursorPosition(%d, %d): expected panic", c[0], c[1])
				}
			}()
			NewScreen(5).SetCursorPosition(c[0], c[1])
		}()
	}
}

func TestScreen_DefaultWidth(t *testing.T) {
	if got, want := NewScreen(0).BufferWidth(), 80; got != want {
		t.Fatalf("width: got %d, want %d", got, want)
	}
}

func TestScreen_StringTrimsTrailingRows(t *testing.T) {
	s := NewScreen(2)
	s.Write("ab")
	s.Write("  ")
	if got, want := s.String(), "ab"; got != want {
		t.Fatalf("string: got %q, want %q", got, want)
	}
}
