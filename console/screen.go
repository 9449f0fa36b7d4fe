package console

import (
	"fmt"
	"strings"
)

// Screen is an in-memory Console. Rows are allocated on demand and blank
// cells hold spaces.
type Screen struct {
	width int
	rows  [][]rune
	left  int
	top   int
}

// NewScreen returns an empty screen of the given width (80 when width <= 0).
func NewScreen(width int) *Screen {
	return &Screen{width: normalizeWidth(width)}
}

func (s *Screen) CursorLeft() int { return s.left }

func (s *Screen) CursorTop() int { return s.top }

func (s *Screen) BufferWidth() int { return s.width }

// SetCursorPosition panics when left is outside [0, width) or top is
// negative.
func (s *Screen) SetCursorPosition(left, top int) {
	if left < 0 || left >= s.width || top < 0 {
		panic(fmt.Sprintf("console: cursor position (%d, %d) outside %d-column screen", left, top, s.width))
	}
	s.left, s.top = left, top
}

func (s *Screen) Write(text string) {
	for _, r := range text {
		s.ensureRow(s.top)
		s.rows[s.top][s.left] = r
		s.left++
		if s.left == s.width {
			s.left = 0
			s.top++
		}
	}
}

// Line returns row with trailing blanks trimmed.
func (s *Screen) Line(row int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	return strings.TrimRight(string(s.rows[row]), " ")
}

// Lines returns every allocated row with trailing blanks trimmed.
func (s *Screen) Lines() []string {
	out := make([]string, len(s.rows))
	for i := range s.rows {
		out[i] = s.Line(i)
	}
	return out
}

// Cell returns the rune at (left, top), or a space for unallocated cells.
func (s *Screen) Cell(left, top int) rune {
	if top < 0 || top >= len(s.rows) || left < 0 || left >= s.width {
		return ' '
	}
	return s.rows[top][left]
}

// Height is the number of allocated rows, at least enough to hold the cursor.
func (s *Screen) Height() int {
	if s.top >= len(s.rows) {
		return s.top + 1
	}
	return len(s.rows)
}

// String joins the rows with newlines, with trailing empty rows dropped.
func (s *Screen) String() string {
	return strings.TrimRight(strings.Join(s.Lines(), "\n"), "\n")
}

func (s *Screen) ensureRow(top int) {
	for len(s.rows) <= top {
		s.rows = append(s.rows, []rune(strings.Repeat(" ", s.width)))
	}
}
