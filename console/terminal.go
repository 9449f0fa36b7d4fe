package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/keyline/internal/log"
)

// TerminalOptions configures NewTerminal.
type TerminalOptions struct {
	// Fd is queried for the terminal width. Negative skips the query.
	Fd int
	// Width is used when Fd is not a terminal. Default: 80.
	Width int
}

// Terminal is a Console over a real terminal stream.
//
// It never asks the terminal where the cursor is: positions are tracked
// relative to the cell the cursor occupied when the Terminal was created,
// which is (0, 0), and every move is emitted as a relative ANSI sequence.
// That cell must be the first column of a row; call CarriageReturn first
// when the stream's cursor may sit mid-row.
type Terminal struct {
	w     *stickyWriter
	out   *termenv.Output
	width int
	left  int
	top   int
}

func NewTerminal(w io.Writer, opt TerminalOptions) *Terminal {
	sw := &stickyWriter{w: w}
	return &Terminal{
		w:     sw,
		out:   termenv.NewOutput(sw),
		width: terminalWidth(opt),
	}
}

func terminalWidth(opt TerminalOptions) int {
	if opt.Fd >= 0 && term.IsTerminal(opt.Fd) {
		if w, _, err := term.GetSize(opt.Fd); err == nil && w > 0 {
			return w
		}
	}
	return normalizeWidth(opt.Width)
}

func (t *Terminal) CursorLeft() int { return t.left }

func (t *Terminal) CursorTop() int { return t.top }

func (t *Terminal) BufferWidth() int { return t.width }

// SetCursorPosition panics when left is outside [0, width) or top is
// negative.
func (t *Terminal) SetCursorPosition(left, top int) {
	if left < 0 || left >= t.width || top < 0 {
		panic(fmt.Sprintf("console: cursor position (%d, %d) outside %d-column terminal", left, top, t.width))
	}
	switch dy := top - t.top; {
	case dy < 0:
		t.out.CursorUp(-dy)
	case dy > 0:
		t.out.CursorDown(dy)
	}
	switch dx := left - t.left; {
	case dx < 0:
		t.out.CursorBack(-dx)
	case dx > 0:
		t.out.CursorForward(dx)
	}
	t.left, t.top = left, top
}

// Write writes text one column per rune. Filling the last column emits a
// CRLF so the cursor ends on the next row, as Screen does.
func (t *Terminal) Write(text string) {
	if text == "" {
		return
	}
	var sb strings.Builder
	for _, r := range text {
		sb.WriteRune(r)
		t.left++
		if t.left == t.width {
			sb.WriteString("\r\n")
			t.left = 0
			t.top++
		}
	}
	_, _ = io.WriteString(t.w, sb.String())
}

// WritePrompt writes a possibly styled prompt, advancing by its display
// width rather than its rune count.
func (t *Terminal) WritePrompt(p string) {
	if p == "" {
		return
	}
	_, _ = io.WriteString(t.w, p)
	next := t.left + ansi.StringWidth(p)
	t.top += next / t.width
	t.left = next % t.width
	if t.left == 0 && next > 0 {
		_, _ = io.WriteString(t.w, "\r\n")
	}
}

// Newline moves to column 0 of the row below the cursor.
func (t *Terminal) Newline() {
	_, _ = io.WriteString(t.w, "\r\n")
	t.left = 0
	t.top++
}

// CarriageReturn moves to column 0 of the current row.
func (t *Terminal) CarriageReturn() {
	_, _ = io.WriteString(t.w, "\r")
	t.left = 0
}

// Err reports the first write error, if any. Once set, later writes are
// discarded.
func (t *Terminal) Err() error { return t.w.err }

type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		log.ErrorErr(log.CatConsole, "Terminal write failed", err, "bytes", len(p))
		s.err = err
	}
	return n, err
}
