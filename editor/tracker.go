package editor

import (
	"unicode/utf8"

	"github.com/iw2rmb/keyline/buffer"
	"github.com/iw2rmb/keyline/console"
)

// Tracker keeps the console cursor consistent with a logical offset into a
// buffer.
//
// Offset 0 sits at the origin: the console cursor position when the Tracker
// was created. Offset n sits n cells further along, wrapping at the
// console width, so its row is originRow + (originCol+n)/width and its
// column is (originCol+n)%width.
type Tracker struct {
	con       console.Console
	buf       *buffer.Buffer
	originCol int
	originRow int
	offset    int
}

func NewTracker(con console.Console, buf *buffer.Buffer) *Tracker {
	return &Tracker{
		con:       con,
		buf:       buf,
		originCol: con.CursorLeft(),
		originRow: con.CursorTop(),
	}
}

// Offset is the logical cursor offset.
func (t *Tracker) Offset() int { return t.offset }

// Origin returns the console cell of offset 0.
func (t *Tracker) Origin() (left, top int) { return t.originCol, t.originRow }

// Locate returns the console cell that offset off maps to.
func (t *Tracker) Locate(off int) (left, top int) {
	w := t.con.BufferWidth()
	abs := t.originCol + off
	return abs % w, t.originRow + abs/w
}

// SetPosition moves the cursor to off with a single console call. off must
// be within [0, buffer length]; otherwise a *buffer.RangeError is returned
// and nothing moves.
func (t *Tracker) SetPosition(off int) error {
	if n := t.buf.Len(); off < 0 || off > n {
		return &buffer.RangeError{Op: "set cursor", Index: off, Len: n}
	}
	w := t.con.BufferWidth()
	dest := t.originCol + off
	cur := t.originCol + t.offset
	top := t.con.CursorTop() + dest/w - cur/w
	t.con.SetCursorPosition(dest%w, top)
	t.offset = off
	return nil
}

// Write writes s at the cursor and advances the offset by its rune count.
// The offset may run past the buffer end while blanking vacated cells;
// callers finish with SetPosition.
func (t *Tracker) Write(s string) {
	if s == "" {
		return
	}
	t.con.Write(s)
	t.offset += utf8.RuneCountInString(s)
}
