package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/keyline/buffer"
	"github.com/iw2rmb/keyline/internal/log"
)

func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// repaint rewrites the buffer from off to its end, then erase blank cells,
// and parks the cursor at final.
func (s *Session) repaint(off, erase, final int) error {
	tail, err := s.buf.Tail(off)
	if err != nil {
		return err
	}
	if err := s.cursor.SetPosition(off); err != nil {
		return err
	}
	s.cursor.Write(tail + blanks(erase))
	return s.cursor.SetPosition(final)
}

func (s *Session) insertRune(r rune) error {
	if r == 0 || unicode.IsControl(r) {
		log.Debug(log.CatEditor, "Dropped control character", "session", s.id, "rune", r)
		return nil
	}
	off := s.cursor.Offset()
	if err := s.buf.InsertRune(off, r); err != nil {
		return err
	}
	if off == s.buf.Len()-1 {
		s.cursor.Write(string(r))
		return nil
	}
	return s.repaint(off, 0, off+1)
}

func (s *Session) backspace() error {
	off := s.cursor.Offset()
	if off == 0 {
		return nil
	}
	if _, err := s.buf.Delete(off-1, off); err != nil {
		return err
	}
	return s.repaint(off-1, 1, off-1)
}

func (s *Session) deleteForward() error {
	off := s.cursor.Offset()
	if off == s.buf.Len() {
		return nil
	}
	if _, err := s.buf.Delete(off, off+1); err != nil {
		return err
	}
	return s.repaint(off, 1, off)
}

func (s *Session) moveLeft() error {
	if off := s.cursor.Offset(); off > 0 {
		return s.cursor.SetPosition(off - 1)
	}
	return nil
}

func (s *Session) moveRight() error {
	if off := s.cursor.Offset(); off < s.buf.Len() {
		return s.cursor.SetPosition(off + 1)
	}
	return nil
}

func (s *Session) moveWordLeft() error {
	to, err := s.buf.WordStart(s.cursor.Offset(), s.cfg.WordSeparators)
	if err != nil {
		return err
	}
	return s.cursor.SetPosition(to)
}

func (s *Session) moveWordRight() error {
	to, err := s.buf.WordEnd(s.cursor.Offset(), s.cfg.WordSeparators)
	if err != nil {
		return err
	}
	return s.cursor.SetPosition(to)
}

func (s *Session) clear() error {
	n := s.buf.Len()
	if err := s.cursor.SetPosition(0); err != nil {
		return err
	}
	s.cursor.Write(blanks(n))
	s.buf.Reset()
	return s.cursor.SetPosition(0)
}

func (s *Session) clearToStart() error {
	off := s.cursor.Offset()
	if off == 0 {
		return nil
	}
	if _, err := s.buf.Delete(0, off); err != nil {
		return err
	}
	return s.repaint(0, off, 0)
}

func (s *Session) clearToEnd() error {
	off, n := s.cursor.Offset(), s.buf.Len()
	if off == n {
		return nil
	}
	if _, err := s.buf.Delete(off, n); err != nil {
		return err
	}
	s.cursor.Write(blanks(n - off))
	return s.cursor.SetPosition(off)
}

func (s *Session) cutWord() error {
	off := s.cursor.Offset()
	if off == 0 {
		return nil
	}
	start, err := s.buf.WordStart(off, s.cfg.WordSeparators)
	if err != nil {
		return err
	}
	if _, err := s.buf.Delete(start, off); err != nil {
		return err
	}
	return s.repaint(start, off-start, start)
}

// transpose swaps the runes either side of the cursor, or the last two
// when the cursor is at the end, and leaves the cursor after the pair.
func (s *Session) transpose() error {
	off, n := s.cursor.Offset(), s.buf.Len()
	if n < 2 || off == 0 {
		return nil
	}
	i := off - 1
	if off == n {
		i = n - 2
	}
	if err := s.buf.Swap(i, i+1); err != nil {
		return err
	}
	pair, err := s.buf.Slice(i, i+2)
	if err != nil {
		return err
	}
	if err := s.cursor.SetPosition(i); err != nil {
		return err
	}
	s.cursor.Write(pair)
	return nil
}

// replace swaps the whole line for text, repainting from the first rune
// that differs and blanking any leftover cells. The cursor ends after text.
func (s *Session) replace(text string) error {
	keep := s.buf.CommonPrefixLen(text)
	old := s.buf.Len()
	if err := s.cursor.SetPosition(keep); err != nil {
		return err
	}
	s.buf.Set(text)
	rest, err := s.buf.Tail(keep)
	if err != nil {
		return err
	}
	n := utf8.RuneCountInString(text)
	s.cursor.Write(rest + blanks(old-n))
	return s.cursor.SetPosition(n)
}

func (s *Session) snapshot() buffer.Snapshot {
	return buffer.Snapshot{Text: s.buf.Text(), Cursor: s.cursor.Offset()}
}

// restore repaints the line from the snapshot pop returns, if any.
func (s *Session) restore(pop func(buffer.Snapshot) (buffer.Snapshot, bool)) error {
	snap, ok := pop(s.snapshot())
	if !ok {
		return nil
	}
	if err := s.replace(snap.Text); err != nil {
		return err
	}
	return s.cursor.SetPosition(snap.Cursor)
}
