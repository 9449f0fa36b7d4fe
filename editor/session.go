package editor

import (
	"github.com/google/uuid"

	"github.com/iw2rmb/keyline/buffer"
	"github.com/iw2rmb/keyline/console"
	"github.com/iw2rmb/keyline/internal/log"
)

// Session edits one line on a console. It is not safe for concurrent use.
type Session struct {
	id  string
	cfg Config

	buf    *buffer.Buffer
	cursor *Tracker

	historyIndex int
	completion   *completionState
	undo         *buffer.UndoHistory
}

// New starts an empty line at the console's current cursor position.
func New(con console.Console, cfg Config) *Session {
	cfg = normalizeConfig(cfg)
	buf := buffer.New("")
	s := &Session{
		id:           uuid.NewString(),
		cfg:          cfg,
		buf:          buf,
		cursor:       NewTracker(con, buf),
		historyIndex: cfg.History.Len(),
		undo:         buffer.NewUndoHistory(cfg.UndoLimit),
	}
	left, top := s.cursor.Origin()
	log.Debug(log.CatEditor, "Session started", "session", s.id, "left", left, "top", top,
		"width", con.BufferWidth(), "history", s.historyIndex)
	return s
}

// ID identifies the session in log output.
func (s *Session) ID() string { return s.id }

// Text returns the current line.
func (s *Session) Text() string { return s.buf.Text() }

// Cursor returns the logical cursor offset.
func (s *Session) Cursor() int { return s.cursor.Offset() }

// Tracker exposes the cursor tracker, mainly for hosts that draw around the
// edited line.
func (s *Session) Tracker() *Tracker { return s.cursor }

// HistoryIndex is the selected history entry; History.Len() means none.
func (s *Session) HistoryIndex() int { return s.historyIndex }

// Completing reports whether a completion cycle is active.
func (s *Session) Completing() bool { return s.completion != nil }

// CompletionIndex returns the selected candidate, or -1 outside completion
// mode.
func (s *Session) CompletionIndex() int {
	if s.completion == nil {
		return -1
	}
	return s.completion.index
}

// Help returns the key help for the bindings this session resolves keys
// with.
func (s *Session) Help() HelpMap { return s.cfg.Bindings.Help() }

// Relayout redraws the line on con starting at con's cursor and moves the
// session onto it. Text, cursor, history position, completion and undo
// state carry over; con usually differs from the old console in width.
func (s *Session) Relayout(con console.Console) {
	off := s.cursor.Offset()
	s.cursor = NewTracker(con, s.buf)
	s.cursor.Write(s.buf.Text())
	if err := s.cursor.SetPosition(off); err != nil {
		log.ErrorErr(log.CatEditor, "Cursor invariant violated", err, "session", s.id, "action", "relayout")
		panic(err)
	}
	left, top := s.cursor.Origin()
	log.Debug(log.CatEditor, "Session relaid out", "session", s.id, "left", left, "top", top,
		"width", con.BufferWidth())
}

// Handle applies exactly one action for ks.
//
// A range violation inside an action is a defect in the editor, not in the
// input: Handle logs it and panics with the *buffer.RangeError.
func (s *Session) Handle(ks Keystroke) {
	a := s.cfg.Bindings.Resolve(ks)
	log.Debug(log.CatEditor, "Keystroke", "session", s.id, "key", ks, "action", a)
	s.perform(a, ks.Char)
}

// Do applies a directly, bypassing key resolution. ActionInsert is a no-op
// here; use Handle with Rune to type characters.
func (s *Session) Do(a Action) {
	s.perform(a, 0)
}

func (s *Session) perform(a Action, ch rune) {
	if s.completion != nil && !a.Cycles() {
		s.resetCompletion()
	}
	before := s.snapshot()
	version := s.buf.Version()
	if err := s.apply(a, ch); err != nil {
		log.ErrorErr(log.CatEditor, "Cursor invariant violated", err, "session", s.id, "action", a,
			"cursor", s.cursor.Offset(), "len", s.buf.Len())
		panic(err)
	}
	if a != ActionUndo && a != ActionRedo && s.buf.Version() != version {
		s.undo.Record(before)
	}
}

func (s *Session) apply(a Action, ch rune) error {
	switch a {
	case ActionInsert:
		return s.insertRune(ch)
	case ActionBackspace:
		return s.backspace()
	case ActionDelete:
		return s.deleteForward()
	case ActionLeft:
		return s.moveLeft()
	case ActionRight:
		return s.moveRight()
	case ActionWordLeft:
		return s.moveWordLeft()
	case ActionWordRight:
		return s.moveWordRight()
	case ActionStart:
		return s.cursor.SetPosition(0)
	case ActionEnd:
		return s.cursor.SetPosition(s.buf.Len())
	case ActionClear:
		return s.clear()
	case ActionClearToStart:
		return s.clearToStart()
	case ActionClearToEnd:
		return s.clearToEnd()
	case ActionCutWord:
		return s.cutWord()
	case ActionTranspose:
		return s.transpose()
	case ActionHistoryPrev:
		return s.historyPrev()
	case ActionHistoryNext:
		return s.historyNext()
	case ActionComplete:
		return s.complete()
	case ActionCompletePrev:
		return s.cycleCompletion(-1)
	case ActionUndo:
		return s.restore(s.undo.Undo)
	case ActionRedo:
		return s.restore(s.undo.Redo)
	default:
		return nil
	}
}
