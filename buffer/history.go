package buffer

// Snapshot is a line and its cursor at one point in time.
type Snapshot struct {
	Text   string
	Cursor int
}

// DefaultUndoLimit bounds the undo stack when NewUndoHistory gets limit <= 0.
const DefaultUndoLimit = 100

// UndoHistory keeps bounded undo and redo stacks of snapshots. Recording a
// new snapshot drops the redo stack.
type UndoHistory struct {
	limit int
	undo  []Snapshot
	redo  []Snapshot
}

func NewUndoHistory(limit int) *UndoHistory {
	if limit <= 0 {
		limit = DefaultUndoLimit
	}
	return &UndoHistory{limit: limit}
}

// Record pushes prev, the state before an edit.
func (h *UndoHistory) Record(prev Snapshot) {
	h.undo = push(h.undo, prev, h.limit)
	h.redo = nil
}

func (h *UndoHistory) CanUndo() bool { return len(h.undo) > 0 }

func (h *UndoHistory) CanRedo() bool { return len(h.redo) > 0 }

// Undo pops the last recorded state and saves cur for Redo.
func (h *UndoHistory) Undo(cur Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, cur)
	return prev, true
}

// Redo reverses the last Undo and saves cur for Undo.
func (h *UndoHistory) Redo(cur Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = push(h.undo, cur, h.limit)
	return next, true
}

func push(stack []Snapshot, s Snapshot, limit int) []Snapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}
