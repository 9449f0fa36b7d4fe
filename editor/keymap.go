package editor

// Action is one editing operation a keystroke can trigger.
type Action uint8

const (
	// ActionInsert types the keystroke's character. It is the fallback for
	// keys with no binding.
	ActionInsert Action = iota
	ActionBackspace
	ActionDelete
	ActionLeft
	ActionRight
	ActionWordLeft
	ActionWordRight
	ActionStart
	ActionEnd
	ActionClear
	ActionClearToStart
	ActionClearToEnd
	ActionCutWord
	ActionTranspose
	ActionHistoryPrev
	ActionHistoryNext
	// ActionComplete starts completion, or cycles forward when active.
	ActionComplete
	// ActionCompletePrev cycles backward; no-op outside completion mode.
	ActionCompletePrev
	ActionUndo
	ActionRedo
)

var actionNames = [...]string{
	ActionInsert:       "insert",
	ActionBackspace:    "delete left",
	ActionDelete:       "delete right",
	ActionLeft:         "left",
	ActionRight:        "right",
	ActionWordLeft:     "word left",
	ActionWordRight:    "word right",
	ActionStart:        "line start",
	ActionEnd:          "line end",
	ActionClear:        "clear line",
	ActionClearToStart: "clear to start",
	ActionClearToEnd:   "clear to end",
	ActionCutWord:      "cut word",
	ActionTranspose:    "transpose",
	ActionHistoryPrev:  "history prev",
	ActionHistoryNext:  "history next",
	ActionComplete:     "complete",
	ActionCompletePrev: "complete prev",
	ActionUndo:         "undo",
	ActionRedo:         "redo",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Cycles reports whether a keeps completion mode alive.
func (a Action) Cycles() bool {
	return a == ActionComplete || a == ActionCompletePrev
}

// Bindings maps a modifier set to that set's key table. The ModNone table
// is the default: it is used for any modifier set without its own table.
type Bindings map[Modifiers]map[Key]Action

// DefaultBindings returns the emacs-style readline bindings.
func DefaultBindings() Bindings {
	return Bindings{
		ModNone: {
			KeyLeft:      ActionLeft,
			KeyRight:     ActionRight,
			KeyHome:      ActionStart,
			KeyEnd:       ActionEnd,
			KeyBackspace: ActionBackspace,
			KeyDelete:    ActionDelete,
			KeyEscape:    ActionClear,
			KeyUp:        ActionHistoryPrev,
			KeyDown:      ActionHistoryNext,
			KeyTab:       ActionComplete,
		},
		ModCtrl: {
			KeyA:     ActionStart,
			KeyB:     ActionLeft,
			KeyE:     ActionEnd,
			KeyF:     ActionRight,
			KeyH:     ActionBackspace,
			KeyD:     ActionDelete,
			KeyL:     ActionClear,
			KeyP:     ActionHistoryPrev,
			KeyN:     ActionHistoryNext,
			KeyU:     ActionClearToStart,
			KeyK:     ActionClearToEnd,
			KeyW:     ActionCutWord,
			KeyT:     ActionTranspose,
			KeyZ:     ActionUndo,
			KeyY:     ActionRedo,
			KeyLeft:  ActionWordLeft,
			KeyRight: ActionWordRight,
		},
		ModAlt: {
			KeyB:         ActionWordLeft,
			KeyF:         ActionWordRight,
			KeyLeft:      ActionWordLeft,
			KeyRight:     ActionWordRight,
			KeyBackspace: ActionCutWord,
		},
		ModShift: {
			KeyTab: ActionCompletePrev,
		},
	}
}

// Resolve picks the action for ks. An exact modifier-set table wins over
// the default table; a key absent from the chosen table inserts its
// character.
func (b Bindings) Resolve(ks Keystroke) Action {
	table, ok := b[ks.Mod]
	if !ok {
		table = b[ModNone]
	}
	if a, ok := table[ks.Key]; ok && ks.Key != KeyNone {
		return a
	}
	return ActionInsert
}

func (b Bindings) clone() Bindings {
	out := make(Bindings, len(b))
	for mod, table := range b {
		t := make(map[Key]Action, len(table))
		for k, a := range table {
			t[k] = a
		}
		out[mod] = t
	}
	return out
}

func normalizeBindings(b Bindings) Bindings {
	if len(b) == 0 {
		return DefaultBindings()
	}
	out := b.clone()
	if out[ModNone] == nil {
		out[ModNone] = map[Key]Action{}
	}
	return out
}
