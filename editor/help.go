package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpMap is the key help for a set of bindings. It satisfies
// bubbles/help.KeyMap.
type HelpMap struct {
	bindings map[Action]key.Binding
}

var helpGroups = [][]Action{
	{ActionLeft, ActionRight, ActionWordLeft, ActionWordRight, ActionStart, ActionEnd},
	{ActionBackspace, ActionDelete, ActionCutWord, ActionTranspose, ActionClear, ActionClearToStart, ActionClearToEnd, ActionUndo, ActionRedo},
	{ActionHistoryPrev, ActionHistoryNext, ActionComplete, ActionCompletePrev},
}

var shortHelp = []Action{ActionComplete, ActionHistoryPrev, ActionWordLeft, ActionCutWord, ActionClear}

var modOrder = []Modifiers{ModNone, ModCtrl, ModAlt, ModShift}

// Help groups the chords bound to each action into one key.Binding.
func (b Bindings) Help() HelpMap {
	chords := map[Action][]string{}
	for _, mod := range b.mods() {
		table := b[mod]
		keys := make([]Key, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			a := table[k]
			chords[a] = append(chords[a], Keystroke{Key: k, Mod: mod}.String())
		}
	}

	hm := HelpMap{bindings: make(map[Action]key.Binding, len(chords))}
	for a, cs := range chords {
		shown := cs
		if len(shown) > 2 {
			shown = shown[:2]
		}
		hm.bindings[a] = key.NewBinding(
			key.WithKeys(cs...),
			key.WithHelp(strings.Join(shown, "/"), a.String()),
		)
	}
	return hm
}

// mods lists the modifier sets with tables, common ones first.
func (b Bindings) mods() []Modifiers {
	out := make([]Modifiers, 0, len(b))
	seen := map[Modifiers]bool{}
	for _, m := range modOrder {
		if _, ok := b[m]; ok {
			out = append(out, m)
			seen[m] = true
		}
	}
	var rest []Modifiers
	for m := range b {
		if !seen[m] {
			rest = append(rest, m)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// Binding returns the help binding for a, if any chord triggers it.
func (h HelpMap) Binding(a Action) (key.Binding, bool) {
	kb, ok := h.bindings[a]
	return kb, ok
}

func (h HelpMap) ShortHelp() []key.Binding {
	return h.collect(shortHelp)
}

func (h HelpMap) FullHelp() [][]key.Binding {
	out := make([][]key.Binding, 0, len(helpGroups))
	for _, g := range helpGroups {
		if col := h.collect(g); len(col) > 0 {
			out = append(out, col)
		}
	}
	return out
}

func (h HelpMap) collect(actions []Action) []key.Binding {
	var out []key.Binding
	for _, a := range actions {
		if kb, ok := h.bindings[a]; ok {
			out = append(out, kb)
		}
	}
	return out
}
