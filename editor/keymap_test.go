package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindings_Resolve(t *testing.T) {
	b := DefaultBindings()
	cases := []struct {
		name string
		ks   Keystroke
		want Action
	}{
		{"plain letter", Rune('q'), ActionInsert},
		{"shifted letter", Rune('Q'), ActionInsert},
		{"ctrl table", Press(KeyW, ModCtrl), ActionCutWord},
		{"ctrl key without binding", Press(KeyC, ModCtrl), ActionInsert},
		{"alt table", Press(KeyB, ModAlt), ActionWordLeft},
		{"shift table", Press(KeyTab, ModShift), ActionCompletePrev},
		{"shift falls through to insert", Press(KeyLeft, ModShift), ActionInsert},
		{"unknown modifier set uses default table", Press(KeyLeft, ModCtrl|ModShift), ActionLeft},
		{"none key", Keystroke{Char: 'x'}, ActionInsert},
		{"escape", Press(KeyEscape, ModNone), ActionClear},
		{"ctrl+l", Press(KeyL, ModCtrl), ActionClear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, b.Resolve(tc.ks))
		})
	}
}

func TestDefaultBindings_CoverEveryAction(t *testing.T) {
	bound := map[Action]bool{}
	for _, table := range DefaultBindings() {
		for _, a := range table {
			bound[a] = true
		}
	}
	for a := ActionBackspace; a <= ActionRedo; a++ {
		require.True(t, bound[a], "no default chord for %s", a)
	}
}

func TestNormalizeBindings(t *testing.T) {
	require.Equal(t, DefaultBindings(), normalizeBindings(nil))

	in := Bindings{ModCtrl: {KeyA: ActionEnd}}
	out := normalizeBindings(in)
	require.NotNil(t, out[ModNone])
	require.Nil(t, in[ModNone], "input is not modified")

	out[ModCtrl][KeyA] = ActionStart
	require.Equal(t, ActionEnd, in[ModCtrl][KeyA], "tables are copied")
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "cut word", ActionCutWord.String())
	require.Equal(t, "unknown", Action(200).String())
	require.True(t, ActionComplete.Cycles())
	require.True(t, ActionCompletePrev.Cycles())
	require.False(t, ActionInsert.Cycles())
}
