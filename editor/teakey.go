package editor

import tea "github.com/charmbracelet/bubbletea"

var teaKeys = map[tea.KeyType]Keystroke{
	tea.KeySpace:          {Key: KeySpace, Char: ' '},
	tea.KeyTab:            {Key: KeyTab, Char: '\t'},
	tea.KeyShiftTab:       {Key: KeyTab, Mod: ModShift},
	tea.KeyEnter:          {Key: KeyEnter, Char: '\r'},
	tea.KeyEsc:            {Key: KeyEscape, Char: 0x1b},
	tea.KeyBackspace:      {Key: KeyBackspace, Char: '\b'},
	tea.KeyDelete:         {Key: KeyDelete},
	tea.KeyInsert:         {Key: KeyInsert},
	tea.KeyLeft:           {Key: KeyLeft},
	tea.KeyRight:          {Key: KeyRight},
	tea.KeyUp:             {Key: KeyUp},
	tea.KeyDown:           {Key: KeyDown},
	tea.KeyHome:           {Key: KeyHome},
	tea.KeyEnd:            {Key: KeyEnd},
	tea.KeyPgUp:           {Key: KeyPageUp},
	tea.KeyPgDown:         {Key: KeyPageDown},
	tea.KeyCtrlLeft:       {Key: KeyLeft, Mod: ModCtrl},
	tea.KeyCtrlRight:      {Key: KeyRight, Mod: ModCtrl},
	tea.KeyCtrlUp:         {Key: KeyUp, Mod: ModCtrl},
	tea.KeyCtrlDown:       {Key: KeyDown, Mod: ModCtrl},
	tea.KeyCtrlHome:       {Key: KeyHome, Mod: ModCtrl},
	tea.KeyCtrlEnd:        {Key: KeyEnd, Mod: ModCtrl},
	tea.KeyCtrlPgUp:       {Key: KeyPageUp, Mod: ModCtrl},
	tea.KeyCtrlPgDown:     {Key: KeyPageDown, Mod: ModCtrl},
	tea.KeyShiftLeft:      {Key: KeyLeft, Mod: ModShift},
	tea.KeyShiftRight:     {Key: KeyRight, Mod: ModShift},
	tea.KeyShiftUp:        {Key: KeyUp, Mod: ModShift},
	tea.KeyShiftDown:      {Key: KeyDown, Mod: ModShift},
	tea.KeyShiftHome:      {Key: KeyHome, Mod: ModShift},
	tea.KeyShiftEnd:       {Key: KeyEnd, Mod: ModShift},
	tea.KeyCtrlShiftLeft:  {Key: KeyLeft, Mod: ModCtrl | ModShift},
	tea.KeyCtrlShiftRight: {Key: KeyRight, Mod: ModCtrl | ModShift},
	tea.KeyCtrlShiftUp:    {Key: KeyUp, Mod: ModCtrl | ModShift},
	tea.KeyCtrlShiftDown:  {Key: KeyDown, Mod: ModCtrl | ModShift},
	tea.KeyCtrlShiftHome:  {Key: KeyHome, Mod: ModCtrl | ModShift},
	tea.KeyCtrlShiftEnd:   {Key: KeyEnd, Mod: ModCtrl | ModShift},
	tea.KeyF1:             {Key: KeyF1},
	tea.KeyF2:             {Key: KeyF2},
	tea.KeyF3:             {Key: KeyF3},
	tea.KeyF4:             {Key: KeyF4},
	tea.KeyF5:             {Key: KeyF5},
	tea.KeyF6:             {Key: KeyF6},
	tea.KeyF7:             {Key: KeyF7},
	tea.KeyF8:             {Key: KeyF8},
	tea.KeyF9:             {Key: KeyF9},
	tea.KeyF10:            {Key: KeyF10},
	tea.KeyF11:            {Key: KeyF11},
	tea.KeyF12:            {Key: KeyF12},
}

// FromKeyMsg converts a bubbletea key message. ok is false for keys with no
// Keystroke equivalent and for multi-rune messages such as pastes; use
// Keystrokes for those.
func FromKeyMsg(msg tea.KeyMsg) (Keystroke, bool) {
	var (
		ks Keystroke
		ok bool
	)
	switch {
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return Keystroke{}, false
		}
		ks, ok = Rune(msg.Runes[0]), true
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ &&
		msg.Type != tea.KeyTab && msg.Type != tea.KeyEnter:
		ks, ok = Press(KeyA+Key(msg.Type-tea.KeyCtrlA), ModCtrl), true
	default:
		ks, ok = teaKeys[msg.Type]
	}
	if !ok {
		return Keystroke{}, false
	}
	if msg.Alt {
		ks.Mod |= ModAlt
	}
	return ks, true
}

// Keystrokes converts msg into the keystrokes it stands for. A paste becomes
// one keystroke per rune.
func Keystrokes(msg tea.KeyMsg) []Keystroke {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		out := make([]Keystroke, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, Rune(r))
		}
		return out
	}
	if ks, ok := FromKeyMsg(msg); ok {
		return []Keystroke{ks}
	}
	return nil
}
