package editor

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifies a physical key independent of what it types.
type Key uint8

const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyInsert

	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEscape:    "esc",
	KeyInsert:    "insert",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

// String returns the bubbletea-style key name ("a", "left", "f5").
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// KeyForRune returns the key that types r without modifiers other than
// shift, or KeyNone for punctuation and non-ASCII runes.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	case r == ' ':
		return KeySpace
	default:
		return KeyNone
	}
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// ModNone is the empty modifier set; its binding table is the default one.
const ModNone Modifiers = 0

// String renders the set as a chord prefix ("ctrl+alt+").
func (m Modifiers) String() string {
	var sb strings.Builder
	if m&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if m&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if m&ModShift != 0 {
		sb.WriteString("shift+")
	}
	return sb.String()
}

// Keystroke is one key event: a key code, the modifiers held with it, and
// the character it types (0 when it types none).
type Keystroke struct {
	Key  Key
	Mod  Modifiers
	Char rune
}

// Rune returns the keystroke that types r. Upper-case ASCII letters carry
// ModShift.
func Rune(r rune) Keystroke {
	ks := Keystroke{Key: KeyForRune(r), Char: r}
	if unicode.IsUpper(r) && ks.Key != KeyNone {
		ks.Mod = ModShift
	}
	return ks
}

// Press returns the keystroke for k with the given modifiers. Char is the
// control code a terminal would deliver for it, where one exists.
func Press(k Key, mod Modifiers) Keystroke {
	ks := Keystroke{Key: k, Mod: mod}
	switch {
	case k >= KeyA && k <= KeyZ:
		ks.Char = rune('a' + int(k-KeyA))
		if mod&ModCtrl != 0 {
			ks.Char = rune(1 + int(k-KeyA))
		} else if mod&ModShift != 0 {
			ks.Char = unicode.ToUpper(ks.Char)
		}
	case k >= Key0 && k <= Key9:
		ks.Char = rune('0' + int(k-Key0))
	case k == KeySpace:
		ks.Char = ' '
	case k == KeyTab:
		ks.Char = '\t'
	case k == KeyEnter:
		ks.Char = '\r'
	case k == KeyBackspace:
		ks.Char = '\b'
	case k == KeyEscape:
		ks.Char = 0x1b
	}
	return ks
}

func (ks Keystroke) String() string {
	if ks.Key == KeyNone {
		if ks.Char != 0 {
			return ks.Mod.String() + string(ks.Char)
		}
		return ks.Mod.String() + "none"
	}
	return ks.Mod.String() + ks.Key.String()
}
