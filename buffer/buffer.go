package buffer

// Buffer is the text of the line being edited.
//
// The zero value is an empty buffer ready for use.
type Buffer struct {
	runes   []rune
	version uint64
}

func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.runes) }

func (b *Buffer) Len() int { return len(b.runes) }

// Version increments on every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

// RuneAt returns the rune at i, which must be in [0, Len).
func (b *Buffer) RuneAt(i int) (rune, error) {
	if i < 0 || i >= len(b.runes) {
		return 0, &RangeError{Op: "rune at", Index: i, Len: len(b.runes)}
	}
	return b.runes[i], nil
}

// Slice returns the text in [start, end).
func (b *Buffer) Slice(start, end int) (string, error) {
	if err := checkRange("slice", start, end, len(b.runes)); err != nil {
		return "", err
	}
	return string(b.runes[start:end]), nil
}

// Tail returns the text from off to the end of the buffer.
func (b *Buffer) Tail(off int) (string, error) {
	return b.Slice(off, len(b.runes))
}

// CommonPrefixLen returns how many leading runes of the buffer and s agree.
func (b *Buffer) CommonPrefixLen(s string) int {
	other := []rune(s)
	n := minInt(len(b.runes), len(other))
	i := 0
	for i < n && b.runes[i] == other[i] {
		i++
	}
	return i
}
