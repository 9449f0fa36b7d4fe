package buffer

// Insert inserts s at offset at.
func (b *Buffer) Insert(at int, s string) error {
	if err := checkOffset("insert", at, len(b.runes)); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	ins := []rune(s)
	next := make([]rune, 0, len(b.runes)+len(ins))
	next = append(next, b.runes[:at]...)
	next = append(next, ins...)
	next = append(next, b.runes[at:]...)
	b.runes = next
	b.version++
	return nil
}

// InsertRune inserts a single rune at offset at.
func (b *Buffer) InsertRune(at int, r rune) error {
	return b.Insert(at, string(r))
}

// Delete removes the runes in [start, end) and returns them.
func (b *Buffer) Delete(start, end int) (string, error) {
	if err := checkRange("delete", start, end, len(b.runes)); err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}
	removed := string(b.runes[start:end])
	b.runes = append(b.runes[:start], b.runes[end:]...)
	b.version++
	return removed, nil
}

// Swap exchanges the runes at i and j, both in [0, Len).
func (b *Buffer) Swap(i, j int) error {
	n := len(b.runes)
	if i < 0 || i >= n {
		return &RangeError{Op: "swap", Index: i, Len: n}
	}
	if j < 0 || j >= n {
		return &RangeError{Op: "swap", Index: j, Len: n}
	}
	if b.runes[i] == b.runes[j] {
		return nil
	}
	b.runes[i], b.runes[j] = b.runes[j], b.runes[i]
	b.version++
	return nil
}

// Set replaces the whole content with s.
func (b *Buffer) Set(s string) {
	if string(b.runes) == s {
		return
	}
	b.runes = []rune(s)
	b.version++
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	if len(b.runes) == 0 {
		return
	}
	b.runes = nil
	b.version++
}
