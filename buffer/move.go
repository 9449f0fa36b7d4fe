package buffer

// Word boundary rules:
// - leftward: skip separators, then skip non-separators
// - rightward: skip separators, then skip non-separators
// Both stop at the buffer edges.

// WordStart returns the offset of the start of the word left of off. It lands
// just past the separator run that precedes the word.
func (b *Buffer) WordStart(off int, seps Separators) (int, error) {
	if err := checkOffset("word start", off, len(b.runes)); err != nil {
		return 0, err
	}
	i := off
	for i > 0 && seps.Contains(b.runes[i-1]) {
		i--
	}
	for i > 0 && !seps.Contains(b.runes[i-1]) {
		i--
	}
	return i, nil
}

// WordEnd returns the offset of the end of the word right of off: the next
// separator after it, or the buffer end.
func (b *Buffer) WordEnd(off int, seps Separators) (int, error) {
	if err := checkOffset("word end", off, len(b.runes)); err != nil {
		return 0, err
	}
	i := off
	for i < len(b.runes) && seps.Contains(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && !seps.Contains(b.runes[i]) {
		i++
	}
	return i, nil
}

// SegmentStart returns one past the last separator found scanning backward
// from off, or 0 when there is none.
func (b *Buffer) SegmentStart(off int, seps Separators) (int, error) {
	if err := checkOffset("segment start", off, len(b.runes)); err != nil {
		return 0, err
	}
	for i := off - 1; i >= 0; i-- {
		if seps.Contains(b.runes[i]) {
			return i + 1, nil
		}
	}
	return 0, nil
}
