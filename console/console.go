package console

// Console is the set of terminal operations the editor needs.
type Console interface {
	CursorLeft() int
	CursorTop() int
	SetCursorPosition(left, top int)
	BufferWidth() int
	Write(s string)
}

const defaultWidth = 80

func normalizeWidth(w int) int {
	if w <= 0 {
		return defaultWidth
	}
	return w
}
