package complete

import "slices"

// DefaultSeparators ends a completion segment at whitespace.
var DefaultSeparators = []rune{' '}

func normalizeSeparators(seps []rune) []rune {
	if len(seps) == 0 {
		return DefaultSeparators
	}
	return slices.Clone(seps)
}

// fragment returns the segment starting at boundary, up to the next
// separator or the end of text.
func fragment(text string, boundary int, seps []rune) string {
	runes := []rune(text)
	if boundary < 0 || boundary > len(runes) {
		return ""
	}
	runes = runes[boundary:]
	for i, r := range runes {
		if slices.Contains(seps, r) {
			return string(runes[:i])
		}
	}
	return string(runes)
}
