package complete

import "github.com/iw2rmb/keyline/editor"

// Chain concatenates the suggestions of several completers, dropping
// duplicates. Its separators are the first completer's.
type Chain []editor.Completer

func (c Chain) Separators() []rune {
	if len(c) == 0 {
		return DefaultSeparators
	}
	return c[0].Separators()
}

func (c Chain) Suggest(text string, boundary int) []string {
	var out []string
	seen := map[string]bool{}
	for _, comp := range c {
		for _, s := range comp.Suggest(text, boundary) {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
