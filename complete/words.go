package complete

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/iw2rmb/keyline/internal/log"
)

// Words completes from a fixed vocabulary.
type Words struct {
	seps  []rune
	words []string
}

// NewWords returns a completer over words, sorted and de-duplicated. Empty
// seps selects DefaultSeparators.
func NewWords(words []string, seps []rune) *Words {
	uniq := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		uniq = append(uniq, w)
	}
	sort.Strings(uniq)
	return &Words{seps: normalizeSeparators(seps), words: uniq}
}

func (w *Words) Separators() []rune { return w.seps }

// Suggest returns the words starting with the segment at boundary, in
// order. When none do, it falls back to fuzzy matches, best first.
func (w *Words) Suggest(text string, boundary int) []string {
	frag := fragment(text, boundary, w.seps)

	var out []string
	for _, word := range w.words {
		if strings.HasPrefix(word, frag) {
			out = append(out, word)
		}
	}
	if len(out) > 0 || frag == "" {
		return out
	}

	matches := fuzzy.Find(frag, w.words)
	for _, m := range matches {
		out = append(out, w.words[m.Index])
	}
	log.Debug(log.CatComplete, "Fuzzy fallback", "fragment", frag, "matches", len(out))
	return out
}
