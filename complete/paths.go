package complete

import (
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/iw2rmb/keyline/internal/log"
)

// Paths completes file and directory names. Relative fragments resolve
// against root; directories are suggested with a trailing slash.
type Paths struct {
	fs   afero.Fs
	root string
	seps []rune
}

// NewPaths returns a path completer over fs. A nil fs selects the OS
// filesystem and an empty root selects ".".
func NewPaths(fs afero.Fs, root string, seps []rune) *Paths {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if root == "" {
		root = "."
	}
	return &Paths{fs: fs, root: root, seps: normalizeSeparators(seps)}
}

func (p *Paths) Separators() []rune { return p.seps }

func (p *Paths) Suggest(text string, boundary int) []string {
	frag := fragment(text, boundary, p.seps)
	dir, base := "", frag
	if i := strings.LastIndex(frag, "/"); i >= 0 {
		dir, base = frag[:i+1], frag[i+1:]
	}

	lookup := dir
	switch {
	case dir == "":
		lookup = p.root
	case !path.IsAbs(dir):
		lookup = path.Join(p.root, dir)
	}

	entries, err := afero.ReadDir(p.fs, lookup)
	if err != nil {
		log.Debug(log.CatComplete, "Path lookup failed", "dir", lookup, "error", err)
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		out = append(out, dir+name)
	}
	return out
}
