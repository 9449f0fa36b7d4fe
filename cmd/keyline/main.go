// Command keyline is an interactive line editor with readline key bindings.
package main

import (
	"os"

	"github.com/iw2rmb/keyline"
)

// Build information injected via ldflags at build time.
var (
	commit = "none"
	date   = "unknown"
)

func main() {
	setVersion(keyline.BuildString(commit, date))
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
