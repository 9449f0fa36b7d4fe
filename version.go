// Package keyline edits a single line of input in place on a console, with
// readline-style keys, history recall, tab completion and undo.
//
// Session in the editor package is the entry point; buffer holds the line
// and console abstracts the cursor-addressable output it draws on.
package keyline

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release recorded in the VERSION file, without a `v`.
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag is Version as a git tag.
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v is a SemVer 2.0.0 version without a `v`.
func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }

// BuildString is the `keyline --version` banner. commit and date come from
// linker flags and may be empty.
func BuildString(commit, date string) string {
	return buildString(Version(), commit, date)
}

func buildString(v, commit, date string) string {
	tag := "dev"
	if IsSemver(v) {
		tag = "v" + v
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", tag, commit, date)
}
