// Package complete computes tab-completion candidates for the in-progress
// token of a command line.
package complete

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"linesh/internal/token"
)

// Lister enumerates directory entries by base name. Implementations must not
// fail: a missing or unreadable directory yields empty results.
type Lister interface {
	ListFiles(dir string) []string
	ListDirs(dir string) []string
}

// DirLister is the real-filesystem Lister.
type DirLister struct{}

func (DirLister) ListFiles(dir string) []string { return readDir(dir, false) }
func (DirLister) ListDirs(dir string) []string  { return readDir(dir, true) }

func readDir(dir string, wantDirs bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Missing/unreadable directory means no candidates, never an error.
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() == wantDirs {
			names = append(names, e.Name())
		}
	}
	return names
}

// Engine resolves completions against a working directory, a set of builtin
// command names and a filesystem lister.
type Engine struct {
	Cwd      func() string
	Builtins func() []string
	Lister   Lister
}

// Complete completes the last token of buffer.
//
// The candidate universe is the entries of the directory implied by the last
// token (relative to Cwd) plus the builtin names, filtered to those starting
// with the token's name portion, compared case-insensitively. With exactly
// one candidate the missing suffix is spliced into the buffer and the cursor
// advances past it. With zero or several candidates the buffer and cursor
// are returned unchanged; the candidate set is returned either way so a
// caller can display it.
func (e Engine) Complete(buffer string, cursor int) (string, int, []string) {
	toks := token.Parse(buffer)
	partial := toks[len(toks)-1]

	dirPart, namePart := filepath.Split(partial)
	dir := e.Cwd()
	if dirPart != "" {
		if filepath.IsAbs(dirPart) {
			dir = filepath.Clean(dirPart)
		} else {
			dir = filepath.Join(dir, dirPart)
		}
	}

	universe := e.Lister.ListFiles(dir)
	universe = append(universe, e.Lister.ListDirs(dir)...)
	if e.Builtins != nil {
		universe = append(universe, e.Builtins()...)
	}

	seen := map[string]bool{}
	var matches []string
	for _, name := range universe {
		if !hasFoldPrefix(name, namePart) || seen[name] {
			continue
		}
		seen[name] = true
		matches = append(matches, name)
	}

	switch len(matches) {
	case 0:
		return buffer, cursor, nil
	case 1:
		suffix := matches[0][len(namePart):]
		return buffer + suffix, cursor + len([]rune(suffix)), nil
	default:
		sort.Strings(matches)
		return buffer, cursor, matches
	}
}

// hasFoldPrefix reports whether s starts with prefix, ignoring case.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
