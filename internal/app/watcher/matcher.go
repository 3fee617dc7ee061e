package watcher

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher decides which file names in the config directory trigger a reload
type Matcher interface {
	Match(path string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	names   []glob.Glob
	ignores []glob.Glob
}

// editorArtifacts are temporary files editors write next to the config
var editorArtifacts = []string{"*.swp", "*.swx", "*~", ".#*", "#*#"}

// NewMatcher creates a Matcher for the given base-name patterns, skipping editor artifacts
func NewMatcher(names []string) (Matcher, error) {
	m := &matcher{
		names:   make([]glob.Glob, 0, len(names)),
		ignores: make([]glob.Glob, 0, len(editorArtifacts)),
	}

	for _, p := range names {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.names = append(m.names, g)
	}

	for _, p := range editorArtifacts {
		m.ignores = append(m.ignores, glob.MustCompile(p))
	}

	return m, nil
}

// Match reports whether the base name of path is watched
func (m *matcher) Match(path string) bool {
	name := filepath.Base(path)

	for _, ignore := range m.ignores {
		if ignore.Match(name) {
			return false
		}
	}

	for _, g := range m.names {
		if g.Match(name) {
			return true
		}
	}

	return false
}
