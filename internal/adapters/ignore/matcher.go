package ignore

import (
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/aura-ide/aura/internal/ports"
)

// Matcher hides explorer rows using gitignore syntax
type Matcher struct {
	rules *gitignore.GitIgnore
}

// Verify interface compliance at compile time
var _ ports.PathFilter = (*Matcher)(nil)

// New compiles patterns. Blank lines and comments are skipped.
func New(patterns []string) *Matcher {
	lines := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		lines = append(lines, p)
	}
	if len(lines) == 0 {
		return &Matcher{}
	}
	return &Matcher{rules: gitignore.CompileIgnoreLines(lines...)}
}

// Hidden reports whether path matches any pattern.
// Directory paths get a trailing slash so "dir/" patterns apply.
func (m *Matcher) Hidden(path string, isDir bool) bool {
	if m == nil || m.rules == nil {
		return false
	}
	if isDir && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return m.rules.MatchesPath(path)
}
