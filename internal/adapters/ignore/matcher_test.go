package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Hidden(t *testing.T) {
	matcher := New([]string{"__pycache__/", "*.pyc", "# comment", "", "build/"})

	tests := []struct {
		path     string
		isDir    bool
		expected bool
	}{
		{"__pycache__", true, true},
		{"pkg/__pycache__", true, true},
		{"main.pyc", false, true},
		{"pkg/util.pyc", false, true},
		{"main.py", false, false},
		{"build", true, true},
		{"build", false, false},
		{"src", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, matcher.Hidden(tt.path, tt.isDir))
		})
	}
}

func TestMatcher_Empty(t *testing.T) {
	assert.False(t, New(nil).Hidden("anything", false))

	var nilMatcher *Matcher
	assert.False(t, nilMatcher.Hidden("anything", true))
}
