package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		width     int
		expected  string
		maxLines  int
		truncated bool
	}{
		{name: "nil error", err: nil, width: 80, expected: ""},
		{name: "empty message", err: errors.New(""), width: 80, expected: "Error: unknown error"},
		{name: "fits on one line", err: errors.New("connection refused"), width: 80, expected: "Error: connection refused"},
		{name: "wraps to two lines", err: errors.New("failed to fetch status from build server"), width: 30, maxLines: 2},
		{name: "truncates long messages", err: errors.New(strings.Repeat("word ", 60)), width: 30, maxLines: 2, truncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatErrorForDisplay(tt.err, tt.width)
			if tt.expected != "" || tt.err == nil {
				assert.Equal(t, tt.expected, result)
				return
			}

			assert.True(t, strings.HasPrefix(result, errorPrefix))
			assert.LessOrEqual(t, len(strings.Split(result, "\n")), tt.maxLines)
			assert.Equal(t, tt.truncated, strings.HasSuffix(result, truncationMark))
		})
	}
}
