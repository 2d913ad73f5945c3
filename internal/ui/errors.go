package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error message to maxWidth, keeping at most
// two lines. The "Error: " prefix counts against the first line.
// Overflowing messages end with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	firstLineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), 10)
	otherLineWidth := max(maxWidth, 10)

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxErrorLines {
				truncated = true
				break
			}
			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if !truncated && currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := otherLineWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
