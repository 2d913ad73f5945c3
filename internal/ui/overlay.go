package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aura-ide/aura/internal/theme"
)

// dimBackground strips colors from background, dims it and pads it to
// at least height lines of width columns
func dimBackground(background string, width, height int) []string {
	lines := strings.Split(background, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		dimmed := theme.DimmedStyle.Render(ansi.Strip(lines[i]))
		if w := lipgloss.Width(dimmed); w < width {
			dimmed += strings.Repeat(" ", width-w)
		}
		lines[i] = dimmed
	}
	return lines
}

// compositeOverlay draws overlay centered on top of the dimmed background
func compositeOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}
	startX := max((width-overlayWidth)/2, 0)
	startY := max((height-len(overlayLines))/2, 0)

	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		rightPad := max(width-startX-lipgloss.Width(line), 0)
		bgLines[y] = theme.DimmedStyle.Render(strings.Repeat(" ", startX)) +
			line +
			theme.DimmedStyle.Render(strings.Repeat(" ", rightPad))
	}
	return strings.Join(bgLines, "\n")
}

// bottomAnchoredOverlay draws overlay across the full width at the bottom
// of the dimmed background
func bottomAnchoredOverlay(background, overlay string, width, height int) string {
	bgLines := dimBackground(background, width, height)
	overlayLines := strings.Split(overlay, "\n")

	startY := max(height-len(overlayLines), 0)
	for i, line := range overlayLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgLines[y] = line
	}
	return strings.Join(bgLines, "\n")
}
