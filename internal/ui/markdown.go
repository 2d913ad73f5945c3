package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/aura-ide/aura/internal/logging"
)

var (
	markdownMu       sync.Mutex
	markdownRenderer *glamour.TermRenderer
	markdownStyle    string
	markdownWidth    int
)

// renderMarkdown renders content with glamour. On renderer failure the raw
// content is returned so reports stay readable.
func renderMarkdown(content, style string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	markdownMu.Lock()
	defer markdownMu.Unlock()

	if markdownRenderer == nil || markdownStyle != style || markdownWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(max(width, 20)),
		)
		if err != nil {
			logging.Logger.Warn("Failed to create markdown renderer", "style", style, "error", err)
			return content
		}
		markdownRenderer = renderer
		markdownStyle = style
		markdownWidth = width
	}

	out, err := markdownRenderer.Render(content)
	if err != nil {
		logging.Logger.Warn("Failed to render markdown", "error", err)
		return content
	}
	return strings.TrimRight(out, "\n")
}
