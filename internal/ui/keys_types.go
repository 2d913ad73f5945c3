package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/aura-ide/aura/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// Every SSH session builds its own key map, so registration is shared and
// keyed by the rendered tip.
var (
	tipsMu         sync.Mutex
	tips           []Tip
	registeredTips = make(map[string]bool)
)

// newTip registers a tip with format string and keys to highlight.
// Format uses %s placeholders for keys, e.g. newTip("press %s to save", "ctrl+s")
func newTip(format string, keys ...string) string {
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	text := fmt.Sprintf(format, args...)

	tipsMu.Lock()
	defer tipsMu.Unlock()
	if !registeredTips[text] {
		registeredTips[text] = true
		tips = append(tips, Tip{Format: format, Keys: keys})
	}
	return text
}

// GetTips returns a copy of the registered tips
func GetTips() []Tip {
	tipsMu.Lock()
	defer tipsMu.Unlock()
	return append([]Tip(nil), tips...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	var sb strings.Builder
	sb.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range strings.Split(tip.Format, "%s") {
		sb.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			sb.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return sb.String()
}

// KeyWithTip pairs a binding with the footer tip built from its keys
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
