package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aura-ide/aura/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Pane styles
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.
				BorderForeground(ColorBorderFocus)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Explorer styles
var (
	ActiveFileStyle = lipgloss.NewStyle().
			Foreground(ColorActiveFile).
			Bold(true)

	DirectoryStyle = lipgloss.NewStyle().
			Foreground(ColorDirectory).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorSelected)
)

// Editor styles
var (
	DirtyMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorDirtyMarker).
				Bold(true)

	OfflineBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorOfflineBadge)
)

// Diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns a style for a given color string
func StatusStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// SeverityStyle returns the terminal style for a log severity
func SeverityStyle(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeverityError:
		return lipgloss.NewStyle().Foreground(ColorSeverityError)
	case domain.SeveritySuccess:
		return lipgloss.NewStyle().Foreground(ColorSeveritySuccess)
	default:
		return lipgloss.NewStyle().Foreground(ColorSeverityInfo)
	}
}

// PhaseStateStyle returns the style for a phase state badge
func PhaseStateStyle(state domain.PhaseState) lipgloss.Style {
	switch state {
	case domain.PhaseComplete:
		return lipgloss.NewStyle().Foreground(ColorPhaseComplete)
	case domain.PhaseFailed:
		return lipgloss.NewStyle().Foreground(ColorPhaseFailed).Bold(true)
	case domain.PhaseRunning:
		return lipgloss.NewStyle().Foreground(ColorPhaseRunning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorPhasePending)
	}
}

// PhaseStateIcon returns the glyph shown next to a phase
func PhaseStateIcon(state domain.PhaseState) string {
	switch state {
	case domain.PhaseComplete:
		return "✔"
	case domain.PhaseFailed:
		return "✘"
	case domain.PhaseRunning:
		return "●"
	default:
		return "○"
	}
}

// Command palette styles
var (
	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	PaletteBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPaletteBorder).
				Padding(0, 1)

	PaletteDescStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	PaletteItemStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PaletteShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	PaletteTitleStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)
