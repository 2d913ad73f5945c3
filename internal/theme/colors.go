package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "39" // Blue - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Terminal severity colors
const (
	ColorSeverityError   Color = "196" // Bright red
	ColorSeverityInfo    Color = "252" // Off white
	ColorSeveritySuccess Color = "42"  // Green
)

// Phase state colors
const (
	ColorPhaseComplete Color = "42"  // Green
	ColorPhaseFailed   Color = "196" // Red
	ColorPhasePending  Color = "240" // Dark gray
	ColorPhaseRunning  Color = "214" // Orange
)

// UI semantic colors
const (
	ColorBorder       Color = "238" // Pane borders
	ColorBorderFocus  Color = "39"  // Focused pane border
	ColorDirectory    Color = "75"  // Light blue
	ColorError        Color = "196" // Bright red
	ColorHighlight    Color = "255" // White - emphasis
	ColorMuted        Color = "241" // Gray - secondary text
	ColorNormal       Color = "250" // Default text
	ColorSelected     Color = "236" // Cursor row background
	ColorSubtle       Color = "245" // Light gray - labels
	ColorVersion      Color = "240" // Dark gray
	ColorActiveFile   Color = "226" // Yellow - open file
	ColorDirtyMarker  Color = "214" // Orange - unsaved edits
	ColorOfflineBadge Color = "203" // Salmon - poll failures
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
)

// Diff colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)

// DefaultPhaseColors is the default palette for pipeline phase names
var DefaultPhaseColors = []string{"141", "33", "214", "226", "46", "86"}

// Overlay colors
const (
	ColorDimmed        Color = "240" // Background behind overlays
	ColorPaletteBorder Color = "62"  // Indigo
)
