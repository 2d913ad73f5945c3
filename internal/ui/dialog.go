package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo is shown when main.go did not inject build values
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Multi-agent build pipeline, one keystroke away",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// Dialog shows a form under the Aura header. The subtitle names the form
// and, when set, the remote path it acts on.
type Dialog struct {
	content tea.Model
	devMode bool
	target  string
	title   string
}

// NewDialog creates a dialog around content. target may be empty.
func NewDialog(title, target string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		target:  target,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	d.content, cmd = d.content.Update(msg)
	return d, cmd
}

func (d *Dialog) View() string {
	subtitle := d.title
	if d.target != "" {
		subtitle += " › " + d.target
	}
	return renderHeader(d.devMode, subtitle) + d.content.View()
}

// Content returns the wrapped form for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}

// renderHeader builds the app name line (with build details in dev mode),
// the tagline and an optional subtitle
func renderHeader(devMode bool, subtitle string) string {
	name := theme.AppNameStyle.Render("Aura")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		name += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version, commit, versionInfo.Date, versionInfo.GoVersion))
	}

	header := name + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
	if subtitle != "" {
		header += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return header + "\n"
}
