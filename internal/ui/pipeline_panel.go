package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/aura-ide/aura/internal/application"
	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/theme"
)

// maxPipelineLogs is how many of the newest pipeline log lines are shown
const maxPipelineLogs = 5

// PipelinePanel shows the progress bar, the phases and the newest logs
type PipelinePanel struct {
	bar     progress.Model
	phases  *config.PhaseConfig
	spinner spinner.Model
	width   int
}

func NewPipelinePanel(phases *config.PhaseConfig) *PipelinePanel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = theme.SpinnerStyle
	return &PipelinePanel{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		phases:  phases,
		spinner: s,
		width:   40,
	}
}

func (p *PipelinePanel) SetWidth(width int) {
	p.width = max(width, 10)
	p.bar.Width = p.width
}

// Tick returns the spinner's first tick
func (p *PipelinePanel) Tick() tea.Cmd {
	return p.spinner.Tick
}

func (p *PipelinePanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return cmd
}

// View renders the reconciler state. Before the first poll succeeds
// the panel shows an idle bar.
func (p *PipelinePanel) View(status *application.StatusReconciler) string {
	var sb strings.Builder

	latest := status.Latest()
	header := "IDLE"
	progressPct := 0
	if latest != nil {
		progressPct = latest.Progress
		if label := strings.TrimSpace(latest.StatusLabel); label != "" {
			header = strings.ToUpper(label)
		}
	}
	if status.IsRunning() {
		header = p.spinner.View() + " " + header
	}
	sb.WriteString(theme.TitleStyle.Render(header))
	if status.ConsecutiveFailures() > 0 {
		sb.WriteString("  ")
		sb.WriteString(theme.OfflineBadgeStyle.Render(fmt.Sprintf("⚠ offline (%d)", status.ConsecutiveFailures())))
	}
	sb.WriteString("\n")
	sb.WriteString(p.bar.ViewAs(float64(progressPct) / 100))
	sb.WriteString("\n\n")

	if latest != nil {
		for _, phase := range latest.Phases {
			icon := theme.PhaseStateStyle(phase.State).Render(theme.PhaseStateIcon(phase.State))
			name := theme.StatusStyle(p.phases.GetColor(phase.Name)).Render(phase.Name)
			sb.WriteString(fmt.Sprintf("%s %s\n", icon, name))
		}

		logs := latest.Logs
		if len(logs) > maxPipelineLogs {
			logs = logs[len(logs)-maxPipelineLogs:]
		}
		if len(logs) > 0 {
			sb.WriteString("\n")
		}
		for _, line := range logs {
			sb.WriteString(theme.MutedStyle.Render(ansi.Truncate("› "+line, p.width, "…")) + "\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
