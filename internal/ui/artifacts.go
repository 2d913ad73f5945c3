package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/domain"
)

// ArtifactsView renders the pipeline reports as markdown in a scrollable view
type ArtifactsView struct {
	artifacts *domain.Artifacts
	style     string
	viewport  viewport.Model
}

func NewArtifactsView(style string) *ArtifactsView {
	return &ArtifactsView{style: style, viewport: viewport.New(60, 10)}
}

func (a *ArtifactsView) SetSize(width, height int) {
	a.viewport.Width = max(width, 20)
	a.viewport.Height = max(height, 1)
	a.render()
}

// SetArtifacts replaces the rendered reports; unchanged input keeps the scroll position
func (a *ArtifactsView) SetArtifacts(artifacts *domain.Artifacts) {
	if artifacts == a.artifacts {
		return
	}
	a.artifacts = artifacts
	a.render()
	a.viewport.GotoTop()
}

func (a *ArtifactsView) HasContent() bool {
	return !a.artifacts.IsEmpty()
}

func (a *ArtifactsView) render() {
	a.viewport.SetContent(renderMarkdown(artifactsMarkdown(a.artifacts), a.style, a.viewport.Width))
}

func (a *ArtifactsView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

func (a *ArtifactsView) View() string {
	if !a.HasContent() {
		return "No reports yet. Run the pipeline to generate them."
	}
	return a.viewport.View()
}

// artifactsMarkdown lays the reports out as one markdown document
func artifactsMarkdown(artifacts *domain.Artifacts) string {
	if artifacts.IsEmpty() {
		return ""
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Vision", artifacts.Vision},
		{"Blueprint", artifacts.Blueprint},
		{"Debug Report", artifacts.DebugReport},
		{"Optimization Report", artifacts.OptimizationReport},
		{"Cognitive Report", artifacts.CognitiveReport},
		{"Sustainability Audit", artifacts.SustainabilityAudit},
	}

	var sb strings.Builder
	for _, section := range sections {
		if strings.TrimSpace(section.body) == "" {
			continue
		}
		sb.WriteString("## " + section.title + "\n\n")
		sb.WriteString(section.body)
		sb.WriteString("\n\n")
	}
	if len(artifacts.FilesCreated) > 0 {
		sb.WriteString("## Files Created\n\n")
		for _, file := range artifacts.FilesCreated {
			sb.WriteString("- `" + file + "`\n")
		}
	}
	return sb.String()
}
