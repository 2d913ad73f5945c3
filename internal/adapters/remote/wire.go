package remote

import (
	"strings"

	"github.com/aura-ide/aura/internal/domain"
)

type treeNodeDTO struct {
	Children []treeNodeDTO `json:"children,omitempty"`
	IsDir    bool          `json:"isDir"`
	Name     string        `json:"name"`
	Path     string        `json:"path"`
}

type fileContentDTO struct {
	Content string `json:"content"`
}

type writeFileDTO struct {
	Content string `json:"content"`
	Path    string `json:"path"`
}

type runRequestDTO struct {
	ImageData *string `json:"image_data,omitempty"`
	ModelID   string  `json:"model_id"`
	UserDesc  string  `json:"user_desc"`
	VoiceReqs string  `json:"voice_reqs"`
}

type commandResultDTO struct {
	Error      string `json:"error,omitempty"`
	ExitCode   int    `json:"exit_code"`
	FullOutput string `json:"full_output"`
	Stderr     string `json:"stderr"`
	Stdout     string `json:"stdout"`
}

type toolResultDTO struct {
	Error  string `json:"error,omitempty"`
	Output string `json:"output,omitempty"`
}

type statusDTO struct {
	Audit        string            `json:"audit,omitempty"`
	Blueprint    string            `json:"blueprint,omitempty"`
	CogReport    string            `json:"cog_report,omitempty"`
	DebugReport  string            `json:"debug_report,omitempty"`
	FilesCreated []string          `json:"files_created,omitempty"`
	IsRunning    bool              `json:"is_running"`
	Logs         []string          `json:"logs"`
	OptReport    string            `json:"opt_report,omitempty"`
	Phases       map[string]string `json:"phases"`
	Progress     float64           `json:"progress"`
	Status       string            `json:"status"`
	Vision       string            `json:"vision,omitempty"`
}

func toTreeNodes(nodes []treeNodeDTO) []domain.TreeNode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]domain.TreeNode, len(nodes))
	for i, n := range nodes {
		name := n.Name
		if name == "" {
			name = n.Path[strings.LastIndex(n.Path, "/")+1:]
		}
		out[i] = domain.TreeNode{
			Children: toTreeNodes(n.Children),
			IsDir:    n.IsDir,
			Name:     name,
			Path:     n.Path,
		}
	}
	return out
}

func (s statusDTO) toDomain(phaseOrder []string) *domain.PipelineStatus {
	status := &domain.PipelineStatus{
		IsRunning:   s.IsRunning,
		Logs:        s.Logs,
		Phases:      domain.OrderPhases(s.Phases, phaseOrder),
		Progress:    domain.ClampProgress(int(s.Progress)),
		StatusLabel: s.Status,
	}
	if !s.IsRunning {
		artifacts := &domain.Artifacts{
			Blueprint:           s.Blueprint,
			CognitiveReport:     s.CogReport,
			DebugReport:         s.DebugReport,
			FilesCreated:        s.FilesCreated,
			OptimizationReport:  s.OptReport,
			SustainabilityAudit: s.Audit,
			Vision:              s.Vision,
		}
		if !artifacts.IsEmpty() {
			status.Artifacts = artifacts
		}
	}
	return status
}

func (c commandResultDTO) toDomain() *domain.CommandResult {
	output := c.FullOutput
	if output == "" {
		output = strings.TrimRight(c.Stdout+"\n"+c.Stderr, "\n")
	}
	return &domain.CommandResult{
		ExitCode: c.ExitCode,
		Output:   output,
		Stderr:   c.Stderr,
		Stdout:   c.Stdout,
	}
}
