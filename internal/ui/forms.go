package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/aura-ide/aura/internal/services"
)

// huhForm wraps a huh form with esc/ctrl+c cancellation.
// Concrete forms embed it and read their bound values once Completed is set.
type huhForm struct {
	Completed bool
	Cancelled bool
	form      *huh.Form
}

func (hf *huhForm) Init() tea.Cmd {
	return hf.form.Init()
}

// update forwards msg and reports completion; the caller returns itself as the model
func (hf *huhForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			hf.Cancelled = true
			hf.Completed = true
			return nil
		}
	}

	form, cmd := hf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		hf.form = f
	}

	if hf.form.State == huh.StateCompleted {
		hf.Completed = true
		return nil
	}
	if hf.form.State == huh.StateAborted {
		hf.Cancelled = true
		hf.Completed = true
		return nil
	}
	return cmd
}

func (hf *huhForm) View() string {
	if hf.form != nil {
		return hf.form.View()
	}
	return ""
}

func requireValue(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// NewFileForm asks for the path of a file to create on the build server
type NewFileForm struct {
	huhForm
	path string
}

// NewNewFileForm creates the form, prefilled with the selected folder
func NewNewFileForm(dir string) *NewFileForm {
	f := &NewFileForm{}
	if dir != "" {
		f.path = dir + "/"
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("File path").
				Description("Relative to the project root, e.g. src/app.py").
				Value(&f.path).
				Validate(requireValue("path")),
		),
	)
	return f
}

func (f *NewFileForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return f, f.update(msg)
}

// Path returns the trimmed path entered
func (f *NewFileForm) Path() string {
	return strings.TrimSpace(f.path)
}

// CommandForm asks for a shell command to run on the build server
type CommandForm struct {
	huhForm
	command string
}

func NewCommandForm() *CommandForm {
	f := &CommandForm{}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Command").
				Prompt("$ ").
				Value(&f.command).
				Validate(requireValue("command")),
		),
	)
	return f
}

func (f *CommandForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return f, f.update(msg)
}

// Command returns the command exactly as typed
func (f *CommandForm) Command() string {
	return f.command
}

// ToolForm picks an automation tool to run against the open file
type ToolForm struct {
	huhForm
	tool string
}

func NewToolForm(tools []string, target string) *ToolForm {
	f := &ToolForm{}
	options := make([]huh.Option[string], len(tools))
	for i, tool := range tools {
		options[i] = huh.NewOption(tool, tool)
	}
	if len(tools) > 0 {
		f.tool = tools[0]
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Automation tool").
				Description("Target: "+target).
				Options(options...).
				Value(&f.tool),
		),
	)
	return f
}

func (f *ToolForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return f, f.update(msg)
}

func (f *ToolForm) Tool() string {
	return f.tool
}

// RunForm collects the inputs of a pipeline run
type RunForm struct {
	huhForm
	params services.StartRunParams
}

// NewRunForm creates the form with modelID preselected
func NewRunForm(modelID string) *RunForm {
	f := &RunForm{params: services.StartRunParams{ModelID: modelID}}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Project description").
				Description("What should the agents build?").
				Value(&f.params.Description).
				CharLimit(4000).
				Validate(requireValue("description")),
			huh.NewText().
				Title("Requirements").
				Description("Constraints, stack, style (optional)").
				Value(&f.params.Requirements).
				CharLimit(4000),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Model").
				Value(&f.params.ModelID),
			huh.NewInput().
				Title("Sketch image").
				Description("Local path to a UI sketch (optional)").
				Value(&f.params.ImagePath),
		),
	)
	return f
}

func (f *RunForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return f, f.update(msg)
}

func (f *RunForm) Params() services.StartRunParams {
	params := f.params
	params.ImagePath = strings.TrimSpace(params.ImagePath)
	params.ModelID = strings.TrimSpace(params.ModelID)
	return params
}

// ConfirmForm asks a yes/no question
type ConfirmForm struct {
	huhForm
	confirmed bool
}

func NewConfirmForm(title, description string) *ConfirmForm {
	f := &ConfirmForm{}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&f.confirmed),
		),
	)
	return f
}

func (f *ConfirmForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return f, f.update(msg)
}

func (f *ConfirmForm) Confirmed() bool {
	return f.confirmed && !f.Cancelled
}
