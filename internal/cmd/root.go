package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	APIURL         string           `help:"Build service base URL" name:"api-url" env:"AURA_API_URL"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (rotated by size)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	RequestTimeout int              `help:"Seconds before a single request is abandoned" env:"AURA_REQUEST_TIMEOUT"`

	UI       UICmd       `cmd:"ui" help:"Start the aura control panel (default)" default:"1"`
	Tree     TreeCmd     `cmd:"tree" help:"Print the remote file tree"`
	Cat      CatCmd      `cmd:"cat" help:"Print a remote file"`
	Put      PutCmd      `cmd:"put" help:"Write a remote file from a local file or stdin"`
	Rm       RmCmd       `cmd:"rm" help:"Delete a remote file"`
	Status   StatusCmd   `cmd:"status" help:"Show the pipeline status"`
	Run      RunCmd      `cmd:"run" help:"Start a pipeline run"`
	Exec     ExecCmd     `cmd:"exec" help:"Run a shell command on the build service"`
	Tool     ToolCmd     `cmd:"tool" help:"Invoke an automation tool"`
	Snapshot SnapshotCmd `cmd:"snapshot" help:"Fetch the tree and the status together"`
	Log      LogCmd      `cmd:"log" help:"Show the persisted terminal journal"`
	Runs     RunsCmd     `cmd:"runs" help:"Show the pipeline run history"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the control panel over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	if c.MaxLogFiles == 1000 {
		if _, hasEnv := os.LookupEnv("AURA_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("AURA_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "path", logFilePath)
	}

	// The container logs through GORM, so it is created after logging
	container, err := NewContainer(c.resolveOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		if err := c.Container.Close(); err != nil {
			return err
		}
	}
	return logging.Close()
}

func (c *CLI) resolveOptions() ContainerOptions {
	s := c.settings

	apiURL := c.APIURL
	if apiURL == "" {
		apiURL = s.APIURL
	}
	if apiURL == "" {
		apiURL = config.DefaultAPIURL
	}

	timeout := c.RequestTimeout
	if timeout <= 0 && s.RequestTimeoutSeconds != nil {
		timeout = *s.RequestTimeoutSeconds
	}
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeoutSeconds
	}

	persist := true
	if s.PersistExpansion != nil {
		persist = *s.PersistExpansion
	}

	return ContainerOptions{
		APIURL:           strings.TrimRight(apiURL, "/"),
		DBPath:           config.GetDBPath(),
		HiddenPatterns:   s.HiddenPatterns,
		PersistExpansion: persist,
		Phases:           config.NewPhaseConfig(strings.Join(s.Phases, ","), strings.Join(s.PhaseColors, ",")),
		RequestTimeout:   time.Duration(timeout) * time.Second,
		Tools:            config.NewToolConfig(strings.Join(s.Tools, ","), strings.Join(s.MutatingTools, ",")),
	}
}

// UICmd starts the TUI application
type UICmd struct {
	Dev             bool   `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	MarkdownStyle   string `help:"Glamour style for the artifacts panel" env:"AURA_MARKDOWN_STYLE"`
	ModelID         string `help:"Default model identifier offered when starting a run" env:"AURA_MODEL_ID"`
	PollInterval    int    `help:"Milliseconds between status polls" env:"AURA_POLL_INTERVAL_MS"`
	RootLabel       string `help:"Label of the explorer root"`
}

// Run executes the TUI
func (u *UICmd) Run(cli *CLI) error {
	cfg, err := u.modelConfig(cli)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting aura TUI", "api", cli.Container.Options.APIURL)

	model := ui.NewModel(cfg, cli.Container.RemoteService, cli.Container.NewWorkspaceService())
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// modelConfig resolves UI settings with the same precedence as the global flags
func (u *UICmd) modelConfig(cli *CLI) (ui.ModelConfig, error) {
	s := cli.settings
	if s == nil {
		s = &config.Settings{}
	}

	if u.ErrorClearDelay == 10 && s.ErrorClearDelay != nil {
		u.ErrorClearDelay = *s.ErrorClearDelay
	}
	if u.MarkdownStyle == "" {
		u.MarkdownStyle = s.MarkdownStyle
	}
	if u.ModelID == "" {
		u.ModelID = s.ModelID
	}
	if u.PollInterval <= 0 && s.PollIntervalMs != nil {
		u.PollInterval = *s.PollIntervalMs
	}
	if u.PollInterval <= 0 {
		u.PollInterval = config.DefaultPollIntervalMs
	}
	if u.RootLabel == "" {
		u.RootLabel = s.RootLabel
	}

	var keysConfig config.KeyBindingsConfig
	if s.Keys != nil {
		if err := s.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.ModelConfig{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = s.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	opts := cli.Container.Options
	return ui.ModelConfig{
		DevMode:         u.Dev,
		ErrorClearDelay: time.Duration(u.ErrorClearDelay) * time.Second,
		Filter:          cli.Container.Filter,
		Keys:            keysConfig,
		MarkdownStyle:   u.MarkdownStyle,
		ModelID:         u.ModelID,
		Phases:          opts.Phases,
		PollInterval:    time.Duration(u.PollInterval) * time.Millisecond,
		RequestTimeout:  opts.RequestTimeout,
		RootLabel:       u.RootLabel,
		Tools:           opts.Tools,
	}, nil
}
