package cmd

import (
	"fmt"

	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/server"
	"github.com/aura-ide/aura/internal/ui"
)

const (
	defaultSSHHost = "localhost"
	defaultSSHPort = "23234"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (defaults to ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to bind to" env:"AURA_SSH_HOST"`
	Port           string `help:"Port to listen on" env:"AURA_SSH_PORT"`

	UI UICmd `embed:"" prefix:"ui-"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if s.Host == "" && cli.settings != nil {
		s.Host = cli.settings.SSHHost
	}
	if s.Host == "" {
		s.Host = defaultSSHHost
	}
	if s.Port == "" && cli.settings != nil {
		s.Port = cli.settings.SSHPort
	}
	if s.Port == "" {
		s.Port = defaultSSHPort
	}

	cfg, err := s.UI.modelConfig(cli)
	if err != nil {
		return err
	}

	container := cli.Container
	factory := func(sessionID string) (*ui.Model, error) {
		workspace := container.NewWorkspaceService()
		logging.Logger.Debug("Workspace for SSH session",
			"ssh_session", sessionID,
			"workspace_session", workspace.SessionID())
		return ui.NewModel(cfg, container.RemoteService, workspace), nil
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		HostKeyDir:         config.GetSSHDir(),
		Port:               s.Port,
	}, factory)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logging.Logger.Info("Starting aura SSH server", "address", srv.Address(), "api", container.Options.APIURL)
	return srv.Start()
}
