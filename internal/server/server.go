package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// ModelFactory builds a fresh control panel for one SSH session
type ModelFactory func(sessionID string) (*ui.Model, error)

// Config holds the SSH server settings
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyDir         string
	Port               string
}

// Server serves the control panel over SSH
type Server struct {
	cfg        Config
	factory    ModelFactory
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, factory ModelFactory) (*Server, error) {
	if cfg.AuthorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.AuthorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(cfg.HostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		factory: factory,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.Address()),
		wish.WithHostKeyPath(filepath.Join(cfg.HostKeyDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

// Start starts the SSH server and blocks until an interrupt
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logging.Logger.Info("Starting SSH server", "address", s.Address())
	fmt.Printf("SSH server listening on %s\n", s.Address())

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server error: %w", err)
	case <-done:
	}

	logging.Logger.Info("Shutting down SSH server")
	return s.Shutdown()
}

// Shutdown stops accepting sessions and waits for open ones to drain
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

func (s *Server) authorize(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := keyFingerprint(key)
	authorized := isKeyAuthorized(key, s.cfg.AuthorizedKeysPath)

	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}

	return authorized
}
