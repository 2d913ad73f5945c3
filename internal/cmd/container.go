package cmd

import (
	"time"

	"github.com/aura-ide/aura/internal/adapters/ignore"
	"github.com/aura-ide/aura/internal/adapters/remote"
	adapterstorage "github.com/aura-ide/aura/internal/adapters/storage"
	"github.com/aura-ide/aura/internal/config"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ports"
	"github.com/aura-ide/aura/internal/services"
)

// ContainerOptions are the resolved settings the container is built from
type ContainerOptions struct {
	APIURL           string
	DBPath           string
	HiddenPatterns   []string
	PersistExpansion bool
	Phases           *config.PhaseConfig
	RequestTimeout   time.Duration
	Tools            *config.ToolConfig
}

// Container holds all dependencies for the application
type Container struct {
	Filter        ports.PathFilter
	Options       ContainerOptions
	RemoteService *services.RemoteService

	// Internal - shared by every workspace service, closed once
	store *adapterstorage.SQLiteStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	if opts.Phases == nil {
		opts.Phases = config.NewPhaseConfig("", "")
	}
	if opts.Tools == nil {
		opts.Tools = config.NewToolConfig("", "")
	}

	store, err := adapterstorage.NewSQLiteStore(opts.DBPath)
	if err != nil {
		return nil, err
	}

	client := remote.New(opts.APIURL).
		WithUnaryTimeout(opts.RequestTimeout).
		WithPhaseOrder(opts.Phases.Phases)

	logging.Logger.Debug("Container initialized",
		"api", opts.APIURL,
		"db", opts.DBPath,
		"hiddenPatterns", len(opts.HiddenPatterns))

	return &Container{
		Filter:        ignore.New(opts.HiddenPatterns),
		Options:       opts,
		RemoteService: services.NewRemoteService(client),
		store:         store,
	}, nil
}

// NewWorkspaceService returns a workspace service with its own session id
func (c *Container) NewWorkspaceService() *services.WorkspaceService {
	return services.NewWorkspaceService(c.store, c.Options.PersistExpansion)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
