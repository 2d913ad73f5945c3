package ports

import (
	"context"

	"github.com/aura-ide/aura/internal/domain"
)

// ExpansionStore persists explorer expansion flags
type ExpansionStore interface {
	LoadExpansion(ctx context.Context) (domain.ExpansionState, error)
	SaveExpansion(ctx context.Context, path string, expanded bool) error
}

// EventJournal mirrors terminal lines across sessions
type EventJournal interface {
	AppendEvent(ctx context.Context, sessionID string, entry domain.EventLogEntry) error
	ListEvents(ctx context.Context, limit int) ([]domain.EventLogEntry, error)
}

// RunHistory records pipeline starts
type RunHistory interface {
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
	RecordRun(ctx context.Context, record domain.RunRecord) error
}

// WorkspaceStore is the composite interface
type WorkspaceStore interface {
	ExpansionStore
	EventJournal
	RunHistory
	Close() error
}
