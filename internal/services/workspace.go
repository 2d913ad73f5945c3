package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aura-ide/aura/internal/domain"
	"github.com/aura-ide/aura/internal/logging"
	"github.com/aura-ide/aura/internal/ports"
)

// WorkspaceService persists local workspace state across sessions
type WorkspaceService struct {
	persistExpansion bool
	sessionID        string
	store            ports.WorkspaceStore
}

// NewWorkspaceService creates a new WorkspaceService with a fresh session id
func NewWorkspaceService(store ports.WorkspaceStore, persistExpansion bool) *WorkspaceService {
	return &WorkspaceService{
		persistExpansion: persistExpansion,
		sessionID:        uuid.New().String(),
		store:            store,
	}
}

// SessionID identifies this session's journal entries
func (s *WorkspaceService) SessionID() string {
	return s.sessionID
}

// LoadExpansion returns the saved explorer state, empty when disabled
func (s *WorkspaceService) LoadExpansion(ctx context.Context) (domain.ExpansionState, error) {
	if !s.persistExpansion {
		return domain.ExpansionState{}, nil
	}
	state, err := s.store.LoadExpansion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expansion state: %w", err)
	}
	logging.Logger.Debug("Expansion state loaded", "paths", len(state))
	return state, nil
}

// SaveExpansion stores one explorer flag. No-op when disabled.
func (s *WorkspaceService) SaveExpansion(ctx context.Context, path string, expanded bool) error {
	if !s.persistExpansion {
		return nil
	}
	if err := s.store.SaveExpansion(ctx, path, expanded); err != nil {
		logging.Logger.Warn("Failed to save expansion state", "path", path, "error", err)
		return err
	}
	return nil
}

// Journal mirrors a terminal line. Failures are logged and dropped.
func (s *WorkspaceService) Journal(ctx context.Context, entry domain.EventLogEntry) {
	if err := s.store.AppendEvent(ctx, s.sessionID, entry); err != nil {
		logging.Logger.Warn("Failed to journal event", "seq", entry.Seq, "error", err)
	}
}

// History returns up to limit journaled lines, oldest first
func (s *WorkspaceService) History(ctx context.Context, limit int) ([]domain.EventLogEntry, error) {
	entries, err := s.store.ListEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

// RecordRun stores a pipeline start
func (s *WorkspaceService) RecordRun(ctx context.Context, record domain.RunRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	logging.Logger.Info("Recording run", "id", record.ID, "accepted", record.Accepted)
	if err := s.store.RecordRun(ctx, record); err != nil {
		logging.Logger.Error("Failed to record run", "id", record.ID, "error", err)
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Runs returns up to limit recorded runs, newest first
func (s *WorkspaceService) Runs(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	runs, err := s.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
