package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/domain"
	portsmocks "github.com/aura-ide/aura/internal/ports/mocks"
)

func TestWorkspaceService_ExpansionDisabled(t *testing.T) {
	store := portsmocks.NewMockWorkspaceStore(t)
	service := NewWorkspaceService(store, false)

	state, err := service.LoadExpansion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state)
	assert.NoError(t, service.SaveExpansion(context.Background(), "a", true))
}

func TestWorkspaceService_ExpansionEnabled(t *testing.T) {
	store := portsmocks.NewMockWorkspaceStore(t)
	store.EXPECT().LoadExpansion(mock.Anything).Return(domain.ExpansionState{"a": true}, nil)
	store.EXPECT().SaveExpansion(mock.Anything, "a/c", true).Return(nil)
	service := NewWorkspaceService(store, true)

	state, err := service.LoadExpansion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ExpansionState{"a": true}, state)
	assert.NoError(t, service.SaveExpansion(context.Background(), "a/c", true))
}

func TestWorkspaceService_JournalUsesSessionID(t *testing.T) {
	store := portsmocks.NewMockWorkspaceStore(t)
	service := NewWorkspaceService(store, true)
	entry := domain.EventLogEntry{Seq: 7, Severity: domain.SeverityInfo, Text: "$ ls"}
	store.EXPECT().AppendEvent(mock.Anything, service.SessionID(), entry).Return(errors.New("database is locked"))

	// failures are dropped
	service.Journal(context.Background(), entry)
	assert.NotEmpty(t, service.SessionID())
}

func TestWorkspaceService_RecordRunAssignsID(t *testing.T) {
	store := portsmocks.NewMockWorkspaceStore(t)
	store.EXPECT().RecordRun(mock.Anything, mock.MatchedBy(func(r domain.RunRecord) bool {
		return r.ID != "" && r.Description == "todo app"
	})).Return(nil)

	err := NewWorkspaceService(store, true).RecordRun(context.Background(), domain.RunRecord{Description: "todo app"})
	assert.NoError(t, err)
}

func TestWorkspaceService_HistoryError(t *testing.T) {
	store := portsmocks.NewMockWorkspaceStore(t)
	store.EXPECT().ListEvents(mock.Anything, 50).Return(nil, errors.New("no such table"))

	_, err := NewWorkspaceService(store, true).History(context.Background(), 50)
	assert.ErrorContains(t, err, "failed to read journal")
}
