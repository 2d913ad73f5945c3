package application

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/domain"
)

func snapshot(running bool) *domain.PipelineStatus {
	return &domain.PipelineStatus{IsRunning: running}
}

func TestStatusReconciler_RefreshSequences(t *testing.T) {
	tests := []struct {
		name      string
		sequence  []bool
		refreshAt []int
	}{
		{"running running idle", []bool{true, true, false}, []int{2}},
		{"idle idle", []bool{false, false}, nil},
		{"running idle running", []bool{true, false, true}, []int{1}},
		{"idle running", []bool{false, true}, nil},
		{"two completions", []bool{true, false, true, false}, []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStatusReconciler(0)
			var refreshes []int
			for i, running := range tt.sequence {
				require.True(t, r.BeginPoll())
				if r.Complete(snapshot(running)).RefreshTree {
					refreshes = append(refreshes, i)
				}
			}
			assert.Equal(t, tt.refreshAt, refreshes)
		})
	}
}

func TestStatusReconciler_SkipsTickWhilePollInFlight(t *testing.T) {
	r := NewStatusReconciler(time.Second)

	assert.True(t, r.BeginPoll())
	assert.False(t, r.BeginPoll())
	assert.True(t, r.InFlight())

	r.Complete(snapshot(false))
	assert.False(t, r.InFlight())
	assert.True(t, r.BeginPoll())
}

func TestStatusReconciler_FailureKeepsState(t *testing.T) {
	r := NewStatusReconciler(0)
	require.True(t, r.BeginPoll())
	first := snapshot(true)
	r.Complete(first)

	require.True(t, r.BeginPoll())
	r.Fail(errors.New("connection refused"))

	assert.Same(t, first, r.Latest())
	assert.True(t, r.IsRunning())
	assert.False(t, r.InFlight())
	assert.EqualError(t, r.LastError(), "connection refused")
	assert.Equal(t, 1, r.ConsecutiveFailures())

	// the failed poll must not swallow the completion edge
	require.True(t, r.BeginPoll())
	assert.True(t, r.Complete(snapshot(false)).RefreshTree)
	assert.NoError(t, r.LastError())
	assert.Zero(t, r.ConsecutiveFailures())
}

func TestStatusReconciler_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultPollInterval, NewStatusReconciler(0).Interval())
	assert.Equal(t, 500*time.Millisecond, NewStatusReconciler(500*time.Millisecond).Interval())
}

func TestStatusReconciler_ChangedPhases(t *testing.T) {
	r := NewStatusReconciler(0)

	r.BeginPoll()
	first := r.Complete(&domain.PipelineStatus{
		IsRunning: true,
		Phases: []domain.PhaseStatus{
			{Name: "Vision", State: domain.PhaseRunning},
			{Name: "Architect", State: domain.PhasePending},
		},
	})
	assert.Len(t, first.Changed, 2)
	assert.True(t, first.Started)

	r.BeginPoll()
	second := r.Complete(&domain.PipelineStatus{
		IsRunning: true,
		Phases: []domain.PhaseStatus{
			{Name: "Vision", State: domain.PhaseComplete},
			{Name: "Architect", State: domain.PhasePending},
		},
	})
	assert.Equal(t, []domain.PhaseStatus{{Name: "Vision", State: domain.PhaseComplete}}, second.Changed)
	assert.False(t, second.Started)
	assert.False(t, second.Finished)
}
