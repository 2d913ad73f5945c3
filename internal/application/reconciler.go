package application

import (
	"time"

	"github.com/aura-ide/aura/internal/domain"
)

// DefaultPollInterval is the status polling period
const DefaultPollInterval = 2 * time.Second

// Reconciliation is the outcome of folding one status snapshot
type Reconciliation struct {
	// Changed lists phases whose state differs from the previous snapshot
	Changed     []domain.PhaseStatus
	Finished    bool
	RefreshTree bool
	Started     bool
}

// StatusReconciler merges polled pipeline snapshots into local state.
// At most one poll is in flight; a tick that finds one running is skipped.
type StatusReconciler struct {
	failures          int
	inFlight          bool
	interval          time.Duration
	lastErr           error
	latest            *domain.PipelineStatus
	previousIsRunning bool
}

// NewStatusReconciler creates a reconciler polling every interval
func NewStatusReconciler(interval time.Duration) *StatusReconciler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &StatusReconciler{interval: interval}
}

// Interval returns the polling period
func (r *StatusReconciler) Interval() time.Duration {
	return r.interval
}

// BeginPoll marks a poll as in flight.
// It returns false when the previous poll has not completed yet.
func (r *StatusReconciler) BeginPoll() bool {
	if r.inFlight {
		return false
	}
	r.inFlight = true
	return true
}

// InFlight reports whether a poll is outstanding
func (r *StatusReconciler) InFlight() bool {
	return r.inFlight
}

// Complete folds a successful snapshot.
// Only a running to idle edge asks for a tree refresh.
func (r *StatusReconciler) Complete(snapshot *domain.PipelineStatus) Reconciliation {
	r.inFlight = false
	if snapshot == nil {
		return Reconciliation{}
	}

	result := Reconciliation{
		Changed:     changedPhases(r.latest, snapshot),
		Finished:    domain.RefreshNeeded(r.previousIsRunning, snapshot.IsRunning),
		RefreshTree: domain.RefreshNeeded(r.previousIsRunning, snapshot.IsRunning),
		Started:     !r.previousIsRunning && snapshot.IsRunning,
	}

	r.latest = snapshot
	r.previousIsRunning = snapshot.IsRunning
	r.lastErr = nil
	r.failures = 0
	return result
}

// Fail records a failed poll. The snapshot and running flag are kept.
func (r *StatusReconciler) Fail(err error) {
	r.inFlight = false
	r.lastErr = err
	r.failures++
}

// Latest returns the last applied snapshot, or nil before the first success
func (r *StatusReconciler) Latest() *domain.PipelineStatus {
	return r.latest
}

// IsRunning returns the running flag of the last applied snapshot
func (r *StatusReconciler) IsRunning() bool {
	return r.previousIsRunning
}

// LastError returns the error of the most recent poll, nil after a success
func (r *StatusReconciler) LastError() error {
	return r.lastErr
}

// ConsecutiveFailures counts failed polls since the last success
func (r *StatusReconciler) ConsecutiveFailures() int {
	return r.failures
}

func changedPhases(prev, cur *domain.PipelineStatus) []domain.PhaseStatus {
	var changed []domain.PhaseStatus
	for _, phase := range cur.Phases {
		if prev != nil {
			if old, ok := prev.Phase(phase.Name); ok && old == phase.State {
				continue
			}
		}
		changed = append(changed, phase)
	}
	return changed
}
