package domain

import (
	"sort"
	"strings"
)

// PhaseState is the progress of one pipeline phase
type PhaseState string

const (
	PhaseComplete PhaseState = "complete"
	PhaseFailed   PhaseState = "failed"
	PhasePending  PhaseState = "pending"
	PhaseRunning  PhaseState = "running"
)

// ParsePhaseState maps a wire value to a PhaseState, defaulting to pending
func ParsePhaseState(value string) PhaseState {
	switch PhaseState(strings.ToLower(strings.TrimSpace(value))) {
	case PhaseComplete:
		return PhaseComplete
	case PhaseFailed:
		return PhaseFailed
	case PhaseRunning:
		return PhaseRunning
	default:
		return PhasePending
	}
}

// DefaultPhases is the phase order of the build pipeline
var DefaultPhases = []string{"Vision", "Architect", "Developer", "Debug", "Optimization", "Sustainability"}

// PhaseStatus is a named phase and its state
type PhaseStatus struct {
	Name  string
	State PhaseState
}

// Artifacts holds the pipeline results, present only once the pipeline is idle
type Artifacts struct {
	Blueprint           string
	CognitiveReport     string
	DebugReport         string
	FilesCreated        []string
	OptimizationReport  string
	SustainabilityAudit string
	Vision              string
}

// IsEmpty reports whether no artifact carries content
func (a *Artifacts) IsEmpty() bool {
	if a == nil {
		return true
	}
	return a.Vision == "" && a.Blueprint == "" && len(a.FilesCreated) == 0 &&
		a.DebugReport == "" && a.OptimizationReport == "" &&
		a.CognitiveReport == "" && a.SustainabilityAudit == ""
}

// PipelineStatus is one snapshot of the remote pipeline
type PipelineStatus struct {
	Artifacts   *Artifacts
	IsRunning   bool
	Logs        []string
	Phases      []PhaseStatus
	Progress    int
	StatusLabel string
}

// Phase returns the state of the named phase
func (s *PipelineStatus) Phase(name string) (PhaseState, bool) {
	for _, p := range s.Phases {
		if p.Name == name {
			return p.State, true
		}
	}
	return "", false
}

// ClampProgress bounds a percentage to 0..100
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// OrderPhases turns the raw phase mapping into a slice ordered by known.
// Keys not in known are appended in lexical order.
func OrderPhases(raw map[string]string, known []string) []PhaseStatus {
	phases := make([]PhaseStatus, 0, len(raw))
	seen := make(map[string]bool, len(known))
	for _, name := range known {
		value, ok := raw[name]
		if !ok {
			continue
		}
		seen[name] = true
		phases = append(phases, PhaseStatus{Name: name, State: ParsePhaseState(value)})
	}

	var extra []string
	for name := range raw {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		phases = append(phases, PhaseStatus{Name: name, State: ParsePhaseState(raw[name])})
	}
	return phases
}

// RefreshNeeded reports whether a running-to-idle edge was observed.
// It is the only transition that requires a tree refresh.
func RefreshNeeded(previousIsRunning, currentIsRunning bool) bool {
	return previousIsRunning && !currentIsRunning
}
