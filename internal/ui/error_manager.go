package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg fires after the clear delay. Generation ties it to the error
// it was scheduled for, so a newer error is not wiped early.
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error shown in the footer and clears it after a delay
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError replaces the current error and returns the command that clears it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.generation++
	return em.clearAfterDelay()
}

func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

func (em *ErrorManager) GetError() error {
	return em.currentError
}

func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// handleClear clears the error if msg belongs to the current one
func (em *ErrorManager) handleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.currentError = nil
	}
}

func (em *ErrorManager) clearAfterDelay() tea.Cmd {
	generation := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}
