package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorManager_StaleClearKeepsNewerError(t *testing.T) {
	em := NewErrorManager(time.Millisecond)

	first := em.SetError(errors.New("first"))
	require.NotNil(t, first)
	em.SetError(errors.New("second"))

	em.handleClear(first().(clearErrorMsg))
	require.True(t, em.HasError())
	assert.EqualError(t, em.GetError(), "second")

	em.handleClear(clearErrorMsg{generation: em.generation})
	assert.False(t, em.HasError())
}
