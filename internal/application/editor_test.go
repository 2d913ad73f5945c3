package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/domain"
)

func TestEditorController_OpenDiscardsUnsavedEdits(t *testing.T) {
	c := NewEditorController()

	x, err := c.BeginOpen("x.py")
	require.NoError(t, err)
	require.True(t, c.CompleteOpen(x, "print(1)"))
	c.Edit("print(2)")
	assert.True(t, c.Dirty())

	y, err := c.BeginOpen("y.py")
	require.NoError(t, err)
	require.True(t, c.CompleteOpen(y, "pass"))

	assert.Equal(t, "y.py", c.Session().OpenPath)
	assert.Equal(t, "pass", c.Session().BufferContent)
	assert.False(t, c.Dirty())
}

func TestEditorController_StaleOpenIsDropped(t *testing.T) {
	c := NewEditorController()

	first, _ := c.BeginOpen("slow.py")
	second, _ := c.BeginOpen("fast.py")

	assert.True(t, c.CompleteOpen(second, "fast"))
	assert.False(t, c.CompleteOpen(first, "slow"))
	assert.Equal(t, "fast.py", c.Session().OpenPath)
	assert.Equal(t, "fast", c.Session().BufferContent)
}

func TestEditorController_BeginOpenRejectsBlankPath(t *testing.T) {
	c := NewEditorController()

	_, err := c.BeginOpen("  ")
	assert.ErrorIs(t, err, domain.ErrEmptyPath)
}

func TestEditorController_SaveRequiresOpenFile(t *testing.T) {
	c := NewEditorController()

	_, _, err := c.PrepareSave()
	assert.ErrorIs(t, err, domain.ErrNothingOpen)

	c.Edit("ignored")
	assert.Empty(t, c.Session().BufferContent)
}

func TestEditorController_CompleteSaveClearsDirty(t *testing.T) {
	c := NewEditorController()
	ticket, _ := c.BeginOpen("a.py")
	c.CompleteOpen(ticket, "a")
	c.Edit("b")

	path, content, err := c.PrepareSave()
	require.NoError(t, err)
	assert.Equal(t, "a.py", path)
	assert.Equal(t, "b", content)

	c.CompleteSave(path, content)
	assert.False(t, c.Dirty())
}

func TestEditorController_CloseInvalidatesPendingOpen(t *testing.T) {
	c := NewEditorController()
	ticket, _ := c.BeginOpen("a.py")

	c.Close()

	assert.False(t, c.CompleteOpen(ticket, "a"))
	assert.False(t, c.HasOpen())
}

func TestEditorController_DiffStats(t *testing.T) {
	tests := []struct {
		name     string
		saved    string
		buffer   string
		expected DiffStats
	}{
		{"unchanged", "a\nb\n", "a\nb\n", DiffStats{}},
		{"replaced line", "a\nb\n", "a\nc\n", DiffStats{Added: 1, Removed: 1}},
		{"appended lines", "a\n", "a\nb\nc\n", DiffStats{Added: 2}},
		{"removed line", "a\nb\nc\n", "a\nc\n", DiffStats{Removed: 1}},
		{"no trailing newline", "a\nb", "a\nc", DiffStats{Added: 1, Removed: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEditorController()
			ticket, _ := c.BeginOpen("f.txt")
			c.CompleteOpen(ticket, tt.saved)
			c.Edit(tt.buffer)

			stats := c.DiffStats()
			assert.Equal(t, tt.expected, stats)
			assert.Equal(t, tt.expected == DiffStats{}, stats.IsZero())
		})
	}
}
