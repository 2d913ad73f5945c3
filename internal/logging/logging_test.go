package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledByDefault(t *testing.T) {
	t.Setenv("AURA_DEBUG", "")
	t.Setenv("AURA_DEBUG_FILE", "")

	path, err := Initialize(false, "", 1000)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("AURA_DEBUG", "1")
	t.Setenv("AURA_DEBUG_FILE", "")
	logPath := filepath.Join(t.TempDir(), "logs", "aura.log")

	path, err := Initialize(false, logPath, 1000)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close() })
	assert.Equal(t, logPath, path)

	Logger.Info("hello", "k", "v")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "keep.txt"}, names)
}
