package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_WritesDebugLog(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	dir := filepath.Join(t.TempDir(), "memo")
	require.NoError(t, Initialize(dir))

	Logger.Infow("composed note", "title", "Groceries")
	_ = Close()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "composed note")
	assert.Contains(t, string(data), "Groceries")
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	before := Logger
	require.NoError(t, Initialize(""))
	assert.Same(t, before, Logger)
}
