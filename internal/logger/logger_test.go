package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Debug("d")
		Info("i")
		Warn("w", "k", 1)
		Error("e")
	})
}

func TestInitWritesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Config{Dir: dir}))
	t.Cleanup(func() { Logger = nil })

	Warn("storage slow", "ms", 120)

	b, err := os.ReadFile(filepath.Join(dir, "tada.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "storage slow")
	assert.Contains(t, string(b), "ms=120")
}
