package scaffold

import (
	"os"
	"testing"

	"jarsmith/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesProjectFiles(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, Initialize(false))

	cfg, err := config.Load("jarsmith.yml")
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "javac", cfg.Compiler())
	assert.Equal(t, "Hello.java", cfg.Source)

	source, err := os.ReadFile("Hello.java")
	require.NoError(t, err)
	assert.Contains(t, string(source), "public class Hello")
}

func TestInitialize_ForceOverwrites(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("jarsmith.yml", []byte("garbage"), 0644))

	require.NoError(t, Initialize(true))

	cfg, err := config.Load("jarsmith.yml")
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
}

func TestCheckExisting_CleanDirectory(t *testing.T) {
	chdir(t, t.TempDir())

	assert.NoError(t, CheckExisting())
}

func TestCheckExisting_ReportsExistingFiles(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("jarsmith.yml", []byte("version: \"1.0\"\n"), 0644))

	err := CheckExisting()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jarsmith.yml")
	assert.Contains(t, err.Error(), "--force")
}
