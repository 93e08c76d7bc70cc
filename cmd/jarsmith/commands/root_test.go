package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	expected := []string{"build", "detect", "doctor", "init", "watch"}

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range expected {
		assert.Contains(t, names, want)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "1.2.3 (commit: abc123, built: 2026-01-01)", rootCmd.Version)
}

func TestRootCommand_SilencesCobraOutput(t *testing.T) {
	assert.True(t, rootCmd.SilenceErrors)
	assert.True(t, rootCmd.SilenceUsage)
}
