package toolchain

import (
	"testing"

	"jarsmith/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestProbe_BothToolsFound(t *testing.T) {
	dir := t.TempDir()
	compiler := testutil.WriteStubTool(t, dir, "fake-javac", `echo "javac 21.0.2" >&2`)
	archiver := testutil.WriteStubTool(t, dir, "fake-jar", `echo "jar 21.0.2"`)

	report := Probe(compiler, archiver)

	assert.True(t, report.Ready())
	assert.True(t, report.Compiler.Found)
	assert.Equal(t, "javac 21.0.2", report.Compiler.Version)
	assert.True(t, report.Archiver.Found)
	assert.Equal(t, "jar 21.0.2", report.Archiver.Version)
}

func TestProbe_StderrPreferredOverStdout(t *testing.T) {
	dir := t.TempDir()
	compiler := testutil.WriteStubTool(t, dir, "fake-javac", `echo "stdout text"
echo "javac 1.8.0_392" >&2`)
	archiver := testutil.WriteStubTool(t, dir, "fake-jar", `echo "jar 1.8"`)

	report := Probe(compiler, archiver)

	assert.Equal(t, "javac 1.8.0_392", report.Compiler.Version)
}

func TestProbe_MissingCompiler(t *testing.T) {
	dir := t.TempDir()
	archiver := testutil.WriteStubTool(t, dir, "fake-jar", `echo "jar 21"`)

	report := Probe("/nonexistent/javac", archiver)

	assert.False(t, report.Ready())
	assert.False(t, report.Compiler.Found)
	assert.Empty(t, report.Compiler.Version)
	assert.True(t, report.Archiver.Found)
}

func TestProbe_NonZeroExitMeansNotFound(t *testing.T) {
	dir := t.TempDir()
	compiler := testutil.WriteStubTool(t, dir, "broken-javac", `exit 2`)
	archiver := testutil.WriteStubTool(t, dir, "fake-jar", `echo "jar 21"`)

	report := Probe(compiler, archiver)

	assert.False(t, report.Compiler.Found)
}
