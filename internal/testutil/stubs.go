// Package testutil provides helpers for tests that exercise real external
// processes. Stub tools are small shell scripts written into a temp
// directory, standing in for the compiler and archiver binaries.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteStubTool writes an executable shell script named name into dir and
// returns its path. The script body is the tool's behavior; tests typically
// echo to stderr and exit with a chosen code. Skips the test on Windows,
// where the stub scripts cannot run.
func WriteStubTool(t *testing.T, dir, name, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub tools require a POSIX shell")
	}

	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("failed to write stub tool %s: %v", name, err)
	}
	return path
}
