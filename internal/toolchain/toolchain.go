// Package toolchain probes the external Java toolchain: whether the compiler
// and archiver binaries can be found and what versions they report. Used by
// `jarsmith doctor` and as a pre-flight warning before builds.
package toolchain

import (
	"bytes"
	"os/exec"
	"strings"
)

// Tool describes one probed binary.
type Tool struct {
	// Name is the binary that was probed, as configured (e.g. "javac").
	Name string

	// Found reports whether the binary could be located and executed.
	Found bool

	// Version is the version string the tool reported, or empty when the
	// probe failed.
	Version string
}

// Report covers both halves of the toolchain.
type Report struct {
	Compiler Tool
	Archiver Tool
}

// Ready reports whether both tools are available.
func (r *Report) Ready() bool {
	return r.Compiler.Found && r.Archiver.Found
}

// Probe checks both toolchain binaries. A missing binary is reported in the
// result, not returned as an error.
func Probe(compiler, archiver string) *Report {
	return &Report{
		Compiler: probeTool(compiler, "-version"),
		Archiver: probeTool(archiver, "--version"),
	}
}

// probeTool runs the binary with its version flag. Older JDK tools print the
// version on stderr, newer ones on stdout, so stderr is preferred and stdout
// is the fallback.
func probeTool(name, versionFlag string) Tool {
	tool := Tool{Name: name}

	cmd := exec.Command(name, versionFlag)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return tool
	}

	tool.Found = true
	tool.Version = strings.TrimSpace(stderr.String())
	if tool.Version == "" {
		tool.Version = strings.TrimSpace(stdout.String())
	}
	return tool
}
