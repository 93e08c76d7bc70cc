package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// maxOutputSize is the maximum number of bytes captured from a tool's
// stdout/stderr (10MB). Output past the limit is discarded, not buffered.
const maxOutputSize = 10 * 1024 * 1024

// RunResult captures one external tool invocation. A non-zero ExitCode is a
// normal result, not a Go error; the pipeline decides what it means.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes an external tool and captures its output. Tests substitute
// a stub; production uses NewRunner.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*RunResult, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

// NewRunner returns the Runner used outside of tests.
func NewRunner() Runner {
	return &execRunner{}
}

// Run spawns the tool and waits for it to exit. The returned error is non-nil
// only when the process could not be started or was interrupted by the
// context; a tool that runs to completion with a non-zero status is reported
// through ExitCode with its captured stderr intact.
func (r *execRunner) Run(ctx context.Context, name string, args ...string) (*RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	stdoutBuf := &bytes.Buffer{}
	stderrBuf := &bytes.Buffer{}
	cmd.Stdout = &limitedWriter{w: stdoutBuf, limit: maxOutputSize}
	cmd.Stderr = &limitedWriter{w: stderrBuf, limit: maxOutputSize}

	err := cmd.Run()

	result := &RunResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if ctx.Err() != nil {
			return result, fmt.Errorf("tool %s interrupted: %w", name, ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to start %s: %w", name, err)
	}

	return result, nil
}

// limitedWriter wraps a writer and enforces a size limit. Once the limit is
// reached, further writes are discarded.
type limitedWriter struct {
	w       io.Writer
	limit   int
	written int
}

func (lw *limitedWriter) Write(p []byte) (n int, err error) {
	remaining := lw.limit - lw.written
	if remaining <= 0 {
		return len(p), nil
	}

	toWrite := p
	if len(p) > remaining {
		toWrite = p[:remaining]
	}

	n, err = lw.w.Write(toWrite)
	lw.written += n
	return len(p), err // report full length so the process never sees a short write
}
