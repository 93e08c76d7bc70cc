// Package builder stages a Java compilation unit into an ephemeral
// workspace, drives the external compiler and archiver, and reports a single
// terminal outcome per build. It owns no state between builds beyond the
// workspace directory, which it clears on entry and removes on exit.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultCompiler is the compiler binary used when none is configured.
	DefaultCompiler = "javac"

	// DefaultArchiver is the archiver binary used when none is configured.
	DefaultArchiver = "jar"
)

// LogFunc receives human-readable progress lines during a build: composed
// command lines, stage transitions, and the final outcome, in chronological
// order. Invoked zero or more times before Build returns.
type LogFunc func(line string)

// Builder runs the compile-and-package pipeline. A single Builder is safe to
// reuse across sequential builds; overlapping builds are fine as long as they
// do not pin the same WorkspaceDir.
type Builder struct {
	compiler string
	archiver string
	runner   Runner
	log      LogFunc
}

// New creates a Builder. Empty tool names fall back to DefaultCompiler and
// DefaultArchiver; a nil runner falls back to the os/exec runner; a nil log
// function discards progress lines.
func New(compiler, archiver string, runner Runner, log LogFunc) *Builder {
	if compiler == "" {
		compiler = DefaultCompiler
	}
	if archiver == "" {
		archiver = DefaultArchiver
	}
	if runner == nil {
		runner = NewRunner()
	}
	if log == nil {
		log = func(string) {}
	}
	return &Builder{
		compiler: compiler,
		archiver: archiver,
		runner:   runner,
		log:      log,
	}
}

// Build runs one build to completion and returns its outcome. It is
// synchronous: it blocks for the duration of both tool invocations. Callers
// that need to stay responsive run it from their own goroutine.
//
// The workspace path is resolved before anything else so that every later
// step, including cleanup, has a bound path to work with. The workspace is
// removed on every exit path; a cleanup failure after a successful build is
// reported through the log sink but never masks the outcome.
func (b *Builder) Build(ctx context.Context, req *Request) *Outcome {
	if err := req.Validate(); err != nil {
		return failure(StageValidate, err.Error())
	}

	workspace := req.WorkspaceDir
	if workspace == "" {
		workspace = defaultWorkspacePath()
	}

	b.logf("Preparing workspace: %s", workspace)
	if err := prepareWorkspace(workspace); err != nil {
		return failure(StageInternal, err.Error())
	}

	outcome := b.run(ctx, req, workspace)

	if err := removeWorkspace(workspace); err != nil {
		b.logf("Warning: %v", err)
	}

	return outcome
}

// run executes the pipeline inside a prepared workspace. Cleanup belongs to
// the caller (Build), so every path here may return without touching the
// workspace tree.
func (b *Builder) run(ctx context.Context, req *Request, workspace string) *Outcome {
	// Materialize the source file.
	sourceFile := filepath.Join(workspace, req.MainClass+SourceExtension)
	if err := os.WriteFile(sourceFile, []byte(req.SourceText), 0644); err != nil {
		return failure(StageInternal, fmt.Sprintf("failed to write source file: %v", err))
	}

	// Stage dependencies: absolute paths on the compiler's classpath.
	classpath := make([]string, 0, len(req.Dependencies))
	for _, dep := range req.Dependencies {
		abs, err := filepath.Abs(dep)
		if err != nil {
			return failure(StageInternal, fmt.Sprintf("failed to resolve dependency %s: %v", dep, err))
		}
		classpath = append(classpath, abs)
	}

	// Compile.
	compileArgs := []string{"-d", workspace}
	if len(classpath) > 0 {
		compileArgs = append(compileArgs, "-cp", strings.Join(classpath, string(os.PathListSeparator)))
	}
	compileArgs = append(compileArgs, sourceFile)

	b.logf("Compile command: %s %s", b.compiler, strings.Join(compileArgs, " "))
	result, err := b.runner.Run(ctx, b.compiler, compileArgs...)
	if err != nil {
		return failure(StageInternal, err.Error())
	}
	if result.ExitCode != 0 {
		b.logf("Compilation failed (exit code %d)", result.ExitCode)
		return failure(StageCompile, result.Stderr)
	}
	b.logf("Compilation successful")

	// Write the manifest.
	manifest := newManifest(req)
	manifestPath := filepath.Join(workspace, ManifestFileName)
	if err := os.WriteFile(manifestPath, []byte(manifest.Render()), 0644); err != nil {
		return failure(StageInternal, fmt.Sprintf("failed to write manifest: %v", err))
	}

	// Package.
	outputAbs, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return failure(StageInternal, fmt.Sprintf("failed to resolve output path: %v", err))
	}
	archiveArgs := []string{"cfm", outputAbs, manifestPath, "-C", workspace, "."}

	b.logf("Archive command: %s %s", b.archiver, strings.Join(archiveArgs, " "))
	result, err = b.runner.Run(ctx, b.archiver, archiveArgs...)
	if err != nil {
		return failure(StageInternal, err.Error())
	}
	if result.ExitCode != 0 {
		b.logf("Archive creation failed (exit code %d)", result.ExitCode)
		return failure(StagePackage, result.Stderr)
	}

	b.logf("Created archive: %s", req.OutputPath)
	return success(req.OutputPath)
}

func (b *Builder) logf(format string, a ...any) {
	b.log(fmt.Sprintf(format, a...))
}
