package builder

// Stage identifies which part of the pipeline produced a failure.
type Stage string

const (
	// StageValidate covers request-field failures caught before any
	// process is spawned.
	StageValidate Stage = "validate"

	// StageCompile covers a non-zero exit from the external compiler.
	StageCompile Stage = "compile"

	// StagePackage covers a non-zero exit from the external archiver.
	StagePackage Stage = "package"

	// StageInternal covers workspace and file-write faults not
	// attributable to the external tools.
	StageInternal Stage = "internal"
)

// Outcome is the terminal result of one Build call. Either the archive exists
// at ArchivePath, or Stage and Diagnostic describe why it does not. There is
// no partial-success state.
type Outcome struct {
	// ArchivePath is set on success: the path the archive was written to.
	ArchivePath string

	// Stage is set on failure.
	Stage Stage

	// Diagnostic is the failing tool's error-stream text, verbatim, or an
	// internal error message. Callers display it unmodified.
	Diagnostic string
}

// Succeeded reports whether the build produced the archive.
func (o *Outcome) Succeeded() bool {
	return o.Stage == ""
}

func success(archivePath string) *Outcome {
	return &Outcome{ArchivePath: archivePath}
}

func failure(stage Stage, diagnostic string) *Outcome {
	return &Outcome{Stage: stage, Diagnostic: diagnostic}
}
