package builder

import (
	"fmt"
	"os"
	"regexp"
)

const (
	// DefaultAuthor is recorded in the manifest when the request does not
	// name an author.
	DefaultAuthor = "Unknown"

	// SourceExtension is the file extension the external compiler expects.
	SourceExtension = ".java"
)

// classNamePattern is the regex pattern for a valid main class identifier.
// Letters, digits and underscores, not starting with a digit. The identifier
// doubles as the staged source file's base name.
var classNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Request describes a single build: the source text for one compilation unit,
// the class to declare as the archive's entry point, and where the resulting
// JAR should land.
type Request struct {
	// SourceText is the full text of the compilation unit. Written verbatim
	// (UTF-8) into the workspace as <MainClass>.java.
	SourceText string

	// MainClass is the entry-point class name. Required; must be a valid
	// identifier.
	MainClass string

	// Author is recorded in the manifest. Blank means DefaultAuthor.
	Author string

	// Dependencies are paths to JAR files placed on the compiler's
	// classpath. Each must reference an existing file.
	Dependencies []string

	// OutputPath is where the archiver writes the final JAR.
	OutputPath string

	// WorkspaceDir optionally pins the build workspace to a fixed path.
	// When empty a unique temporary path is chosen per build, so callers
	// that leave it blank never collide. Callers that pin it must
	// serialize their builds.
	WorkspaceDir string
}

// Validate checks the request fields before any external process is spawned.
func (r *Request) Validate() error {
	if r.SourceText == "" {
		return fmt.Errorf("source text is empty")
	}

	if r.MainClass == "" {
		return fmt.Errorf("main class is required")
	}
	if !classNamePattern.MatchString(r.MainClass) {
		return fmt.Errorf("invalid main class '%s': must be letters, digits or underscores, not starting with a digit", r.MainClass)
	}

	if r.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}

	for _, dep := range r.Dependencies {
		info, err := os.Stat(dep)
		if err != nil {
			return fmt.Errorf("dependency not found: %s", dep)
		}
		if info.IsDir() {
			return fmt.Errorf("dependency is a directory, not an archive: %s", dep)
		}
	}

	return nil
}

// author returns the effective author for the manifest.
func (r *Request) author() string {
	if r.Author == "" {
		return DefaultAuthor
	}
	return r.Author
}
