package builder

import (
	"path/filepath"
	"strings"
)

const (
	// ManifestFileName is the fixed name of the manifest inside the
	// workspace, matching what the archiver embeds.
	ManifestFileName = "MANIFEST.MF"

	// manifestVersion is the fixed version tag on the first manifest line.
	manifestVersion = "1.0"
)

// Manifest is the metadata block embedded in the archive. Derived
// deterministically from a Request: identical fields always render to
// byte-identical text.
type Manifest struct {
	MainClass string
	Author    string

	// ClassPath holds dependency base names, in request order,
	// deduplicated. Empty means the Class-Path line is omitted entirely.
	ClassPath []string
}

// newManifest builds the manifest record for a request. Dependency paths are
// reduced to base names and deduplicated; order follows the request.
func newManifest(req *Request) *Manifest {
	m := &Manifest{
		MainClass: req.MainClass,
		Author:    req.author(),
	}

	seen := make(map[string]bool)
	for _, dep := range req.Dependencies {
		base := filepath.Base(dep)
		if seen[base] {
			continue
		}
		seen[base] = true
		m.ClassPath = append(m.ClassPath, base)
	}

	return m
}

// Render serializes the manifest as line-oriented "Key: Value" pairs in fixed
// order: version tag, main class, author, then the optional class path.
func (m *Manifest) Render() string {
	var b strings.Builder
	b.WriteString("Manifest-Version: " + manifestVersion + "\n")
	b.WriteString("Main-Class: " + m.MainClass + "\n")
	b.WriteString("Author: " + m.Author + "\n")
	if len(m.ClassPath) > 0 {
		b.WriteString("Class-Path: " + strings.Join(m.ClassPath, " ") + "\n")
	}
	return b.String()
}
