package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifestRender_NoDependencies(t *testing.T) {
	req := &Request{
		SourceText: "public class Hello { }",
		MainClass:  "Hello",
		OutputPath: "out.jar",
	}

	m := newManifest(req)
	assert.Equal(t, "Manifest-Version: 1.0\nMain-Class: Hello\nAuthor: Unknown\n", m.Render())
}

func TestManifestRender_WithClassPath(t *testing.T) {
	req := &Request{
		MainClass:    "App",
		Author:       "Jane",
		Dependencies: []string{"/libs/a.jar", "/libs/b.jar"},
	}

	m := newManifest(req)
	assert.Equal(t, "Manifest-Version: 1.0\nMain-Class: App\nAuthor: Jane\nClass-Path: a.jar b.jar\n", m.Render())
}

func TestManifestRender_DeduplicatesByBaseName(t *testing.T) {
	req := &Request{
		MainClass:    "App",
		Author:       "Jane",
		Dependencies: []string{"/libs/a.jar", "/other/a.jar", "/libs/b.jar"},
	}

	m := newManifest(req)
	assert.Equal(t, []string{"a.jar", "b.jar"}, m.ClassPath)
}

func TestManifestRender_Deterministic(t *testing.T) {
	req := &Request{
		MainClass:    "App",
		Author:       "Jane",
		Dependencies: []string{"/libs/a.jar", "/libs/b.jar"},
	}

	first := newManifest(req).Render()
	second := newManifest(req).Render()
	assert.Equal(t, first, second)
}
