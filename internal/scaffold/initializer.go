// Package scaffold creates a starter jarsmith project: a jarsmith.yml
// config and an example Hello.java, both from embedded templates.
package scaffold

import (
	"embed"
	"fmt"
	"os"

	"jarsmith/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// projectFiles maps template names to the paths they are written to.
var projectFiles = []string{"jarsmith.yml", "Hello.java"}

// Initialize creates the jarsmith project structure in the current
// directory. If force is true, existing project files are overwritten.
func Initialize(force bool) error {
	if force {
		if err := handleForce(); err != nil {
			return err
		}
	}

	for _, name := range projectFiles {
		content, err := templatesFS.ReadFile("templates/" + name)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", name, err)
		}
		if err := os.WriteFile(name, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return validateCreatedFiles()
}

// handleForce removes existing project files before reinitializing.
func handleForce() error {
	for _, name := range projectFiles {
		if _, err := os.Stat(name); err == nil {
			fmt.Printf("⚠️  Removing existing %s...\n", name)
			if err := os.Remove(name); err != nil {
				return fmt.Errorf("failed to remove %s: %w", name, err)
			}
		}
	}
	return nil
}

// validateCreatedFiles confirms the scaffolded config actually loads, so a
// broken template never ships a broken project.
func validateCreatedFiles() error {
	if _, err := config.Load(config.DefaultFileName); err != nil {
		return fmt.Errorf("scaffolded config failed validation: %w", err)
	}
	return nil
}
