package scaffold

import (
	"fmt"
	"os"
)

// CheckExisting checks whether project files already exist in the current
// directory. Returns an error naming them if so, nil otherwise.
func CheckExisting() error {
	var existing []string

	for _, name := range projectFiles {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}

	if len(existing) > 0 {
		errMsg := "project already initialized\n\nFound existing"
		if len(existing) == 1 {
			errMsg += fmt.Sprintf(": %s", existing[0])
		} else {
			errMsg += " files:\n"
			for _, file := range existing {
				errMsg += fmt.Sprintf("  - %s\n", file)
			}
		}
		errMsg += "\nUse 'jarsmith init --force' to reinitialize (this will overwrite existing files)"

		return fmt.Errorf("%s", errMsg)
	}

	return nil
}
