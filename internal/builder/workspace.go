package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// defaultWorkspacePath allocates a unique workspace path under the system
// temp directory. Uniqueness per call is what lets concurrent builds with
// default workspaces coexist without locking.
func defaultWorkspacePath() string {
	return filepath.Join(os.TempDir(), "jarsmith-build-"+uuid.New().String())
}

// prepareWorkspace clears any leftover directory at path (a crashed prior run
// may have left one) and creates it fresh and empty.
func prepareWorkspace(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clear workspace %s: %w", path, err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", path, err)
	}
	return nil
}

// removeWorkspace deletes the workspace tree. Called unconditionally on every
// exit path of a build.
func removeWorkspace(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove workspace %s: %w", path, err)
	}
	return nil
}
