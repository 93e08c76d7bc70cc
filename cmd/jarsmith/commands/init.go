package commands

import (
	"fmt"

	"jarsmith/internal/printer"
	"jarsmith/internal/scaffold"

	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new jarsmith project",
	Long: `Initialize a new jarsmith project in the current directory.

Creates:
  • jarsmith.yml - Project configuration file
  • Hello.java - Example compilation unit

Use --force to reinitialize an existing project (WARNING: overwrites existing files).`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Force reinitialization (overwrites jarsmith.yml and Hello.java)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for existing files (unless --force)
	if !forceInit {
		if err := scaffold.CheckExisting(); err != nil {
			return err
		}
	}

	if err := scaffold.Initialize(forceInit); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	printer.Success("Project initialized\n")
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Edit Hello.java\n")
	printer.Info("  2. Run 'jarsmith build'\n")

	return nil
}
