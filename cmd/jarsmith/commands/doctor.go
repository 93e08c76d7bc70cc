package commands

import (
	"jarsmith/internal/builder"
	"jarsmith/internal/config"
	"jarsmith/internal/printer"
	"jarsmith/internal/toolchain"

	"github.com/spf13/cobra"
)

var doctorConfigPath string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Java toolchain is available",
	Long: `Probe the configured compiler and archiver binaries and report their
versions. Builds will fail without both tools on PATH.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVarP(&doctorConfigPath, "config", "c", config.DefaultFileName, "Path to jarsmith.yml")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadIfPresent(doctorConfigPath)
	if err != nil {
		return printer.Error("invalid configuration", err.Error(), nil)
	}

	compiler := cfg.Compiler()
	if compiler == "" {
		compiler = builder.DefaultCompiler
	}
	archiver := cfg.Archiver()
	if archiver == "" {
		archiver = builder.DefaultArchiver
	}

	report := toolchain.Probe(compiler, archiver)

	printTool("compiler", report.Compiler)
	printTool("archiver", report.Archiver)

	if !report.Ready() {
		return printer.Error(
			"Java toolchain not found",
			"Jarsmith shells out to the JDK compiler and archiver; both must be on PATH.",
			[]string{
				"Install a JDK: https://adoptium.net/",
				"Or point jarsmith.yml at the binaries:\n  toolchain:\n    compiler: /path/to/javac\n    archiver: /path/to/jar",
			},
		)
	}

	return nil
}

func printTool(role string, tool toolchain.Tool) {
	if tool.Found {
		printer.Success("%s: %s (%s)\n", role, tool.Name, tool.Version)
	} else {
		printer.Warning("%s: %s not found\n", role, tool.Name)
	}
}
