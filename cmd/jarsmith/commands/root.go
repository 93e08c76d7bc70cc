package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jarsmith",
	Short: "Jarsmith - compile Java source into a runnable JAR",
	Long: `Jarsmith compiles a single Java compilation unit with the external
JDK toolchain and packages the result into a JAR with an embedded
manifest (Main-Class, Author, and an optional Class-Path of JAR
dependencies).

The main class is detected from the source when not named explicitly,
and a jarsmith.yml file can hold per-project defaults so builds run
without flags.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	// Silence Cobra's default error and usage printing; errors are
	// rendered by the printer package before they reach Cobra.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
