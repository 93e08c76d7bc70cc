package commands

import (
	"errors"

	"jarsmith/internal/detect"
	"jarsmith/internal/printer"

	"github.com/spf13/cobra"
)

var detectSource string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the main class detected in a Java source file",
	Long: `Scan a Java source file for its first public class declaration and
print the class name. This is the same detection 'jarsmith build' uses
when --main-class is omitted.

Examples:
  jarsmith detect --source Hello.java
  cat Hello.java | jarsmith detect -s -`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectSource, "source", "s", "", "Java source file ('-' reads stdin)")
	detectCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	sourceText, err := readSource(detectSource)
	if err != nil {
		return printer.Error("failed to read source", err.Error(), nil)
	}

	name, err := detect.MainClass(sourceText)
	if errors.Is(err, detect.ErrNoMatch) {
		return printer.Error(
			"no public class declaration found",
			"The source contains no 'public class <Name>' declaration.",
			nil,
		)
	}
	if err != nil {
		return err
	}

	printer.Println(name)
	return nil
}
