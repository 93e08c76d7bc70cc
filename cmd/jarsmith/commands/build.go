package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"jarsmith/internal/builder"
	"jarsmith/internal/config"
	"jarsmith/internal/detect"
	"jarsmith/internal/printer"

	"github.com/spf13/cobra"
)

var (
	buildConfigPath string
	buildSource     string
	buildMainClass  string
	buildAuthor     string
	buildJars       []string
	buildOutput     string
	buildCompiler   string
	buildArchiver   string
	buildWorkspace  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile a Java source file and package it into a JAR",
	Long: `Compile a single Java source file with the external compiler and
package the compiled classes into a JAR with an embedded manifest.

The main class defaults to the first public class declared in the
source. Values omitted on the command line fall back to jarsmith.yml.

Examples:
  # Build using jarsmith.yml defaults
  jarsmith build

  # Build a specific file
  jarsmith build --source Hello.java --output hello.jar

  # Build from stdin with JAR dependencies
  cat Hello.java | jarsmith build -s - -o hello.jar -j libs/a.jar -j libs/b.jar`,
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

// addBuildFlags registers the flags shared by build and watch.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildConfigPath, "config", "c", config.DefaultFileName, "Path to jarsmith.yml")
	cmd.Flags().StringVarP(&buildSource, "source", "s", "", "Java source file ('-' reads stdin)")
	cmd.Flags().StringVarP(&buildMainClass, "main-class", "m", "", "Entry-point class (detected from source if omitted)")
	cmd.Flags().StringVarP(&buildAuthor, "author", "a", "", "Author recorded in the manifest")
	cmd.Flags().StringArrayVarP(&buildJars, "jar", "j", nil, "JAR dependency (repeatable)")
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output JAR path (default <MainClass>.jar)")
	cmd.Flags().StringVar(&buildCompiler, "compiler", "", "Compiler binary (default javac)")
	cmd.Flags().StringVar(&buildArchiver, "archiver", "", "Archiver binary (default jar)")
	cmd.Flags().StringVar(&buildWorkspace, "workspace", "", "Pin the build workspace directory (default: unique temp dir)")
}

// buildInputs is everything a single build needs, after merging flags over
// the config file.
type buildInputs struct {
	sourcePath string
	request    *builder.Request
	compiler   string
	archiver   string
}

// resolveBuildInputs merges flag values over jarsmith.yml and fills the
// remaining defaults: detected main class, <MainClass>.jar output.
func resolveBuildInputs() (*buildInputs, error) {
	cfg, err := config.LoadIfPresent(buildConfigPath)
	if err != nil {
		return nil, printer.Error(
			"invalid configuration",
			err.Error(),
			[]string{"Fix " + buildConfigPath + " or pass --config with a valid file"},
		)
	}

	sourcePath := buildSource
	if sourcePath == "" {
		sourcePath = cfg.Source
	}
	if sourcePath == "" {
		return nil, printer.Error(
			"no source file specified",
			"Jarsmith needs a Java source file to compile.",
			[]string{
				"Pass one explicitly:\n  jarsmith build --source Hello.java",
				"Or set 'source:' in jarsmith.yml (create one with 'jarsmith init')",
			},
		)
	}

	sourceText, err := readSource(sourcePath)
	if err != nil {
		return nil, printer.Error(
			"failed to read source",
			err.Error(),
			nil,
		)
	}

	mainClass := buildMainClass
	if mainClass == "" {
		mainClass = cfg.MainClass
	}
	if mainClass == "" {
		mainClass, err = detect.MainClass(sourceText)
		if errors.Is(err, detect.ErrNoMatch) {
			return nil, printer.Error(
				"could not detect the main class",
				fmt.Sprintf("No 'public class' declaration found in %s.", sourcePath),
				[]string{"Name it explicitly:\n  jarsmith build --main-class Main"},
			)
		}
		if err != nil {
			return nil, err
		}
	}

	author := buildAuthor
	if author == "" {
		author = cfg.Author
	}

	dependencies := append([]string{}, cfg.Dependencies...)
	dependencies = append(dependencies, buildJars...)

	output := buildOutput
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		output = mainClass + ".jar"
	}

	compiler := buildCompiler
	if compiler == "" {
		compiler = cfg.Compiler()
	}
	archiver := buildArchiver
	if archiver == "" {
		archiver = cfg.Archiver()
	}

	return &buildInputs{
		sourcePath: sourcePath,
		compiler:   compiler,
		archiver:   archiver,
		request: &builder.Request{
			SourceText:   sourceText,
			MainClass:    mainClass,
			Author:       author,
			Dependencies: dependencies,
			OutputPath:   output,
			WorkspaceDir: buildWorkspace,
		},
	}, nil
}

// readSource reads the compilation unit, from stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputs, err := resolveBuildInputs()
	if err != nil {
		return err
	}

	b := builder.New(inputs.compiler, inputs.archiver, nil, printer.Log)
	return executeBuild(cmd.Context(), b, inputs)
}

// executeBuild runs one build and renders its outcome. Shared by build and
// watch.
func executeBuild(ctx context.Context, b *builder.Builder, inputs *buildInputs) error {
	printer.Step("Building %s → %s\n", inputs.request.MainClass, inputs.request.OutputPath)

	outcome := b.Build(ctx, inputs.request)
	if outcome.Succeeded() {
		printer.Success("Created %s\n", outcome.ArchivePath)
		return nil
	}

	switch outcome.Stage {
	case builder.StageValidate:
		return printer.Error("invalid build request", outcome.Diagnostic, nil)
	case builder.StageCompile:
		printer.Diagnostic(outcome.Diagnostic)
		return printer.Error("compilation failed", "", []string{"The compiler's output is shown above."})
	case builder.StagePackage:
		printer.Diagnostic(outcome.Diagnostic)
		return printer.Error("archive creation failed", "", []string{"The archiver's output is shown above."})
	default:
		return printer.Error("build failed", outcome.Diagnostic, nil)
	}
}
