package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"jarsmith/internal/builder"
	"jarsmith/internal/printer"
	"jarsmith/internal/watch"

	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the JAR whenever the source file changes",
	Long: `Build once, then keep watching the source file and rebuild after
every save. Builds are serialized; a burst of rapid saves collapses
into a single rebuild. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	addBuildFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period after the last change before rebuilding")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	inputs, err := resolveBuildInputs()
	if err != nil {
		return err
	}
	if inputs.sourcePath == "-" {
		return printer.Error(
			"cannot watch stdin",
			"Watch mode needs a source file on disk to observe.",
			[]string{"Pass a file path:\n  jarsmith watch --source Hello.java"},
		)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := builder.New(inputs.compiler, inputs.archiver, nil, printer.Log)

	// Initial build; watch continues even when it fails, since the next
	// save may fix it.
	if err := executeBuild(ctx, b, inputs); err != nil {
		printer.Warning("Waiting for changes to retry...\n")
	}

	printer.Info("Watching %s (Ctrl-C to stop)\n", inputs.sourcePath)

	err = watch.Run(ctx, inputs.sourcePath, watchDebounce, func() {
		// Re-resolve so source edits, config changes, and a renamed
		// main class are all picked up.
		fresh, err := resolveBuildInputs()
		if err != nil {
			return
		}
		if err := executeBuild(ctx, b, fresh); err != nil {
			printer.Warning("Waiting for changes to retry...\n")
		}
	})

	if errors.Is(err, context.Canceled) {
		printer.Info("\nStopped.\n")
		return nil
	}
	return err
}
