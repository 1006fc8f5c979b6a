package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipper-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/snipper-cli/internal/logger"
)

// watchInterval is the minimum time between two reconciliation passes
// in watch mode, however many filesystem events arrive.
var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run reconciliation whenever the trees change",
	Long: `Watches the source, document and target directories and re-runs a
complete reconciliation pass after every burst of changes. Each pass
re-evaluates the full snippet set; there is no incremental state.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&extract, "extract", "x", false, "Write snippet files after each pass")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Minimum time between passes")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := validateDirs(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pipe, err := newPipeline(ctx)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	pass := func() {
		if err := reconcileOnce(ctx, pipe, extract); err != nil {
			logger.Warn("pass failed: %v", err)
			cmd.PrintErrf("pass failed: %v\n", err)
		}
	}

	// Initial pass before waiting for changes.
	pass()

	cmd.PrintErrln("watching for changes (ctrl-c to stop)")
	watcher := filesystem.NewWatcher(watchInterval)
	err = watcher.Watch(ctx, []string{sourceDir, docsDir, targetDir}, pass)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
