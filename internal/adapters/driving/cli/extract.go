package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Reconcile snippets and write the snippet files",
	Long: `Performs a full reconciliation pass and then writes the snippet
files to the target directory. Equivalent to "run --extract".`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
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

	return reconcileOnce(ctx, pipe, true)
}
