package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipper-cli/internal/core/ports/driving"
	"github.com/custodia-labs/snipper-cli/internal/report"
	"github.com/custodia-labs/snipper-cli/internal/scanners/inclusion"
	"github.com/custodia-labs/snipper-cli/internal/scanners/materialized"
	"github.com/custodia-labs/snipper-cli/internal/scanners/tag"
)

// extract enables the write phase; without it a run is report-only.
var extract bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Reconcile snippets and print the report",
	Long: `Scans the source tree for tagged regions, the document tree for
inclusion references and the target directory for extracted files, then
prints one reconciled record per snippet name. With --extract, snippet
files are also (re)written to the target directory.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&extract, "extract", "x", false, "Write snippet files after reconciling")
	rootCmd.AddCommand(runCmd)
}

func runOptions() driving.RunOptions {
	return driving.RunOptions{
		SourceRoot:   sourceDir,
		DocumentRoot: docsDir,
		TargetDir:    targetDir,
	}
}

func newTagScanner(marker string) *tag.Scanner {
	return tag.New(marker)
}

func newInclusionScanner(extension string) *inclusion.Scanner {
	return inclusion.New(extension)
}

func newMaterializedIdentifier(extension string) *materialized.Identifier {
	return materialized.New(extension)
}

func runRun(cmd *cobra.Command, _ []string) error {
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

	return reconcileOnce(ctx, pipe, extract)
}

// reconcileOnce performs one full pass and renders the results. Shared
// by run and watch.
func reconcileOnce(ctx context.Context, pipe *pipeline, write bool) error {
	result, err := pipe.reconciler.Run(ctx, runOptions())
	if err != nil {
		return err
	}

	renderer := report.New(os.Stdout, pipe.settings.Colour)
	renderer.Render(result)

	if !write {
		return nil
	}

	extractReport, err := pipe.extractor.Extract(ctx, result.Snippets, targetDir)
	if err != nil {
		return err
	}
	renderer.RenderExtract(extractReport)
	return nil
}
