// Package cli provides the cobra command-line interface for Snipper.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipper-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/snipper-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/snipper-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipper-cli/internal/core/services"
	"github.com/custodia-labs/snipper-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string

	sourceDir string
	targetDir string
	docsDir   string
)

var rootCmd = &cobra.Command{
	Use:   "snipper",
	Short: "Collect tagged code snippets for inclusion in documents",
	Long: `Snipper reconciles three sources of truth about named code snippets:
tagged regions in source files, inclusion references in documents, and
already extracted snippet files. It reports one record per snippet name
and can re-extract snippet files from the tagged regions.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.snipper)")
	rootCmd.PersistentFlags().StringVar(&sourceDir, "source", "", "Root directory of source files")
	rootCmd.PersistentFlags().StringVar(&targetDir, "target", "", "Directory where snippets are stored")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs", "", "Root directory of the document")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// pipeline bundles everything a command needs for one run.
type pipeline struct {
	settings   domain.Settings
	reconciler *services.ReconcileService
	extractor  *services.ExtractService
	connector  *filesystem.Connector
}

// newPipeline loads configuration and wires the services.
func newPipeline(ctx context.Context) (*pipeline, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	settings, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	connector := filesystem.New()
	reconciler := services.NewReconcileService(
		connector,
		connector,
		newTagScanner(settings.Marker),
		newInclusionScanner(settings.SnippetExtension),
		newMaterializedIdentifier(settings.SnippetExtension),
		*settings,
		func() driven.SnippetStore { return memory.NewSnippetStore() },
	)
	extractor := services.NewExtractService(connector, settings.SnippetExtension)

	return &pipeline{
		settings:   *settings,
		reconciler: reconciler,
		extractor:  extractor,
		connector:  connector,
	}, nil
}

// validateDirs runs the preflight directory checks. Failures here are
// the only fatal error class; everything later is a diagnostic.
func validateDirs() error {
	errs := services.ValidateRoots(runOptions(), func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	})
	return errors.Join(errs...)
}
