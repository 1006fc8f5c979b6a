package driving

import (
	"context"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
)

// RunOptions identifies the three directories a reconciliation pass
// operates on. All three must exist; validation happens before any
// scanning begins.
type RunOptions struct {
	// SourceRoot is the root directory of source files containing
	// tagged regions.
	SourceRoot string

	// DocumentRoot is the root directory of document files containing
	// inclusion references.
	DocumentRoot string

	// TargetDir is the directory holding materialised snippet files.
	TargetDir string
}

// RunResult is the outcome of one reconciliation pass.
type RunResult struct {
	// RunID identifies this pass in logs and status queries.
	RunID string

	// Snippets is the reconciled set, sorted by name.
	Snippets []domain.Snippet

	// Diagnostics are the recoverable conditions encountered, in the
	// order they were raised.
	Diagnostics []domain.Diagnostic

	// FilesScanned counts the files read across all three roots.
	FilesScanned int
}

// RunStatus reports the progress of an in-flight or completed pass.
type RunStatus struct {
	// RunID identifies the pass.
	RunID string

	// Running is true while the pass is in progress.
	Running bool

	// FilesScanned counts files read so far.
	FilesScanned int

	// RegionsFound counts tagged regions accepted so far.
	RegionsFound int

	// DiagnosticCount counts diagnostics raised so far.
	DiagnosticCount int
}

// Reconciler runs reconciliation passes.
type Reconciler interface {
	// Run performs one complete pass: discover files under the three
	// roots, scan them, merge all sightings and return the sorted
	// snippet set. Only directory validation failures return an error;
	// every per-file and per-region failure becomes a diagnostic.
	Run(ctx context.Context, opts RunOptions) (*RunResult, error)

	// Status returns progress for a run ID. Unknown IDs report an
	// idle status.
	Status(ctx context.Context, runID string) (*RunStatus, error)
}
