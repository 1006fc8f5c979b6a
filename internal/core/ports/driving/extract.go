package driving

import (
	"context"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
)

// ExtractStatus classifies the outcome for one snippet during the
// write phase.
type ExtractStatus string

const (
	// ExtractWritten means the snippet file was created or refreshed.
	ExtractWritten ExtractStatus = "written"

	// ExtractNoSource means the snippet has no source region and
	// nothing could be written.
	ExtractNoSource ExtractStatus = "no-source"

	// ExtractInactiveKept means the snippet is inactive and its target
	// file already exists, so the file was left untouched.
	ExtractInactiveKept ExtractStatus = "inactive-kept"

	// ExtractFailed means the write failed with an I/O error.
	ExtractFailed ExtractStatus = "failed"
)

// ExtractOutcome is the per-snippet result of the write phase. One
// snippet's failure never affects its siblings.
type ExtractOutcome struct {
	// Name is the snippet name.
	Name string

	// Path is the target file path, empty when nothing was attempted.
	Path string

	// Status classifies what happened.
	Status ExtractStatus

	// Err carries the underlying error for ExtractFailed outcomes.
	Err error
}

// ExtractReport is the outcome of one write phase.
type ExtractReport struct {
	// Outcomes holds one entry per snippet, in input order.
	Outcomes []ExtractOutcome

	// Diagnostics are the recoverable conditions encountered.
	Diagnostics []domain.Diagnostic
}

// Extractor writes reconciled snippets to the target directory.
type Extractor interface {
	// Extract applies the write policy to each snippet in order:
	// active snippets overwrite unconditionally, inactive snippets are
	// create-only, snippets without a source region are skipped. The
	// returned error is non-nil only for failures that prevent the
	// phase from running at all.
	Extract(ctx context.Context, snippets []domain.Snippet, targetDir string) (*ExtractReport, error)
}
