package driven

import (
	"github.com/custodia-labs/snipper-cli/internal/core/domain"
)

// TagScanner extracts tagged regions from one source file's full text.
// The scanner is invoked once per file and its results consumed
// immediately.
type TagScanner interface {
	// Scan returns the well-formed fragments found in text, in match
	// order, together with one error per malformed region (currently
	// only *domain.MismatchedTagError). A malformed region never
	// aborts the scan of the rest of the file.
	Scan(file, text string) ([]domain.TagFragment, []error)
}

// InclusionScanner extracts referenced snippet names from one document
// file's full text.
type InclusionScanner interface {
	// Scan returns the names referenced by inclusion directives, in
	// match order. Only the file stem of the referenced path is taken;
	// duplicates are returned as encountered.
	Scan(text string) []string
}

// MaterializedIdentifier derives snippet names from files already
// present in the target directory.
type MaterializedIdentifier interface {
	// Identify returns the snippet name for an extracted file path.
	// Returns *domain.NameExtractionError when the path has no usable
	// file stem.
	Identify(path string) (string, error)
}
