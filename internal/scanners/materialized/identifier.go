// Package materialized derives snippet names from files that a
// previous extraction run already wrote to the target directory.
package materialized

import (
	"path/filepath"
	"strings"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
)

// Ensure Identifier implements the interface.
var _ driven.MaterializedIdentifier = (*Identifier)(nil)

// Identifier maps extracted snippet file paths to snippet names.
type Identifier struct {
	extension string
}

// New creates an identifier for files with the given extension
// (without leading dot), e.g. "cpp".
func New(extension string) *Identifier {
	return &Identifier{extension: extension}
}

// Identify returns the file stem as the snippet name. The recognised
// extension is stripped case-insensitively; any other extension stays
// part of the name. Paths without a usable file name fail with
// *domain.NameExtractionError.
func (i *Identifier) Identify(path string) (string, error) {
	if path == "" || strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return "", &domain.NameExtractionError{Path: path}
	}

	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "", &domain.NameExtractionError{Path: path}
	}

	suffix := "." + i.extension
	if len(base) > len(suffix) && strings.EqualFold(base[len(base)-len(suffix):], suffix) {
		base = base[:len(base)-len(suffix)]
	}
	if base == "" {
		return "", &domain.NameExtractionError{Path: path}
	}
	return base, nil
}
