package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a file or entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSourceRegion indicates a snippet cannot be extracted because
	// no tagged region in any source file supplied its body.
	ErrNoSourceRegion = errors.New("no associated source region")

	// ErrInactiveNotOverwritten indicates an inactive snippet's target
	// file already exists and was deliberately left untouched. This is
	// informational, not a failure of the run.
	ErrInactiveNotOverwritten = errors.New("snippet is inactive, not overwritten")
)

// MismatchedTagError reports a tagged region whose begin and end names
// differ. The region is discarded; scanning continues past it.
type MismatchedTagError struct {
	// File is the source file containing the malformed region.
	File string

	// Begin is the name on the begin marker.
	Begin string

	// End is the name on the end marker.
	End string
}

func (e *MismatchedTagError) Error() string {
	return fmt.Sprintf("mismatched begin and end tags in %s: %q != %q", e.File, e.Begin, e.End)
}

// NameExtractionError reports a materialised snippet file whose path
// yields no usable file stem. The file is skipped with a warning.
type NameExtractionError struct {
	// Path is the offending file path.
	Path string
}

func (e *NameExtractionError) Error() string {
	return fmt.Sprintf("unable to derive snippet name from path %q", e.Path)
}
