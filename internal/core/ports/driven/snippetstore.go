package driven

import (
	"context"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
)

// SnippetStore is the reconciliation store: one record per name, merged
// in place as scanners sight the same name from different origins.
//
// The precedence rules live here and nowhere else:
//
//   - Flags are monotonic: once set they stay set, with one exception.
//     Active is forced to false by an inactive sighting and that is
//     sticky, regardless of the order sightings arrive in.
//   - Content, source file and description are set by the FIRST
//     source-file sighting only; later source sightings of the same
//     name update flags but never the body. This first-writer-wins /
//     last-writer-wins asymmetry is deliberate and kept for
//     compatibility with the original behaviour.
//   - Inclusion and materialised-file sightings never supply content.
//
// The store is scoped to one reconciliation run and discarded after it.
type SnippetStore interface {
	// UpsertTagged applies a source-file sighting. The returned
	// duplicate flag is true when the name already had a source-file
	// sighting, i.e. the same name is defined by more than one region.
	UpsertTagged(ctx context.Context, frag domain.TagFragment) (duplicate bool, err error)

	// UpsertInclusion applies a document-inclusion sighting.
	UpsertInclusion(ctx context.Context, name string) error

	// UpsertMaterialized applies a materialised-file sighting.
	UpsertMaterialized(ctx context.Context, name string) error

	// List returns all records sorted by name in lexicographic order.
	List(ctx context.Context) ([]domain.Snippet, error)
}
