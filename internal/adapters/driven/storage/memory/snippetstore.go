// Package memory provides the in-memory reconciliation store.
//
// One reconciliation pass owns exactly one store; it is discarded after
// the report and extraction steps. The snippet files on disk are the
// only state carried between runs.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
)

// Ensure SnippetStore implements the interface.
var _ driven.SnippetStore = (*SnippetStore)(nil)

// SnippetStore is an in-memory implementation of driven.SnippetStore.
// It centralises the merge precedence rules: flags OR monotonically,
// content and source file are first-writer-wins, and an inactive
// sighting forces Active to false permanently.
type SnippetStore struct {
	mu       sync.RWMutex
	snippets map[string]domain.Snippet

	// sawInactive tracks names that had an inactive sighting, so a
	// later active sighting cannot resurrect Active. Kept out of the
	// Snippet record because it is merge bookkeeping, not identity.
	sawInactive map[string]bool
}

// NewSnippetStore creates a new in-memory snippet store.
func NewSnippetStore() *SnippetStore {
	return &SnippetStore{
		snippets:    make(map[string]domain.Snippet),
		sawInactive: make(map[string]bool),
	}
}

// UpsertTagged applies a source-file sighting.
func (s *SnippetStore) UpsertTagged(_ context.Context, frag domain.TagFragment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !frag.Active {
		s.sawInactive[frag.Name] = true
	}

	snip, ok := s.snippets[frag.Name]
	if !ok {
		body := frag.Body
		s.snippets[frag.Name] = domain.Snippet{
			Name:          frag.Name,
			Content:       &body,
			Description:   frag.Description,
			SourceFile:    frag.File,
			FoundInSource: true,
			Active:        frag.Active,
		}
		return false, nil
	}

	duplicate := snip.FoundInSource

	if !snip.FoundInSource {
		// First source sighting of a record created by an inclusion or
		// materialised-file sighting: the body is still unclaimed.
		body := frag.Body
		snip.Content = &body
		snip.Description = frag.Description
		snip.SourceFile = frag.File
	}
	snip.FoundInSource = true
	snip.Active = !s.sawInactive[frag.Name]

	s.snippets[frag.Name] = snip
	return duplicate, nil
}

// UpsertInclusion applies a document-inclusion sighting.
func (s *SnippetStore) UpsertInclusion(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, ok := s.snippets[name]
	if !ok {
		snip = domain.Snippet{Name: name}
	}
	snip.FoundInDocument = true
	s.snippets[name] = snip
	return nil
}

// UpsertMaterialized applies a materialised-file sighting.
func (s *SnippetStore) UpsertMaterialized(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, ok := s.snippets[name]
	if !ok {
		snip = domain.Snippet{Name: name}
	}
	snip.Materialized = true
	s.snippets[name] = snip
	return nil
}

// List returns all records sorted by name in lexicographic order.
func (s *SnippetStore) List(_ context.Context) ([]domain.Snippet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Snippet, 0, len(s.snippets))
	for name := range s.snippets {
		result = append(result, s.snippets[name])
	}
	domain.SortSnippets(result)
	return result, nil
}
