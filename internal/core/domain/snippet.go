package domain

import "sort"

// Snippet is the canonical record for one named snippet, reconciled from
// up to three origins: tagged regions in source files, inclusion
// references in document files, and already-materialised snippet files
// in the target directory.
type Snippet struct {
	// Name is the unique identity of the snippet. Sightings from all
	// origins merge into one record when their names match exactly,
	// including case.
	Name string

	// Content is the text between the begin and end tags. It is only
	// ever supplied by a source-file sighting; nil means no source
	// region has contributed a body yet.
	Content *string

	// Description is the optional annotation captured from the ${...}
	// segment of the begin tag. Empty when not supplied.
	Description string

	// SourceFile is the path of the source file containing the tagged
	// region. Empty when the record originates only from an inclusion
	// or a materialised file.
	SourceFile string

	// FoundInSource is set when any tagged region (active or inactive)
	// with this name was seen in a source file.
	FoundInSource bool

	// FoundInDocument is set when any document inclusion referenced
	// this name.
	FoundInDocument bool

	// Materialized is set when a previously extracted snippet file with
	// this name already exists in the target directory.
	Materialized bool

	// Active reports whether the source region is the live definition.
	// An inactive sighting forces it to false and that sticks, no
	// matter in which order sightings arrive.
	Active bool
}

// TagFragment is one tagged region extracted from a source file, before
// reconciliation. The begin/end name match has already been verified by
// the scanner; mismatched regions never become fragments.
type TagFragment struct {
	// Name is the tag name shared by the begin and end markers.
	Name string

	// Body is the exact text between the begin and end markers.
	Body string

	// Description is the optional ${...} annotation, empty if absent.
	Description string

	// File is the source file the region was found in.
	File string

	// Active is false for regions using the deactivation sigil.
	Active bool
}

// SortSnippets orders snippets by name in lexicographic (byte) order.
// The report and the extractor depend on this ordering being stable and
// total; names are unique so ties cannot occur.
func SortSnippets(snippets []Snippet) {
	sort.Slice(snippets, func(i, j int) bool {
		return snippets[i].Name < snippets[j].Name
	})
}
