// Package inclusion extracts snippet references from LaTeX documents.
//
// References are \lstinputlisting directives naming a snippet file:
//
//	\lstinputlisting{snippets/some_cool_snippet.cpp}
//
// Only the file stem is taken as the snippet name; the path and the
// extension are discarded.
package inclusion

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
)

// Ensure Scanner implements the interface.
var _ driven.InclusionScanner = (*Scanner)(nil)

// Scanner finds inclusion directives referencing snippet files.
type Scanner struct {
	pattern *regexp.Regexp
}

// New creates a scanner for references to files with the given
// extension (without leading dot), e.g. "cpp".
func New(extension string) *Scanner {
	// The path prefix is optional; the name capture is non-greedy and
	// cannot itself contain a separator, so nested paths reduce to the
	// final stem.
	return &Scanner{
		pattern: regexp.MustCompile(fmt.Sprintf(
			`\\lstinputlisting\{(?:[^{}]*/)?(?P<name>[^{}/]+?)\.%s[^{}]*\}`,
			regexp.QuoteMeta(extension),
		)),
	}
}

// Scan returns the referenced snippet names in match order. Repeated
// references are returned as encountered; deduplication is the
// reconciliation store's job.
func (s *Scanner) Scan(text string) []string {
	name := s.pattern.SubexpIndex("name")

	var names []string
	for _, match := range s.pattern.FindAllStringSubmatch(text, -1) {
		names = append(names, match[name])
	}
	return names
}
