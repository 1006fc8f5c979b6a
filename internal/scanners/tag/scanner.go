// Package tag extracts tagged snippet regions from source file text.
//
// Regions look like:
//
//	// SNIPPET:BEGIN {name} ${optional description}
//	...body...
//	// SNIPPET:END {name}
//
// The inactive variant prefixes the marker word with a deactivation
// sigil on both tokens:
//
//	// !SNIPPET:BEGIN {name}
//	...body...
//	// !SNIPPET:END {name}
//
// Matching is non-greedy and spans newlines; a body ends at the first
// END token. Nested or overlapping regions are not supported.
package tag

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
)

// Ensure Scanner implements the interface.
var _ driven.TagScanner = (*Scanner)(nil)

// Scanner finds active and inactive tagged regions.
type Scanner struct {
	active   *regexp.Regexp
	inactive *regexp.Regexp
}

// New creates a scanner for the given marker word, e.g. "SNIPPET".
func New(marker string) *Scanner {
	return &Scanner{
		active:   compilePattern(regexp.QuoteMeta(marker)),
		inactive: compilePattern("!" + regexp.QuoteMeta(marker)),
	}
}

// compilePattern builds the region pattern for one marker token.
// (?s) makes . span newlines; all captures are non-greedy so a body
// stops at the first END token.
func compilePattern(token string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?s)// %[1]s:BEGIN \{(?P<begin>.*?)\}(?:[ \t]*\$\{(?P<desc>.*?)\})?(?P<body>.*?)// %[1]s:END \{(?P<end>.*?)\}`,
		token,
	))
}

// Scan returns the well-formed fragments found in text, plus one error
// per region whose begin and end names differ. The two patterns are
// applied independently; active fragments come first.
func (s *Scanner) Scan(file, text string) ([]domain.TagFragment, []error) {
	fragments, errs := s.scanWith(s.active, file, text, true)
	inactiveFrags, inactiveErrs := s.scanWith(s.inactive, file, text, false)
	fragments = append(fragments, inactiveFrags...)
	errs = append(errs, inactiveErrs...)
	return fragments, errs
}

func (s *Scanner) scanWith(pattern *regexp.Regexp, file, text string, active bool) ([]domain.TagFragment, []error) {
	var fragments []domain.TagFragment
	var errs []error

	begin := pattern.SubexpIndex("begin")
	desc := pattern.SubexpIndex("desc")
	body := pattern.SubexpIndex("body")
	end := pattern.SubexpIndex("end")

	for _, match := range pattern.FindAllStringSubmatch(text, -1) {
		if match[begin] != match[end] {
			errs = append(errs, &domain.MismatchedTagError{
				File:  file,
				Begin: match[begin],
				End:   match[end],
			})
			continue
		}
		fragments = append(fragments, domain.TagFragment{
			Name:        match[begin],
			Body:        match[body],
			Description: match[desc],
			File:        file,
			Active:      active,
		})
	}
	return fragments, errs
}
