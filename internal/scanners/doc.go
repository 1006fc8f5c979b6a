// Package scanners groups the per-origin scanner plugins.
//
// Each subpackage implements one driven scanner port:
//
//   - tag: tagged regions in source files (active and inactive)
//   - inclusion: \lstinputlisting references in document files
//   - materialized: names of already extracted snippet files
//
// Scanners are pure text passes; they never touch the filesystem and
// never mutate the reconciliation store themselves.
package scanners
