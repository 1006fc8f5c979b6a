// Package domain defines the core business entities for Snipper.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Snippet: The canonical record reconciled from all sighting origins
//   - TagFragment: One tagged region extracted from a source file
//   - Diagnostic: A recoverable condition surfaced during a run
//   - Settings: Tool configuration (marker word, extension sets)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
