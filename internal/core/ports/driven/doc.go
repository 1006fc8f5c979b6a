// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SnippetStore: The reconciliation store; owns the merge precedence rules
//   - TagScanner: Extracts tagged regions from source file text
//   - InclusionScanner: Extracts referenced snippet names from document text
//   - MaterializedIdentifier: Derives snippet names from extracted files
//   - FileDiscovery: Finds regular files beneath a root by extension
//   - FileReader: Reads full file text
//   - SnippetWriter: Writes snippet bodies under the extraction policy
//   - ConfigStore: Tool configuration persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or scanner package
package driven
