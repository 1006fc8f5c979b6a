// Package driving defines the interfaces that external actors use to
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter calls these interfaces; core services implement them.
//
//   - Reconciler: Runs a full reconciliation pass over the three roots
//   - Extractor: Writes the reconciled snippet set to the target directory
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or scanner package
package driving
