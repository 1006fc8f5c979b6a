// Package services implements the driving ports.
//
// Services contain the orchestration logic of Snipper:
//
//   - ReconcileService: drives the three scan passes and the merge
//   - ExtractService: applies the write policy to the reconciled set
//
// Services depend only on domain types and driven ports; all I/O goes
// through adapters.
package services
