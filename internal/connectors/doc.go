// Package connectors provides implementations of the driven filesystem
// ports. Each connector knows how to reach one kind of storage; today
// that is the local filesystem, which serves file discovery, reading
// and snippet writing.
package connectors
