// Package file provides the TOML-backed configuration store.
//
// Configuration lives in config.toml inside the snipper config
// directory (~/.snipper by default). A missing file is not an error;
// the built-in defaults apply and command-line flags always win over
// file values.
package file
