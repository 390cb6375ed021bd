// Package filesystem provides filesystem implementations for neaten.
//
// This package contains implementations of the types.FS interface:
// the real OS filesystem used by the CLI and an afero-backed one used by
// tests and by callers that want to run rules against a virtual tree.
package filesystem
