// Package filesystem provides filesystem implementations for idswap.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by the CLI and an afero-backed one used to
// run the walkers against in-memory trees.
package filesystem
