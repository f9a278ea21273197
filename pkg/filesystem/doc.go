// Package filesystem provides filesystem implementations for the hook.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, an afero-backed filesystem (symlinks are only
// available when the afero backend implements afero.Symlinker), and a dry-run
// wrapper that records mutations instead of performing them.
package filesystem
