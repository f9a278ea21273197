// Package types defines the core types and interfaces shared across the
// smart-npm hook. This includes the FS interface every filesystem touch goes
// through, the Platform selector and the EntryPaths/Layout structures that
// describe which files the hook swaps.
package types
