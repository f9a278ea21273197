// Package testutil provides utilities for testing hook components.
//
// Key components:
//   - NpmTree: a throwaway node prefix on the real filesystem with npm
//     installed the way npm installs itself (bin/npm as a relative symlink
//     into lib/node_modules/npm) and an empty smart-npm package
//   - Link assertions for checking where an entry point points
//
// Symlink behavior is the whole point of the code under test, so fixtures
// live in t.TempDir() rather than in memory.
package testutil
