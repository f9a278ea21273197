// Package platform holds the two entry point conventions the hook knows.
//
// A Strategy is selected once at startup with For and then drives every
// filesystem decision:
//
//   - link: the Unix-like layout. npm installs bin/npm as a symlink into
//     lib/node_modules/npm, so the original entry point can be recognised by
//     where its link resolves, and the swap is done with symlinks.
//   - command: the Windows-style layout. bin/npm.cmd is a plain command
//     file that is never replaced. Every mutating step is a no-op.
package platform
