// Package swapper swaps the package manager's entry point for the wrapper
// and back.
//
// An EntryPointSwapper is built once at startup and each npm lifecycle
// script runs one of its operations:
//
//	preinstall    Prepare   move the original entry point aside
//	postinstall   Activate  link the entry point to the wrapper and keep a
//	                        backup link to the original launcher
//	preuninstall  Revert    link the entry point back to the original launcher
//
// The three operations fail differently. A failed Prepare is fatal to the
// install. A failed Activate is reported to the operator with manual steps
// and the install carries on. A failed Revert is returned to the caller
// untouched.
//
// Activate does not look at the temporary entry point left by Prepare. If
// the install dies between the two, the original stays under its temporary
// name; Status reports it as stranded.
package swapper
