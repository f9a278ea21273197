// Package output renders the operator-facing console messages of the hook:
// rename notices, the remediation guide shown when activation fails, and
// plain status lines.
//
// These messages are the hook's user interface and always go to the given
// writer, independent of the log level. Diagnostic detail goes through
// pkg/logging instead.
//
// Multi-line messages are Go templates (templates/*.tmpl) with a "style"
// function that applies a named style from pkg/output/styles. Color is
// dropped when the writer is not a terminal.
package output
