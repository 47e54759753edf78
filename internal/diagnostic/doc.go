// Package diagnostic provides structured errors, warnings, and infos for
// the dispatcher generator.
//
// Diagnostics attach to the source declaration they concern and are
// collected rather than thrown: a generation pass always runs to
// completion and reports everything it found.
package diagnostic
