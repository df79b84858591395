// Package resolve implements the cascading resolution engine that assigns
// each recording a canonical coach and student.
//
// Stages are tried in strict priority order: topic pattern extraction,
// host-email matching, participant-list elimination, transcript scanning,
// chat scanning, and folder-hierarchy walking. The cascade stops as soon as
// both names are resolved; the first stage to complete the pair wins, even if
// a later stage might have matched with more signal. That is inherited
// behavior, kept deliberately so identifiers stay stable across reprocessing.
//
// Resolve is a total function: every input, including an empty context,
// produces a complete Resolution with Unknown placeholders and zero
// confidence where the cascade made no progress. Each call is a pure function
// of the context and the immutable registries, so callers may resolve many
// recordings concurrently without locking.
package resolve
