// Package recording defines the shared data model for session resolution:
// the per-recording extraction context assembled by ingest collaborators, the
// partial results produced by individual resolution stages, and the final
// merged resolution consumed by the identifier builder and catalog.
//
// Context values are immutable once constructed; the resolver never mutates
// its input, so contexts may be shared across goroutines freely.
package recording
