// Package ingest drives batch resolution runs from a JSON manifest.
//
// A manifest lists recording contexts the way an external collector would
// assemble them. The Runner resolves each entry concurrently, builds the
// canonical identifier, and persists the outcome to the catalog, flagging
// low-confidence rows for review. A file lock keeps concurrent runs from
// writing over each other.
package ingest
