// Package services defines shared utilities consumed by the resolution
// stages, the catalog, and the batch runner.
//
// Key responsibilities:
//   - Context helpers that stamp catalog record IDs, stage names, and batch
//     run identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures
//     into review-worthy versus hard errors.
//
// Use these helpers when wiring new resolution logic so operational behaviour
// stays uniform across the engine.
package services
