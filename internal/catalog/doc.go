// Package catalog persists resolved recordings in SQLite and exposes helpers
// for querying and review workflows.
//
// The Store manages database connections, schema initialization, and record
// queries. Catalog records capture the canonical identifier, its components,
// per-field confidence, the method trail, and review flags so operators can
// audit how each identifier was derived.
//
// Treat this package as the single source of truth for catalog semantics; when
// you add new columns, update schema.sql and bump schemaVersion.
package catalog
