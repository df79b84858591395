// Package registry loads and indexes the coach and student reference tables
// used for canonical name resolution.
//
// Each registry is built once from a CSV or JSON reference file (with a
// minimal built-in fallback when the file is missing or unparsable) and is
// immutable afterwards, so lookups are safe from concurrent goroutines. A
// Handle wraps a registry in an atomic pointer for hot refresh: a new index
// is built off to the side and swapped in whole, never mutated in place.
//
// Indexing normalizes every alias (lowercase, trimmed, whitespace collapsed,
// diacritics folded) and additionally stores a concatenated variant so that
// "JennyDuan" resolves to the canonical "Jenny Duan". Student registries also
// map parent/guardian names to the student's canonical name, a deliberate
// many-to-one mapping.
package registry
