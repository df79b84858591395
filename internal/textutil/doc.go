// Package textutil provides text processing utilities for name normalization,
// string similarity, and filename sanitization.
//
// The primary use cases are:
//   - Normalizing person names for case-insensitive registry indexing
//   - Computing edit-distance similarity ratios for fuzzy name matching
//   - Sanitizing identifier tokens for safe filesystem use
//
// Normalization lowercases text, collapses internal whitespace, and folds
// combining diacritical marks so that "José" and "Jose" index identically.
package textutil
