// Package store is the persistence layer for configuration documents.
//
// Every write runs the same pipeline: back up the existing file, validate
// the document, serialize pretty-printed JSON, and replace the file with an
// atomic temp-file rename. A failed backup aborts the write entirely so the
// previous content is never at risk.
//
// The store also resolves scopes (global file, per-project override found by
// upward search), folds layers into a merged view, computes diffs with
// source attribution, and handles import/export.
package store
