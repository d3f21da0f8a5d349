// Package table generates, persists, and serves the pairwise overlap
// lookup table that lets a production renderer skip rule resolution and
// footprint math entirely.
//
// Generate runs the rule model over the full ordered cross-product of the
// supported character set (1296 pairs for the standard 36) in parallel and
// returns the table plus per-entry timing diagnostics. The result is an
// immutable snapshot: look it up, persist it, or replace it wholesale, but
// never patch it.
//
// Two artifacts are persisted per style:
//
//   - the lookup table (character -> character -> ratio), and
//   - the glyph-data set (bounds, dimensions, markup, run summaries),
//
// both zstd-framed JSON, loadable without any extraction logic.
//
// By contract, a table entry equals what overlap.Resolve returned during
// generation, so the table-backed fast path and the on-demand runtime path
// agree wherever the table has an entry.
package table
