// Package overlap decides how far adjacent glyphs pull into each other.
//
// The model is rule-driven rather than search-based: a per-base-letter
// range, exact special cases, and dampening exceptions produce one scalar
// ratio per ordered pair, deterministically. Resolve never fails and every
// result is explainable from the rule that produced it.
//
// Score is the density-based diagnostic that a runtime path can use to
// compare candidate overlaps against the glyphs' actual ink distribution.
// It is read-only and carries no hidden acceptance threshold.
//
// All functions are pure; RuleSet and Exceptions values are never mutated.
package overlap
