// Package kern renders words as interlocking lettering by deciding how far
// each glyph pulls into its neighbor.
//
// # Overview
//
// kern is the overlap engine behind a stylized-lettering renderer. Each
// character of a style is a vector glyph asset; the engine derives a
// coarse ink footprint per glyph, resolves a horizontal overlap ratio per
// ordered glyph pair from a rule model, and amortizes the full pairwise
// matrix into a precomputed lookup table so production rendering never
// re-derives geometry.
//
// # Quick start
//
//	// Load a style's glyph assets (collecting per-character failures).
//	style, failures, err := kern.LoadStyle(os.DirFS("assets/block"), "block")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range failures {
//	    log.Println(f) // bad assets render via placeholder
//	}
//
//	// Generate and install the lookup table.
//	r := kern.NewResolver()
//	if _, _, err := r.Generate(ctx, style, overlap.Alphanumeric()); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Overlap ratios for adjacent letters of a word.
//	ratios := r.Word(style, "wildstyle")
//
// # Architecture
//
//   - glyph: footprint extraction from vector markup
//   - overlap: the rule model and the density scorer
//   - table: batch generation, lookup, persisted artifacts
//   - cache: owned glyph cache and table snapshots
//   - kern (this package): the mode dispatcher and style loading
//
// # Dispatch modes
//
// A Resolver serves from the lookup table, from the rule model, or from
// the table with runtime fallback, selected by Mode at construction.
// Production renderers run LookupOnly against shipped artifacts; tooling
// and tests run RuntimeOnly; PreferLookup bridges the two. Stats reports
// which path served each resolution.
package kern
