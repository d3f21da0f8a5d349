// Package glyph extracts footprint geometry from vector glyph markup.
//
// A lettering asset is one markup document per character per style. Extract
// turns the markup into a Glyph: the logical coordinate frame, a coarse
// boolean ink grid, and a per-column summary of vertical ink runs. The grid
// is an over-approximation derived from primitive bounding boxes, not an
// exact rasterization; overlap decisions downstream need vertical extents
// and densities, not pixel-perfect fit.
//
//	g, err := glyph.Extract(markup, 'a')
//	if err != nil {
//	    // no outline in this asset; substitute glyph.Placeholder
//	}
//
// # Footprint modes
//
// FootprintBounds (the default) marks cells touched by primitive bounding
// boxes in O(primitives). FootprintCoverage scan-converts the real outline
// (via srwiley/rasterx) onto the same grid for styles whose letterforms are
// too hollow for the box approximation:
//
//	g, err := glyph.Extract(markup, 'a', glyph.WithFootprintMode(glyph.FootprintCoverage))
//
// Both modes produce identical grid dimensions for the same frame, so run
// summaries from either mode are interchangeable inputs to the scorer.
//
// # Pluggable markup parsing
//
// Parsing is abstracted behind MarkupParser so hosts with their own
// document infrastructure can supply it. The default backend scans the XML
// token stream with encoding/xml:
//
//	glyph.RegisterParser("dom", myDOMParser)
//	g, err := glyph.Extract(markup, 'a', glyph.WithParser("dom"))
//
// All extraction is pure: no package state is mutated, and a Glyph is
// immutable once returned.
package glyph
