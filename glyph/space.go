package glyph

// NewSpace synthesizes the blank glyph for a given advance width.
// A space has no markup and no ink: a single-cell grid, no runs, and a
// nominal 1-unit height. Overlap resolution treats it as a zero-overlap
// neutral element on either side of a pair.
func NewSpace(width float64) *Glyph {
	f := Frame{X: 0, Y: 0, Width: width, Height: 1}
	return &Glyph{
		Char:   ' ',
		Frame:  f,
		Bounds: BoundsOf(f),
		Grid:   [][]bool{{false}},
		Scale:  1,
		Space:  true,
	}
}

// Placeholder returns the neutral stand-in used when a character's
// extraction failed: shaped like a space but remembering which character it
// replaces, so a renderer can keep word layout stable without aborting.
func Placeholder(char rune, width float64) *Glyph {
	g := NewSpace(width)
	g.Char = char
	return g
}
