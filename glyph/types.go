package glyph

import "math"

// Resolution is the footprint sampling resolution in logical units per grid
// cell. A glyph with a 100x100 frame produces a 10x10 grid.
const Resolution = 10

// Frame is a glyph's logical coordinate box, typically taken from the
// markup's viewBox. When the markup declares no box, DefaultFrame is used.
type Frame struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// DefaultFrame is assumed when a glyph's markup declares no coordinate box.
var DefaultFrame = Frame{X: 0, Y: 0, Width: 100, Height: 100}

// Bounds are the edge coordinates derived from a Frame.
// Invariant: Right > Left and Bottom > Top for every extracted glyph.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// BoundsOf derives edge coordinates from a frame.
func BoundsOf(f Frame) Bounds {
	return Bounds{
		Left:   f.X,
		Right:  f.X + f.Width,
		Top:    f.Y,
		Bottom: f.Y + f.Height,
	}
}

// Run is one contiguous vertical stretch of ink within a single grid column.
// Top and Bottom are inclusive row indices, so Bottom >= Top always holds.
// Density is the filled-cell fraction of the run's row span, in (0, 1].
type Run struct {
	Top     int
	Bottom  int
	Density float64
}

// Variant distinguishes alternate outlines for the same character within a
// style. Lettering styles commonly ship a standard form plus alternates used
// at word boundaries.
type Variant uint8

const (
	// VariantStandard is the default form of a character.
	VariantStandard Variant = iota

	// VariantAlternate is a stylistic alternate form.
	VariantAlternate

	// VariantFirst is the form used at the start of a word.
	VariantFirst

	// VariantLast is the form used at the end of a word.
	VariantLast
)

// String returns the variant's asset-name suffix.
func (v Variant) String() string {
	switch v {
	case VariantAlternate:
		return "alternate"
	case VariantFirst:
		return "first"
	case VariantLast:
		return "last"
	default:
		return "standard"
	}
}

// ParseVariant maps an asset-name suffix back to a Variant.
// Unknown names map to VariantStandard.
func ParseVariant(s string) Variant {
	switch s {
	case "alternate", "alt":
		return VariantAlternate
	case "first":
		return VariantFirst
	case "last":
		return VariantLast
	default:
		return VariantStandard
	}
}

// Glyph is one resolved character: its serialized outline plus the derived
// footprint geometry. A Glyph is built once by Extract (or NewSpace) and
// must be treated as read-only afterwards; the engine caches and shares
// Glyph values freely across goroutines on that basis.
type Glyph struct {
	// Char is the character this glyph renders. Case is preserved here;
	// rule lookups lowercase alphabetic characters separately.
	Char rune

	// Markup is the glyph's serialized vector outline. It is carried for
	// the final render only; footprint math never re-reads it.
	Markup string

	// Frame is the logical coordinate box the outline is expressed in.
	Frame Frame

	// Bounds are the frame's edge coordinates.
	Bounds Bounds

	// Grid is the coarse ink mask, Grid[row][col], with
	// ceil(Frame.Height/Resolution) rows and ceil(Frame.Width/Resolution)
	// columns.
	Grid [][]bool

	// Runs holds, per grid column, the column's ink runs in top-to-bottom
	// order. Runs within a column never overlap.
	Runs [][]Run

	// Scale and Rotation are placement modifiers set by the layout caller.
	// They are not derived from geometry. Defaults: 1 and 0.
	Scale    float64
	Rotation float64

	// Space marks the synthetic blank glyph. A space glyph has a
	// single-cell grid, no runs, and never overlaps its neighbors.
	Space bool
}

// Width returns the glyph's logical width.
func (g *Glyph) Width() float64 { return g.Frame.Width }

// Height returns the glyph's logical height.
func (g *Glyph) Height() float64 { return g.Frame.Height }

// GridSize returns the footprint grid dimensions (rows, cols) implied by a
// frame. The dimensions are a deterministic function of the frame alone, so
// two extractions of the same markup always agree.
func GridSize(f Frame) (rows, cols int) {
	rows = int(math.Ceil(f.Height / Resolution))
	cols = int(math.Ceil(f.Width / Resolution))
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}
