package glyph

import (
	"errors"
	"testing"
)

const boxMarkup = `<svg viewBox="0 0 100 100"><path d="M0 0 L25 25"/></svg>`

func TestExtractFrameFromViewBox(t *testing.T) {
	g, err := Extract(`<svg viewBox="10 20 80 40"><path d="M10 20 L50 40"/></svg>`, 'a')
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := Frame{X: 10, Y: 20, Width: 80, Height: 40}
	if g.Frame != want {
		t.Errorf("frame = %+v, want %+v", g.Frame, want)
	}
	wantBounds := Bounds{Left: 10, Right: 90, Top: 20, Bottom: 60}
	if g.Bounds != wantBounds {
		t.Errorf("bounds = %+v, want %+v", g.Bounds, wantBounds)
	}
	if g.Bounds.Right <= g.Bounds.Left || g.Bounds.Bottom <= g.Bounds.Top {
		t.Error("bounds not positive-extent")
	}
}

func TestExtractDefaultFrame(t *testing.T) {
	g, err := Extract(`<svg><path d="M0 0 L50 50"/></svg>`, 'b')
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if g.Frame != DefaultFrame {
		t.Errorf("frame = %+v, want default %+v", g.Frame, DefaultFrame)
	}
}

func TestExtractGridDimensions(t *testing.T) {
	tests := []struct {
		name     string
		viewBox  string
		wantRows int
		wantCols int
	}{
		{"square", "0 0 100 100", 10, 10},
		{"uneven", "0 0 95 42", 5, 10},
		{"tiny", "0 0 5 5", 1, 1},
		{"wide", "0 0 300 10", 1, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := `<svg viewBox="` + tt.viewBox + `"><path d="M1 1 L2 2"/></svg>`
			g, err := Extract(markup, 'x')
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if len(g.Grid) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(g.Grid), tt.wantRows)
			}
			if len(g.Grid[0]) != tt.wantCols {
				t.Errorf("cols = %d, want %d", len(g.Grid[0]), tt.wantCols)
			}
			if len(g.Runs) != tt.wantCols {
				t.Errorf("run columns = %d, want %d", len(g.Runs), tt.wantCols)
			}
		})
	}
}

func TestExtractMarksBoundingBox(t *testing.T) {
	g, err := Extract(boxMarkup, 'a')
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	// The primitive's bbox is (0,0)-(25,25): cells 0..2 in both axes.
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			want := r <= 2 && c <= 2
			if g.Grid[r][c] != want {
				t.Errorf("grid[%d][%d] = %v, want %v", r, c, g.Grid[r][c], want)
			}
		}
	}
}

func TestExtractRunsWellFormed(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100">
		<path d="M0 0 L35 15"/>
		<path d="M0 60 L35 95"/>
	</svg>`
	g, err := Extract(markup, 'e')
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	for c, col := range g.Runs {
		prevBottom := -1
		for i, run := range col {
			if run.Bottom < run.Top {
				t.Errorf("col %d run %d: bottom %d < top %d", c, i, run.Bottom, run.Top)
			}
			if run.Density <= 0 || run.Density > 1 {
				t.Errorf("col %d run %d: density %v out of (0,1]", c, i, run.Density)
			}
			if run.Top <= prevBottom {
				t.Errorf("col %d run %d: overlaps or disorders previous run", c, i)
			}
			prevBottom = run.Bottom
		}
	}
	// Columns 0..3 cross both primitives and must carry two runs.
	if got := len(g.Runs[0]); got != 2 {
		t.Errorf("col 0 runs = %d, want 2", got)
	}
}

func TestExtractNoOutline(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"no paths", `<svg viewBox="0 0 100 100"><g/></svg>`},
		{"empty d", `<svg><path d=""/></svg>`},
		{"only malformed", `<svg><path d="Q 1"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.markup, 'q')
			if !errors.Is(err, ErrNoOutline) {
				t.Errorf("err = %v, want ErrNoOutline", err)
			}
			var noErr *NoOutlineError
			if !errors.As(err, &noErr) {
				t.Fatalf("err = %T, want *NoOutlineError", err)
			}
			if noErr.Char != 'q' {
				t.Errorf("Char = %q, want 'q'", noErr.Char)
			}
		})
	}
}

func TestExtractEmptyMarkup(t *testing.T) {
	if _, err := Extract("   ", 'a'); !errors.Is(err, ErrEmptyMarkup) {
		t.Errorf("err = %v, want ErrEmptyMarkup", err)
	}
}

func TestExtractSkipsMalformedPrimitive(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100"><path d="L"/><path d="M0 0 L25 25"/></svg>`
	g, err := Extract(markup, 'a')
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !g.Grid[0][0] {
		t.Error("surviving primitive not rasterized")
	}
}

func TestExtractCoverageSameDimensions(t *testing.T) {
	markup := `<svg viewBox="0 0 100 100"><path d="M0 0 L100 0 L100 100 L0 100 Z"/></svg>`
	approx, err := Extract(markup, 'o')
	if err != nil {
		t.Fatalf("bounds extract failed: %v", err)
	}
	exact, err := Extract(markup, 'o', WithFootprintMode(FootprintCoverage))
	if err != nil {
		t.Fatalf("coverage extract failed: %v", err)
	}
	if len(exact.Grid) != len(approx.Grid) || len(exact.Grid[0]) != len(approx.Grid[0]) {
		t.Errorf("coverage grid %dx%d, bounds grid %dx%d",
			len(exact.Grid), len(exact.Grid[0]), len(approx.Grid), len(approx.Grid[0]))
	}
	// A full-frame rectangle covers interior cells in both modes.
	if !exact.Grid[5][5] {
		t.Error("coverage mode missed interior cell")
	}
}

func TestExtractDefaults(t *testing.T) {
	g, err := Extract(boxMarkup, 'a')
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if g.Scale != 1 || g.Rotation != 0 {
		t.Errorf("placement defaults = (%v, %v), want (1, 0)", g.Scale, g.Rotation)
	}
	if g.Space {
		t.Error("extracted glyph marked as space")
	}
	if g.Markup != boxMarkup {
		t.Error("markup not carried through")
	}
}

func TestNewSpace(t *testing.T) {
	g := NewSpace(50)
	want := Bounds{Left: 0, Right: 50, Top: 0, Bottom: 1}
	if g.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", g.Bounds, want)
	}
	if len(g.Grid) != 1 || len(g.Grid[0]) != 1 || g.Grid[0][0] {
		t.Errorf("grid = %v, want single false cell", g.Grid)
	}
	if len(g.Runs) != 0 {
		t.Errorf("space glyph has %d run columns, want none", len(g.Runs))
	}
	if !g.Space {
		t.Error("Space flag not set")
	}
}

func TestPlaceholder(t *testing.T) {
	g := Placeholder('x', 30)
	if g.Char != 'x' {
		t.Errorf("Char = %q, want 'x'", g.Char)
	}
	if !g.Space {
		t.Error("placeholder must behave as a space")
	}
	if g.Bounds.Right != 30 {
		t.Errorf("Right = %v, want 30", g.Bounds.Right)
	}
}
