package table

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"

	"github.com/wildstyle/kern/glyph"
)

// Glyph-data artifact: extracted glyph records persisted beside the lookup
// table so the production renderer never runs extraction. A record carries
// everything render and layout need (bounds, dimensions, markup) plus the
// footprint run summary for runtime overlap scoring.

// RunRecord is the persisted form of one vertical ink run.
type RunRecord struct {
	Top     int     `json:"top"`
	Bottom  int     `json:"bottom"`
	Density float64 `json:"density"`
}

// GlyphRecord is the persisted form of one extracted glyph.
type GlyphRecord struct {
	Character string        `json:"character"`
	Variant   string        `json:"variant"`
	Markup    string        `json:"markup,omitempty"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	Space     bool          `json:"space,omitempty"`
	Runs      [][]RunRecord `json:"runs,omitempty"`
}

// GlyphSet is the persisted collection of glyph records for one style.
type GlyphSet struct {
	Version    int           `json:"version"`
	Style      string        `json:"style"`
	Resolution int           `json:"resolution"`
	Records    []GlyphRecord `json:"records"`
}

// NewGlyphSet creates an empty glyph-data artifact for a style.
func NewGlyphSet(style string) *GlyphSet {
	return &GlyphSet{
		Version:    formatVersion,
		Style:      style,
		Resolution: glyph.Resolution,
	}
}

// Add appends a glyph's record under the given variant.
func (s *GlyphSet) Add(g *glyph.Glyph, variant glyph.Variant) {
	runs := make([][]RunRecord, len(g.Runs))
	for c, col := range g.Runs {
		rr := make([]RunRecord, len(col))
		for i, run := range col {
			rr[i] = RunRecord{Top: run.Top, Bottom: run.Bottom, Density: run.Density}
		}
		runs[c] = rr
	}
	s.Records = append(s.Records, GlyphRecord{
		Character: string(g.Char),
		Variant:   variant.String(),
		Markup:    g.Markup,
		X:         g.Frame.X,
		Y:         g.Frame.Y,
		Width:     g.Frame.Width,
		Height:    g.Frame.Height,
		Space:     g.Space,
		Runs:      runs,
	})
}

// Find returns the record for a character and variant.
func (s *GlyphSet) Find(char rune, variant glyph.Variant) (GlyphRecord, bool) {
	want := string(char)
	wantVariant := variant.String()
	for _, r := range s.Records {
		if r.Character == want && r.Variant == wantVariant {
			return r, true
		}
	}
	return GlyphRecord{}, false
}

// Glyph reconstructs a usable glyph from a persisted record without
// invoking any extraction logic. The boolean grid is not persisted; the
// run summary carries the footprint information the runtime needs.
func (r GlyphRecord) Glyph() *glyph.Glyph {
	char, _ := utf8.DecodeRuneInString(r.Character)
	frame := glyph.Frame{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	runs := make([][]glyph.Run, len(r.Runs))
	for c, col := range r.Runs {
		gr := make([]glyph.Run, len(col))
		for i, run := range col {
			gr[i] = glyph.Run{Top: run.Top, Bottom: run.Bottom, Density: run.Density}
		}
		runs[c] = gr
	}
	return &glyph.Glyph{
		Char:   char,
		Markup: r.Markup,
		Frame:  frame,
		Bounds: glyph.BoundsOf(frame),
		Runs:   runs,
		Scale:  1,
		Space:  r.Space,
	}
}

// Encode writes the glyph set as a zstd-compressed artifact.
func (s *GlyphSet) Encode(w io.Writer) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return fmt.Errorf("table: %w", err)
	}
	return zw.Close()
}

// DecodeGlyphSet reads an artifact written by GlyphSet.Encode.
func DecodeGlyphSet(r io.Reader) (*GlyphSet, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer zr.Close()
	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	var s GlyphSet
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	if s.Version != formatVersion {
		return nil, fmt.Errorf("%w: version %d", ErrBadFormat, s.Version)
	}
	return &s, nil
}
