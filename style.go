package kern

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/wildstyle/kern/cache"
	"github.com/wildstyle/kern/glyph"
)

// DefaultSpaceWidth is the advance width of the synthetic space glyph, in
// logical units.
const DefaultSpaceWidth = 50

// CharError reports one character whose extraction failed during a style
// load. Failures never abort the batch; they are collected and the
// character renders through its placeholder.
type CharError struct {
	Char    rune
	Variant glyph.Variant
	Err     error
}

func (e CharError) Error() string {
	return fmt.Sprintf("kern: character %q (%s): %v", e.Char, e.Variant, e.Err)
}

func (e CharError) Unwrap() error { return e.Err }

// Style is one loaded lettering style: every extracted glyph for the
// style, keyed by character and variant, plus the style's space glyph.
// Glyphs are immutable and shared; Style is safe for concurrent use.
type Style struct {
	name   string
	glyphs *cache.Cache[cache.GlyphKey, *glyph.Glyph]
	space  *glyph.Glyph
}

// StyleOption configures style loading.
type StyleOption func(*styleConfig)

type styleConfig struct {
	spaceWidth float64
	extract    []glyph.Option
	logger     *slog.Logger
}

// WithSpaceWidth sets the synthetic space glyph's width.
func WithSpaceWidth(w float64) StyleOption {
	return func(c *styleConfig) {
		if w > 0 {
			c.spaceWidth = w
		}
	}
}

// WithExtractOptions forwards options to every extraction in the load,
// such as glyph.WithFootprintMode.
func WithExtractOptions(opts ...glyph.Option) StyleOption {
	return func(c *styleConfig) {
		c.extract = append(c.extract, opts...)
	}
}

// LoadStyle reads every glyph asset under fsys and extracts it.
//
// Assets are one markup file per character per variant, named
// "<char>.svg" for the standard form or "<char>_<variant>.svg" for
// alternate, first, and last forms. Files that fail extraction are
// reported in the returned CharError slice; the load itself fails only
// when the directory cannot be read at all.
func LoadStyle(fsys fs.FS, name string, opts ...StyleOption) (*Style, []CharError, error) {
	cfg := styleConfig{
		spaceWidth: DefaultSpaceWidth,
		logger:     Logger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.extract = append(cfg.extract, glyph.WithLogger(cfg.logger))

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("kern: reading style %q: %w", name, err)
	}

	st := &Style{
		name:   name,
		glyphs: cache.NewGlyphCache(0),
		space:  glyph.NewSpace(cfg.spaceWidth),
	}

	var failures []CharError
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		char, variant, ok := parseAssetName(entry.Name())
		if !ok {
			continue
		}
		markup, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			failures = append(failures, CharError{Char: char, Variant: variant, Err: err})
			continue
		}
		g, err := glyph.Extract(string(markup), char, cfg.extract...)
		if err != nil {
			cfg.logger.Warn("kern: glyph extraction failed, placeholder substituted",
				"style", name,
				"char", string(char),
				"variant", variant.String(),
				"err", err)
			failures = append(failures, CharError{Char: char, Variant: variant, Err: err})
			continue
		}
		st.glyphs.Set(cache.GlyphKey{Style: name, Char: char, Variant: variant}, g)
	}

	return st, failures, nil
}

// NewStyleFromGlyphs builds a style from already-extracted glyphs, such as
// records decoded from the glyph-data artifact. All glyphs go in under the
// standard variant unless keyed otherwise via Put.
func NewStyleFromGlyphs(name string, glyphs map[rune]*glyph.Glyph, spaceWidth float64) *Style {
	if spaceWidth <= 0 {
		spaceWidth = DefaultSpaceWidth
	}
	st := &Style{
		name:   name,
		glyphs: cache.NewGlyphCache(0),
		space:  glyph.NewSpace(spaceWidth),
	}
	for c, g := range glyphs {
		st.glyphs.Set(cache.GlyphKey{Style: name, Char: c, Variant: glyph.VariantStandard}, g)
	}
	return st
}

// Name returns the style's name.
func (s *Style) Name() string { return s.name }

// Space returns the style's space glyph.
func (s *Style) Space() *glyph.Glyph { return s.space }

// Put stores a glyph under an explicit variant.
func (s *Style) Put(g *glyph.Glyph, variant glyph.Variant) {
	s.glyphs.Set(cache.GlyphKey{Style: s.name, Char: g.Char, Variant: variant}, g)
}

// Lookup returns the glyph stored for exactly this character and variant,
// with no fallback.
func (s *Style) Lookup(char rune, variant glyph.Variant) (*glyph.Glyph, bool) {
	return s.glyphs.Get(cache.GlyphKey{Style: s.name, Char: char, Variant: variant})
}

// Glyph returns the best available glyph for a character: the requested
// variant, then the standard form, then the placeholder. It never returns
// nil, so renderers need no missing-glyph handling of their own.
func (s *Style) Glyph(char rune, variant glyph.Variant) *glyph.Glyph {
	if char == ' ' {
		return s.space
	}
	if g, ok := s.glyphs.Get(cache.GlyphKey{Style: s.name, Char: char, Variant: variant}); ok {
		return g
	}
	if variant != glyph.VariantStandard {
		if g, ok := s.glyphs.Get(cache.GlyphKey{Style: s.name, Char: char, Variant: glyph.VariantStandard}); ok {
			return g
		}
	}
	return glyph.Placeholder(char, s.space.Width())
}

// Glyphs returns the standard-variant glyph per character for every
// character in chars that loaded successfully. Table generation feeds on
// this map.
func (s *Style) Glyphs(chars []rune) map[rune]*glyph.Glyph {
	out := make(map[rune]*glyph.Glyph, len(chars))
	for _, c := range chars {
		if g, ok := s.glyphs.Get(cache.GlyphKey{Style: s.name, Char: c, Variant: glyph.VariantStandard}); ok {
			out[c] = g
		}
	}
	return out
}

// CacheStats reports the style's glyph cache counters.
func (s *Style) CacheStats() cache.Stats {
	return s.glyphs.Stats()
}

// parseAssetName maps a file name like "a.svg", "a_alternate.svg", or
// "a_first.svg" to its character and variant. Names that do not look like
// glyph assets report ok=false and are skipped.
func parseAssetName(name string) (char rune, variant glyph.Variant, ok bool) {
	ext := path.Ext(name)
	if !strings.EqualFold(ext, ".svg") {
		return 0, 0, false
	}
	base := strings.TrimSuffix(name, ext)
	variant = glyph.VariantStandard
	if i := strings.LastIndexByte(base, '_'); i > 0 {
		variant = glyph.ParseVariant(base[i+1:])
		base = base[:i]
	}
	if utf8.RuneCountInString(base) != 1 {
		return 0, 0, false
	}
	char, _ = utf8.DecodeRuneInString(base)
	return char, variant, true
}
