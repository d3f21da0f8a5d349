package kern

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/wildstyle/kern/cache"
	"github.com/wildstyle/kern/glyph"
	"github.com/wildstyle/kern/overlap"
	"github.com/wildstyle/kern/table"
)

// Mode selects which computation path a Resolver serves overlaps from.
// Mode is plain runtime configuration: the same binary can run a
// table-backed production resolver and an on-demand one side by side.
type Mode int

const (
	// LookupOnly serves from the lookup table exclusively. Missing pairs
	// get the configured fallback; the rule model is never invoked.
	LookupOnly Mode = iota

	// PreferLookup serves from the table and falls back to runtime rule
	// resolution for missing pairs.
	PreferLookup

	// RuntimeOnly always resolves through the rule model, ignoring any
	// table.
	RuntimeOnly
)

func (m Mode) String() string {
	switch m {
	case LookupOnly:
		return "lookup"
	case PreferLookup:
		return "prefer-lookup"
	case RuntimeOnly:
		return "runtime"
	default:
		return "unknown"
	}
}

// Stats counts which path served each resolution since construction.
type Stats struct {
	LookupHits      uint64
	LookupMisses    uint64
	RuntimeResolves uint64
}

// Resolver is the overlap dispatcher: given two adjacent glyphs it returns
// their overlap ratio from whichever path its mode prescribes. Resolution
// never fails; the fallback chain terminates every case.
//
// The table lives in a replaceable snapshot, so a regenerated table can be
// swapped in while resolutions are in flight. Resolver is safe for
// concurrent use.
type Resolver struct {
	mode     Mode
	fallback float64
	rules    overlap.RuleSet
	def      overlap.Rule
	exc      overlap.Exceptions
	snapshot *cache.Snapshot[table.Table]
	score    bool
	logger   *slog.Logger

	lookupHits      atomic.Uint64
	lookupMisses    atomic.Uint64
	runtimeResolves atomic.Uint64
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMode sets the dispatch mode. The default is PreferLookup.
func WithMode(m Mode) ResolverOption {
	return func(r *Resolver) { r.mode = m }
}

// WithFallback sets the ratio served for pairs the table misses in
// LookupOnly mode. The default is 0 (no overlap).
func WithFallback(v float64) ResolverOption {
	return func(r *Resolver) { r.fallback = v }
}

// WithTable installs an initial lookup table.
func WithTable(t *table.Table) ResolverOption {
	return func(r *Resolver) { r.snapshot.Replace(t) }
}

// WithRules replaces the built-in rule policy.
func WithRules(rules overlap.RuleSet, def overlap.Rule, exc overlap.Exceptions) ResolverOption {
	return func(r *Resolver) {
		r.rules = rules
		r.def = def
		r.exc = exc
	}
}

// WithScoreDiagnostics enables density scoring on runtime resolutions.
// The score never changes the result; it is logged at debug level so a
// style author can see how much ink a rule-derived ratio collides.
func WithScoreDiagnostics(enabled bool) ResolverOption {
	return func(r *Resolver) { r.score = enabled }
}

// NewResolver creates a resolver with the built-in rule policy, no table,
// and PreferLookup mode.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		mode:     PreferLookup,
		rules:    overlap.DefaultRules(),
		def:      overlap.DefaultRule(),
		exc:      overlap.DefaultExceptions(),
		snapshot: cache.NewSnapshot[table.Table](nil),
		logger:   Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = Logger()
	}
	return r
}

// SetTable swaps in a freshly generated table. The old table keeps serving
// in-flight resolutions and is returned for the caller to discard.
func (r *Resolver) SetTable(t *table.Table) *table.Table {
	return r.snapshot.Replace(t)
}

// Table returns the currently installed table, if any.
func (r *Resolver) Table() (*table.Table, bool) {
	return r.snapshot.Load()
}

// Resolve returns the overlap ratio for an ordered glyph pair via the
// configured mode.
func (r *Resolver) Resolve(prev, curr *glyph.Glyph) float64 {
	switch r.mode {
	case LookupOnly:
		tbl, _ := r.snapshot.Load()
		if tbl.Contains(prev.Char, curr.Char) {
			r.lookupHits.Add(1)
			return tbl.Lookup(prev.Char, curr.Char, r.fallback)
		}
		r.lookupMisses.Add(1)
		return r.fallback

	case RuntimeOnly:
		return r.runtime(prev, curr)

	default: // PreferLookup
		tbl, _ := r.snapshot.Load()
		if tbl.Contains(prev.Char, curr.Char) {
			r.lookupHits.Add(1)
			return tbl.Lookup(prev.Char, curr.Char, r.fallback)
		}
		r.lookupMisses.Add(1)
		return r.runtime(prev, curr)
	}
}

func (r *Resolver) runtime(prev, curr *glyph.Glyph) float64 {
	r.runtimeResolves.Add(1)
	ratio := overlap.Resolve(prev, curr, r.rules, r.def, r.exc)
	if r.score {
		s := overlap.Score(prev.Runs, curr.Runs, ratio)
		r.logger.Debug("kern: runtime overlap scored",
			"prev", string(prev.Char),
			"curr", string(curr.Char),
			"ratio", ratio,
			"score", s)
	}
	return ratio
}

// ResolveChars resolves a pair by character alone, without footprint
// geometry. Spaces behave as the neutral zero-overlap glyph.
func (r *Resolver) ResolveChars(first, second rune) float64 {
	return r.Resolve(bareGlyph(first), bareGlyph(second))
}

// Word returns the overlap ratio between each adjacent pair of characters
// in word: len(word)-1 ratios for a word of at least two characters.
// Characters the style failed to load resolve through their placeholder,
// which overlaps nothing, so one bad asset never breaks word layout.
func (r *Resolver) Word(st *Style, word string) []float64 {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}
	ratios := make([]float64, len(runes)-1)
	prev := st.Glyph(runes[0], glyph.VariantStandard)
	for i := 1; i < len(runes); i++ {
		curr := st.Glyph(runes[i], glyph.VariantStandard)
		ratios[i-1] = r.Resolve(prev, curr)
		prev = curr
	}
	return ratios
}

// Generate runs the batch generation job for a style over chars using this
// resolver's rule policy, then installs the new table, replacing any
// previous snapshot. On cancellation the partial table is returned but not
// installed.
func (r *Resolver) Generate(ctx context.Context, st *Style, chars []rune, opts ...table.Option) (*table.Table, *table.Report, error) {
	opts = append(opts, table.WithLogger(r.logger))
	tbl, report, err := table.Generate(ctx, st.Name(), chars, st.Glyphs(chars), r.rules, r.def, r.exc, opts...)
	if err == nil {
		r.SetTable(tbl)
	}
	return tbl, report, err
}

// Stats reports which dispatch paths served resolutions so far.
func (r *Resolver) Stats() Stats {
	return Stats{
		LookupHits:      r.lookupHits.Load(),
		LookupMisses:    r.lookupMisses.Load(),
		RuntimeResolves: r.runtimeResolves.Load(),
	}
}

func bareGlyph(c rune) *glyph.Glyph {
	if c == ' ' {
		return glyph.NewSpace(DefaultSpaceWidth)
	}
	return &glyph.Glyph{Char: c}
}
