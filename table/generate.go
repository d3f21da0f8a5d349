package table

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/wildstyle/kern/glyph"
	"github.com/wildstyle/kern/internal/parallel"
	"github.com/wildstyle/kern/overlap"
)

// Option configures batch generation.
type Option func(*config)

type config struct {
	workers int
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		workers: 0, // parallel.New treats 0 as GOMAXPROCS
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers sets the number of generation workers.
// Zero or negative means one per available CPU.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithLogger sets the logger for generation progress diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// EntryTiming records how long one pair entry took to resolve.
type EntryTiming struct {
	First    rune
	Second   rune
	Ratio    float64
	Duration time.Duration
}

// Report is the per-entry diagnostic metadata from one generation run.
type Report struct {
	// Entries holds one timing per completed pair, in pair order
	// (first-character major).
	Entries []EntryTiming

	// Total is the wall-clock duration of the whole batch.
	Total time.Duration
}

// Generate computes the full pairwise overlap matrix for the given
// character set: one overlap.Resolve call per ordered pair in the
// cross-product of chars. Entries are independent, so the batch fans out
// across a worker pool; no entry depends on another and results merge in
// any order.
//
// glyphs supplies the extracted glyph per character where available. A
// character without a glyph still gets entries (rule resolution needs only
// the character and its space flag), so a table can be generated from a
// rule set before any asset exists.
//
// Cancellation is safe at entry granularity: on a done context, Generate
// returns the table holding every already-completed entry together with
// ctx.Err(). Either use the partial table or regenerate; it is a valid
// snapshot of the pairs it contains.
func Generate(ctx context.Context, style string, chars []rune, glyphs map[rune]*glyph.Glyph,
	rules overlap.RuleSet, def overlap.Rule, exc overlap.Exceptions, opts ...Option) (*Table, *Report, error) {

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(chars)
	total := n * n
	cfg.logger.Info("table: generating overlap matrix",
		"style", style,
		"characters", n,
		"pairs", total)

	resolved := make([]glyphOrChar, n)
	for i, c := range chars {
		resolved[i] = glyphOrChar{glyph: glyphs[c], char: c}
	}

	var (
		ratios    = make([]float64, total)
		durations = make([]time.Duration, total)
		completed = make([]bool, total)
	)

	start := time.Now()
	pool := parallel.New(cfg.workers)
	defer pool.Close()

	poolErr := pool.Each(ctx, total, func(i int) {
		prev := resolved[i/n]
		curr := resolved[i%n]
		t0 := time.Now()
		ratios[i] = overlap.Resolve(prev.get(), curr.get(), rules, def, exc)
		durations[i] = time.Since(t0)
		completed[i] = true
	})

	entries := make(map[rune]map[rune]float64, n)
	report := &Report{Entries: make([]EntryTiming, 0, total)}
	for i := 0; i < total; i++ {
		if !completed[i] {
			continue
		}
		first, second := chars[i/n], chars[i%n]
		row := entries[first]
		if row == nil {
			row = make(map[rune]float64, n)
			entries[first] = row
		}
		row[second] = ratios[i]
		report.Entries = append(report.Entries, EntryTiming{
			First:    first,
			Second:   second,
			Ratio:    ratios[i],
			Duration: durations[i],
		})
	}
	report.Total = time.Since(start)

	cfg.logger.Info("table: generation finished",
		"style", style,
		"entries", len(report.Entries),
		"elapsed", report.Total,
		"cancelled", poolErr != nil)

	return newTable(style, entries), report, poolErr
}

// glyphOrChar defers synthesizing a bare glyph for characters that have no
// extracted asset.
type glyphOrChar struct {
	glyph *glyph.Glyph
	char  rune
}

func (g glyphOrChar) get() *glyph.Glyph {
	if g.glyph != nil {
		return g.glyph
	}
	return &glyph.Glyph{Char: g.char}
}
