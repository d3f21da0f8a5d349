// Command kerngen generates the production overlap artifacts for a style:
// the pairwise lookup table and the glyph-data set, both written as
// zstd-framed JSON. The job is local and idempotent; re-running it over
// the same assets produces the same artifacts.
//
// Usage:
//
//	kerngen -assets assets/block -style block -out dist/
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/wildstyle/kern"
	"github.com/wildstyle/kern/glyph"
	"github.com/wildstyle/kern/overlap"
	"github.com/wildstyle/kern/table"
)

func main() {
	var (
		assets    = flag.String("assets", "", "directory of glyph markup assets for the style")
		style     = flag.String("style", "", "style name")
		out       = flag.String("out", ".", "output directory for generated artifacts")
		workers   = flag.Int("workers", 0, "generation workers (0 = one per CPU)")
		footprint = flag.String("footprint", "bounds", "footprint mode: bounds or coverage")
		slowest   = flag.Int("slowest", 5, "number of slowest pair entries to report")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	kern.SetLogger(logger)

	if *style == "" || *assets == "" {
		fmt.Fprintln(os.Stderr, "kerngen: -style and -assets are required")
		flag.Usage()
		os.Exit(2)
	}

	mode := glyph.FootprintBounds
	if *footprint == "coverage" {
		mode = glyph.FootprintCoverage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, *assets, *style, *out, *workers, *slowest, mode); err != nil {
		logger.Error("kerngen failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, assets, style, out string,
	workers, slowest int, mode glyph.FootprintMode) error {

	st, failures, err := kern.LoadStyle(os.DirFS(assets), style,
		kern.WithExtractOptions(glyph.WithFootprintMode(mode)))
	if err != nil {
		return err
	}
	for _, f := range failures {
		logger.Warn("asset skipped", "char", string(f.Char), "variant", f.Variant.String(), "err", f.Err)
	}

	chars := overlap.Alphanumeric()
	resolver := kern.NewResolver(kern.WithMode(kern.RuntimeOnly))
	tbl, report, err := resolver.Generate(ctx, st, chars, table.WithWorkers(workers))
	if err != nil {
		return err
	}

	logger.Info("matrix generated",
		"pairs", len(report.Entries),
		"elapsed", report.Total)
	reportSlowest(logger, report, slowest)

	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	tablePath := filepath.Join(out, style+"-overlaps.json.zst")
	if err := writeTable(tablePath, tbl); err != nil {
		return err
	}
	logger.Info("lookup table written", "path", tablePath)

	glyphPath := filepath.Join(out, style+"-glyphs.json.zst")
	if err := writeGlyphs(glyphPath, st, chars); err != nil {
		return err
	}
	logger.Info("glyph data written", "path", glyphPath)
	return nil
}

func reportSlowest(logger *slog.Logger, report *table.Report, n int) {
	if n <= 0 || len(report.Entries) == 0 {
		return
	}
	entries := make([]table.EntryTiming, len(report.Entries))
	copy(entries, report.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Duration > entries[j].Duration
	})
	if n > len(entries) {
		n = len(entries)
	}
	for _, e := range entries[:n] {
		logger.Debug("slow pair",
			"pair", string(e.First)+string(e.Second),
			"ratio", e.Ratio,
			"took", e.Duration)
	}
}

func writeTable(path string, tbl *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tbl.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGlyphs(path string, st *kern.Style, chars []rune) error {
	set := table.NewGlyphSet(st.Name())
	set.Add(st.Space(), glyph.VariantStandard)
	for _, c := range chars {
		for _, v := range []glyph.Variant{
			glyph.VariantStandard, glyph.VariantAlternate, glyph.VariantFirst, glyph.VariantLast,
		} {
			if g, ok := st.Lookup(c, v); ok {
				set.Add(g, v)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := set.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
