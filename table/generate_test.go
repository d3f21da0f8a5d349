package table

import (
	"context"
	"testing"

	"github.com/wildstyle/kern/glyph"
	"github.com/wildstyle/kern/overlap"
)

func testRules() (overlap.RuleSet, overlap.Rule, overlap.Exceptions) {
	return overlap.DefaultRules(), overlap.DefaultRule(), overlap.DefaultExceptions()
}

func TestGenerateFullMatrix(t *testing.T) {
	rules, def, exc := testRules()
	chars := overlap.Alphanumeric()

	tbl, report, err := Generate(context.Background(), "block", chars, nil, rules, def, exc)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if tbl.Len() != 36*36 {
		t.Errorf("table has %d entries, want 1296", tbl.Len())
	}
	if len(report.Entries) != 36*36 {
		t.Errorf("report has %d entries, want 1296", len(report.Entries))
	}
	if tbl.Style() != "block" {
		t.Errorf("style = %q, want block", tbl.Style())
	}
	for _, a := range chars {
		for _, b := range chars {
			if !tbl.Contains(a, b) {
				t.Fatalf("pair (%q, %q) missing from generated table", a, b)
			}
		}
	}
}

func TestGenerateMatchesResolve(t *testing.T) {
	rules, def, exc := testRules()
	chars := overlap.Alphanumeric()

	glyphs := map[rune]*glyph.Glyph{}
	for _, c := range chars {
		glyphs[c] = &glyph.Glyph{Char: c}
	}

	tbl, _, err := Generate(context.Background(), "block", chars, glyphs, rules, def, exc)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, a := range chars {
		for _, b := range chars {
			want := overlap.Resolve(glyphs[a], glyphs[b], rules, def, exc)
			got := tbl.Lookup(a, b, -1)
			if got != want {
				t.Errorf("table[%q][%q] = %v, Resolve = %v", a, b, got, want)
			}
		}
	}
}

func TestGenerateCancelledKeepsPartial(t *testing.T) {
	rules, def, exc := testRules()
	chars := overlap.Alphanumeric()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tbl, report, err := Generate(ctx, "block", chars, nil, rules, def, exc)
	if err != context.Canceled {
		t.Fatalf("Generate returned %v, want context.Canceled", err)
	}
	if tbl == nil || report == nil {
		t.Fatal("cancelled Generate must still return partial results")
	}
	if tbl.Len() != len(report.Entries) {
		t.Errorf("table entries %d != report entries %d", tbl.Len(), len(report.Entries))
	}
	// Whatever did complete must agree with the runtime path.
	for _, e := range report.Entries {
		if got := tbl.Lookup(e.First, e.Second, -1); got != e.Ratio {
			t.Errorf("partial entry (%q, %q) = %v, report says %v", e.First, e.Second, got, e.Ratio)
		}
	}
}

func TestGenerateSingleWorker(t *testing.T) {
	rules, def, exc := testRules()
	chars := []rune{'a', 'b', 'c'}
	tbl, report, err := Generate(context.Background(), "tag", chars, nil, rules, def, exc, WithWorkers(1))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if tbl.Len() != 9 {
		t.Errorf("table has %d entries, want 9", tbl.Len())
	}
	if report.Total <= 0 {
		t.Error("report total duration not recorded")
	}
	for _, e := range report.Entries {
		if e.Duration < 0 {
			t.Errorf("entry (%q, %q) has negative duration", e.First, e.Second)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	rules, def, exc := testRules()
	tbl, _, err := Generate(context.Background(), "block", []rune{'a', 'b'}, nil, rules, def, exc)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := tbl.Lookup('a', '!', 0.25); got != 0.25 {
		t.Errorf("Lookup miss = %v, want fallback 0.25", got)
	}
	if got := tbl.Lookup('!', 'a', 0.25); got != 0.25 {
		t.Errorf("Lookup miss = %v, want fallback 0.25", got)
	}
	var nilTable *Table
	if got := nilTable.Lookup('a', 'b', 0.5); got != 0.5 {
		t.Errorf("nil table Lookup = %v, want fallback 0.5", got)
	}
}

func TestLookupNormalizesCase(t *testing.T) {
	rules, def, exc := testRules()
	tbl, _, err := Generate(context.Background(), "block", []rune{'a', 'b'}, nil, rules, def, exc)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if tbl.Lookup('A', 'B', -1) != tbl.Lookup('a', 'b', -1) {
		t.Error("uppercase lookup diverged from lowercase entry")
	}
}
