package table

import (
	"github.com/wildstyle/kern/overlap"
)

// Table is a generated overlap lookup table: a complete mapping from every
// ordered pair of the supported character set to its resolved overlap
// ratio. For the standard alphanumeric set that is 36x36 = 1296 entries.
//
// A Table is an immutable snapshot once generated; regeneration produces a
// new Table rather than patching one in place (see cache.Snapshot).
type Table struct {
	style   string
	entries map[rune]map[rune]float64
}

// Style returns the lettering style this table was generated for.
func (t *Table) Style() string { return t.style }

// Len returns the number of pair entries in the table.
func (t *Table) Len() int {
	n := 0
	for _, row := range t.entries {
		n += len(row)
	}
	return n
}

// Lookup returns the ratio for an ordered pair, or fallback when the pair
// is absent. A miss is not an error; callers supply the neutral value they
// want. Characters normalize the same way rule resolution does, so 'A'
// finds the 'a' row.
func (t *Table) Lookup(first, second rune, fallback float64) float64 {
	if t == nil {
		return fallback
	}
	row, ok := t.entries[overlap.Key(first)]
	if !ok {
		return fallback
	}
	v, ok := row[overlap.Key(second)]
	if !ok {
		return fallback
	}
	return v
}

// Contains reports whether the ordered pair has an entry.
func (t *Table) Contains(first, second rune) bool {
	if t == nil {
		return false
	}
	row, ok := t.entries[overlap.Key(first)]
	if !ok {
		return false
	}
	_, ok = row[overlap.Key(second)]
	return ok
}

// newTable builds a table from a dense entry map. Generation and decoding
// both funnel through here; nothing mutates a Table afterwards.
func newTable(style string, entries map[rune]map[rune]float64) *Table {
	return &Table{style: style, entries: entries}
}
