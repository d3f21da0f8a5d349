package overlap

import "unicode"

// dampenFactor narrows the usable range for exception pairs. Exceptions
// never widen a range, only shrink it toward the minimum.
const dampenFactor = 0.7

// Rule is the per-base-letter overlap policy: the default range plus exact
// per-pair overrides.
// Invariant: 0 <= Min <= Max <= 1.
type Rule struct {
	// Min and Max bound the overlap ratio for pairs starting with this
	// letter.
	Min float64
	Max float64

	// Special maps a following character to an exact overlap ratio,
	// bypassing the range entirely.
	Special map[rune]float64
}

// RuleSet maps a base letter (normalized per Key) to its rule.
type RuleSet map[rune]Rule

// Exceptions lists, per base letter, the following characters whose
// overlap range is dampened rather than overridden.
type Exceptions map[rune][]rune

// Key normalizes a character for rule lookup: alphabetic characters are
// lowercased, everything else (digits, punctuation) passes through as-is.
func Key(c rune) rune {
	if unicode.IsLetter(c) {
		return unicode.ToLower(c)
	}
	return c
}

// contains reports whether the exception list for base includes c.
func (e Exceptions) contains(base, c rune) bool {
	for _, x := range e[base] {
		if x == c {
			return true
		}
	}
	return false
}

// Valid reports whether the rule's range is well-formed.
func (r Rule) Valid() bool {
	return r.Min >= 0 && r.Min <= r.Max && r.Max <= 1
}
