package overlap

import "github.com/wildstyle/kern/glyph"

// Resolve produces the overlap ratio for an ordered glyph pair. The result
// is always in [0, 1] and every output traces to exactly one of: the space
// rule, a special case, an exception-dampened midpoint, or the plain
// midpoint. Resolution is a single pass with no backtracking and never
// fails.
//
// Priority order:
//
//  1. A space on either side overlaps nothing: 0.
//  2. Characters normalize per Key for all lookups.
//  3. The previous glyph's rule applies, or def when it has none.
//  4. A special case for the current character is an exact override.
//  5. An exception dampens Max to max(Min, Max*0.7) before the midpoint.
//  6. Otherwise the midpoint of the rule's range.
func Resolve(prev, curr *glyph.Glyph, rules RuleSet, def Rule, exc Exceptions) float64 {
	if prev.Space || curr.Space {
		return 0
	}

	prevKey := Key(prev.Char)
	currKey := Key(curr.Char)

	rule, ok := rules[prevKey]
	if !ok {
		rule = def
	}

	if v, ok := rule.Special[currKey]; ok {
		return v
	}

	minOv, maxOv := rule.Min, rule.Max
	if exc.contains(prevKey, currKey) {
		maxOv = maxOv * dampenFactor
		if maxOv < minOv {
			maxOv = minOv
		}
	}

	return (minOv + maxOv) / 2
}
