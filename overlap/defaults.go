package overlap

// Default policy for the standard 36-character alphanumeric set.
//
// The ranges are hand-tuned for heavy lettering styles: letters with an
// open or receding right side (c, f, k, l, r, t, v, y) invite the next
// letter further in, closed round letters (b, d, o, p, 0) keep it out.
// Special cases pin pairs that the range midpoint gets visibly wrong, and
// exceptions damp pairs that collide when both letterforms are busy on the
// facing sides.

// DefaultRule applies to characters with no entry in the rule set.
func DefaultRule() Rule {
	return Rule{Min: 0.08, Max: 0.16}
}

// DefaultRules returns the built-in per-letter policy. The returned map is
// a fresh copy; callers may modify it freely.
func DefaultRules() RuleSet {
	return RuleSet{
		'a': {Min: 0.08, Max: 0.16},
		'b': {Min: 0.05, Max: 0.12},
		'c': {Min: 0.10, Max: 0.22, Special: map[rune]float64{'o': 0.14}},
		'd': {Min: 0.05, Max: 0.12},
		'e': {Min: 0.08, Max: 0.18},
		'f': {Min: 0.12, Max: 0.26, Special: map[rune]float64{'i': 0.30, 'j': 0.28}},
		'g': {Min: 0.06, Max: 0.14},
		'h': {Min: 0.07, Max: 0.15},
		'i': {Min: 0.06, Max: 0.12},
		'j': {Min: 0.06, Max: 0.12},
		'k': {Min: 0.10, Max: 0.24},
		'l': {Min: 0.12, Max: 0.26, Special: map[rune]float64{'t': 0.32, 'y': 0.28}},
		'm': {Min: 0.05, Max: 0.12},
		'n': {Min: 0.06, Max: 0.13},
		'o': {Min: 0.05, Max: 0.11},
		'p': {Min: 0.05, Max: 0.12},
		'q': {Min: 0.05, Max: 0.12},
		'r': {Min: 0.11, Max: 0.24, Special: map[rune]float64{'n': 0.18, 'm': 0.18}},
		's': {Min: 0.07, Max: 0.15},
		't': {Min: 0.12, Max: 0.26, Special: map[rune]float64{'t': 0.20}},
		'u': {Min: 0.06, Max: 0.13},
		'v': {Min: 0.10, Max: 0.22},
		'w': {Min: 0.07, Max: 0.16},
		'x': {Min: 0.09, Max: 0.18},
		'y': {Min: 0.10, Max: 0.22},
		'z': {Min: 0.08, Max: 0.17},
		'0': {Min: 0.04, Max: 0.10},
		'1': {Min: 0.08, Max: 0.16},
		'2': {Min: 0.06, Max: 0.14},
		'3': {Min: 0.06, Max: 0.14},
		'4': {Min: 0.08, Max: 0.18},
		'5': {Min: 0.06, Max: 0.14},
		'6': {Min: 0.05, Max: 0.12},
		'7': {Min: 0.09, Max: 0.20},
		'8': {Min: 0.04, Max: 0.11},
		'9': {Min: 0.05, Max: 0.12},
	}
}

// DefaultExceptions returns the built-in dampened pairs.
func DefaultExceptions() Exceptions {
	return Exceptions{
		'a': {'d', 'b'},
		'c': {'c'},
		'e': {'s'},
		'f': {'f'},
		'k': {'x', 'z'},
		'o': {'o', 'c'},
		'r': {'t'},
		's': {'s', 'z'},
		't': {'f'},
		'v': {'w'},
		'w': {'v'},
		'x': {'x'},
		'z': {'x', 's'},
		'7': {'4'},
	}
}

// Alphanumeric is the standard supported character set: a-z then 0-9.
func Alphanumeric() []rune {
	chars := make([]rune, 0, 36)
	for c := 'a'; c <= 'z'; c++ {
		chars = append(chars, c)
	}
	for c := '0'; c <= '9'; c++ {
		chars = append(chars, c)
	}
	return chars
}
