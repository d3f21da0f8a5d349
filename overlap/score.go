package overlap

import "github.com/wildstyle/kern/glyph"

// Score rates how cleanly two glyphs' ink interlocks at a candidate
// overlap. Higher is better: +1 for every compared run pair whose vertical
// spans stay clear of each other, minus a penalty proportional to the
// vertical co-occurrence extent times both runs' densities when they
// collide. Dense-on-dense vertical collisions cost the most; sparse grazes
// cost little.
//
// Columns are compared index-wise, bounded by the shorter of the two run
// summaries, and within a column runs are compared index-wise the same
// way. The current glyph's spans are shifted by the candidate before the
// intersection test, so a larger candidate both moves the spans and scales
// the penalty through the resulting co-occurrence extent.
//
// Score is a pure diagnostic. It carries no accept/reject threshold; a
// runtime resolver uses it to compare candidates or to log how much a
// rule-derived ratio would collide, never to veto one outright.
func Score(prevRuns, currRuns [][]glyph.Run, candidate float64) float64 {
	cols := len(prevRuns)
	if len(currRuns) < cols {
		cols = len(currRuns)
	}

	var score float64
	for c := 0; c < cols; c++ {
		pCol, qCol := prevRuns[c], currRuns[c]
		n := len(pCol)
		if len(qCol) < n {
			n = len(qCol)
		}
		for i := 0; i < n; i++ {
			p, q := pCol[i], qCol[i]
			qTop := float64(q.Top) + candidate
			qBottom := float64(q.Bottom) + candidate
			extent := min(float64(p.Bottom), qBottom) - max(float64(p.Top), qTop)
			if extent < 0 {
				score++
				continue
			}
			score -= extent * p.Density * q.Density
		}
	}
	return score
}
