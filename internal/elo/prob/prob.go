// Package prob holds the league's probability model: a logistic win
// probability over rating differentials and a best-of-5 score distribution
// derived from it.
package prob

import "math"

// ratingScale is the logistic divisor. The league tuned this to 300 rather
// than the traditional 400 to match its compressed rating spread; changing
// it breaks numeric compatibility with historical predictions.
const ratingScale = 300

// Win returns the probability that a player rated ratingA beats a player
// rated ratingB.
func Win(ratingA, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/ratingScale))
}

// Outcomes enumerates the six possible best-of-5 scorelines from the
// perspective of the first player.
var Outcomes = []string{"3-0", "3-1", "3-2", "2-3", "1-3", "0-3"}

// ScoreDistribution maps a match-level win probability to percentages for
// each best-of-5 scoreline, summing to 100.
//
// The model treats every set as an independent Bernoulli trial at the
// match-level probability p, counting binomial paths to three wins (1, 3
// and 6 for zero, one and two lost sets). That is knowingly coarser than a
// true per-set model and is kept for compatibility with historical output.
func ScoreDistribution(p float64) map[string]float64 {
	q := 1 - p
	p3 := p * p * p
	q3 := q * q * q

	raw := map[string]float64{
		"3-0": p3,
		"3-1": 3 * p3 * q,
		"3-2": 6 * p3 * q * q,
		"2-3": 6 * q3 * p * p,
		"1-3": 3 * q3 * p,
		"0-3": q3,
	}

	total := 0.0
	for _, v := range raw {
		total += v
	}

	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		out[k] = v / total * 100
	}
	return out
}
