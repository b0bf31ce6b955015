// Package stats derives the six normalized performance scores from a
// player's finished match log. Each score lands in [0,100] (defense may
// exceed 100 after its stretch factor) or stays nil when no qualifying
// matches back it, distinguishing "no signal" from "neutral signal".
package stats

import (
	"math"

	"tt-league-service/internal/elo"
)

const (
	attackThreshold      = 10
	defenseThreshold     = 8
	consistencyThreshold = 10
	momentumThreshold    = 5
	teamImpactThreshold  = 8
	clutchThreshold      = 4

	consistencyWindow = 12
	momentumWindow    = 5
)

// Scores holds the derived metrics. Nil means insufficient data.
type Scores struct {
	Attack      *float64 `json:"attack"`
	Defense     *float64 `json:"defense"`
	Consistency *float64 `json:"consistency"`
	Momentum    *float64 `json:"momentum"`
	TeamImpact  *float64 `json:"teamImpact"`
	Clutch      *float64 `json:"clutch"`
}

// Counts reports how many matches back each metric.
type Counts struct {
	Attack      int `json:"attack"`
	Defense     int `json:"defense"`
	Consistency int `json:"consistency"`
	Momentum    int `json:"momentum"`
	TeamImpact  int `json:"teamImpact"`
	Clutch      int `json:"clutch"`
}

// Compute derives all six scores from the player's match log. The metrics
// are independent and the computation is idempotent; the player is not
// mutated.
func Compute(p *elo.Player) (Scores, Counts) {
	log := p.MatchDetails
	var s Scores
	var c Counts

	s.Attack, c.Attack = attack(log)
	s.Defense, c.Defense = defense(log)
	s.Consistency, c.Consistency = consistency(log)
	s.Momentum, c.Momentum = momentum(log)
	s.TeamImpact, c.TeamImpact = teamImpact(log)
	s.Clutch, c.Clutch = clutch(log)

	return s, c
}

// confidenceBlend shrinks a base score toward the neutral midpoint 50 by
// min(count/threshold, 1), then clamps to [0,100]. Callers decide the
// zero-count case themselves; a metric without samples is nil, not 50.
func confidenceBlend(base float64, count int, threshold float64) float64 {
	confidence := math.Min(float64(count)/threshold, 1)
	return clamp(50+(base-50)*confidence, 0, 100)
}

func attack(log []elo.MatchDetail) (*float64, int) {
	sum := 0.0
	count := 0
	for _, d := range log {
		if d.Doubles {
			continue
		}
		total := d.ScoreOwn + d.ScoreOpp
		sum += float64(d.ScoreOwn-d.ScoreOpp) / math.Max(3, float64(total))
		count++
	}
	if count == 0 {
		return nil, 0
	}
	base := 50 + sum/float64(count)*50
	return ptr(confidenceBlend(base, count, attackThreshold)), count
}

// defense prefers losses against clearly stronger opponents (pre-match
// rating more than 5 above the player's); with no such losses it falls back
// to all singles losses. The blended share of sets retained is doubled to
// stretch an otherwise compressed range, deliberately uncapped.
func defense(log []elo.MatchDetail) (*float64, int) {
	var hard, all []elo.MatchDetail
	for _, d := range log {
		if d.Doubles || d.ScoreOwn >= d.ScoreOpp {
			continue
		}
		all = append(all, d)
		preOwn := d.RatingAfter - d.DeltaOwn
		preOpp := d.OppRatingAfter - d.DeltaOpp
		if preOpp-preOwn > 5 {
			hard = append(hard, d)
		}
	}
	qualifying := hard
	if len(qualifying) == 0 {
		qualifying = all
	}
	if len(qualifying) == 0 {
		return nil, 0
	}

	sum := 0.0
	for _, d := range qualifying {
		sum += float64(d.ScoreOwn) / float64(d.ScoreOwn+d.ScoreOpp)
	}
	base := sum / float64(len(qualifying)) * 100
	return ptr(confidenceBlend(base, len(qualifying), defenseThreshold) * 2), len(qualifying)
}

func consistency(log []elo.MatchDetail) (*float64, int) {
	window := tail(log, consistencyWindow)
	if len(window) == 0 {
		return nil, 0
	}

	deltas := make([]float64, len(window))
	for i, d := range window {
		deltas[i] = math.Abs(d.DeltaOwn)
	}
	normalized := math.Min(stddev(deltas)/12, 1.5)
	base := 100 - normalized*100
	return ptr(confidenceBlend(base, len(window), consistencyThreshold)), len(window)
}

func momentum(log []elo.MatchDetail) (*float64, int) {
	window := tail(log, momentumWindow)
	if len(window) == 0 {
		return nil, 0
	}

	sum := 0.0
	for _, d := range window {
		sum += d.DeltaOwn
	}
	base := 50 + sum/float64(len(window))*3
	return ptr(confidenceBlend(base, len(window), momentumThreshold)), len(window)
}

func teamImpact(log []elo.MatchDetail) (*float64, int) {
	wins := 0
	count := 0
	for _, d := range log {
		if !d.Doubles {
			continue
		}
		count++
		if d.ScoreOwn > d.ScoreOpp {
			wins++
		}
	}
	if count == 0 {
		return nil, 0
	}
	base := float64(wins) / float64(count) * 100
	return ptr(confidenceBlend(base, count, teamImpactThreshold)), count
}

func clutch(log []elo.MatchDetail) (*float64, int) {
	wins := 0
	count := 0
	for _, d := range log {
		if d.ScoreOwn+d.ScoreOpp != 5 {
			continue
		}
		count++
		if d.ScoreOwn > d.ScoreOpp {
			wins++
		}
	}
	if count == 0 {
		return nil, 0
	}
	winRate := float64(wins) / float64(count)
	base := 50 + (winRate-0.5)*100
	return ptr(confidenceBlend(base, count, clutchThreshold)), count
}

func tail(log []elo.MatchDetail, n int) []elo.MatchDetail {
	if len(log) <= n {
		return log
	}
	return log[len(log)-n:]
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	return math.Sqrt(variance / float64(len(values)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 {
	return &v
}
