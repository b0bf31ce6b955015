package elo

// kFactor returns the rating volatility multiplier for a player's n-th
// match, n counting singles and doubles together and including the match
// about to be scored. New players move fast, veterans settle at 10.
func kFactor(totalMatches int) float64 {
	switch totalMatches {
	case 1:
		return 30
	case 2:
		return 26
	case 3:
		return 22
	case 4:
		return 18
	case 5:
		return 14
	default:
		return 10
	}
}
