// internal/scoring/scoring.go
//
// Point calculation for solved rounds and end-of-session rating.
//
// Formula for one solved round:
//   120 base
//   - 20 per extra attempt
//   - 15 per hint revealed
//   - 1 per full 10 seconds (timer mode only, capped at 20)
//   + 5 per streak level before this round (capped at 25)
//   floored at 20, so every solve scores something.

package scoring

const (
	basePoints         = 120
	attemptPenalty     = 20
	hintPenalty        = 15
	secondsPerPenalty  = 10
	maxTimePenalty     = 20
	streakBonusPerStep = 5
	maxStreakBonus     = 25
	minPoints          = 20
)

// ComputePoints returns the points for a solved round.
// streak is the streak before this round is counted.
func ComputePoints(attemptsUsed, hintsUsed, secondsUsed int, timerEnabled bool, streak int) int {
	timePenalty := 0
	if timerEnabled {
		timePenalty = min(secondsUsed/secondsPerPenalty, maxTimePenalty)
	}
	bonus := min(streak*streakBonusPerStep, maxStreakBonus)
	points := basePoints -
		(attemptsUsed-1)*attemptPenalty -
		hintsUsed*hintPenalty -
		timePenalty +
		bonus
	return max(minPoints, points)
}

// Tier is the overall rating of a finished session.
type Tier string

const (
	TierOutstanding Tier = "outstanding"
	TierStrong      Tier = "strong"
	TierGood        Tier = "good"
)

// TierFor rates a final score against the number of rounds played.
func TierFor(score, rounds int) Tier {
	switch {
	case score >= rounds*90:
		return TierOutstanding
	case score >= rounds*65:
		return TierStrong
	default:
		return TierGood
	}
}

// AverageSeconds returns the mean of times. ok is false when times is empty.
func AverageSeconds(times []int) (avg float64, ok bool) {
	if len(times) == 0 {
		return 0, false
	}
	total := 0
	for _, t := range times {
		total += t
	}
	return float64(total) / float64(len(times)), true
}
