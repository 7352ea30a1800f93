package session

import (
	"github.com/robalobadob/puzzleforge/internal/puzzle"
	"github.com/robalobadob/puzzleforge/internal/scoring"
)

// Config is the immutable set of options chosen at setup.
type Config struct {
	Rounds       int
	UseExternal  bool
	Difficulty   puzzle.Difficulty
	Theme        string
	TimerEnabled bool
	PlayerName   string
	DemoMode     bool
	SoundEnabled bool
}

// Defaults used by setup when input is blank or invalid.
const (
	DefaultRounds     = 5
	MinRounds         = 1
	MaxRounds         = 20
	DefaultPlayerName = "Player"
	DefaultDifficulty = puzzle.Easy
)

// DefaultConfig returns the configuration used when every setup prompt is left blank.
func DefaultConfig(theme string) Config {
	return Config{
		Rounds:       DefaultRounds,
		Difficulty:   DefaultDifficulty,
		Theme:        theme,
		TimerEnabled: true,
		PlayerName:   DefaultPlayerName,
	}
}

// RoundOutcome is the result of one round.
type RoundOutcome struct {
	Index          int
	Solved         bool
	Skipped        bool
	AttemptsUsed   int
	HintsUsed      int
	ElapsedSeconds int
	Points         int
}

// State is the running tally of a session.
type State struct {
	Score      int
	Streak     int
	MaxStreak  int
	RoundTimes []int
}

// Summary is what the results screen and leaderboard need.
type Summary struct {
	SessionID      string
	Player         string
	Rounds         int
	Score          int
	MaxStreak      int
	AverageSeconds float64
	HasAverage     bool
	Tier           scoring.Tier
}
