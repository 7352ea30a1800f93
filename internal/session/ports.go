package session

import (
	"context"

	"github.com/robalobadob/puzzleforge/internal/catalog"
	"github.com/robalobadob/puzzleforge/internal/puzzle"
	"github.com/robalobadob/puzzleforge/internal/theme"
)

// Selector supplies the puzzle for each round.
type Selector interface {
	Select(ctx context.Context, req catalog.Request) puzzle.Puzzle
}

// Prompter reads one line of player input. ReadLine should give up with
// ctx.Err() once ctx is cancelled.
type Prompter interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// RoundView is everything shown when a round begins.
type RoundView struct {
	Theme  theme.Theme
	Config Config
	Index  int
	Score  int
	Streak int
	Puzzle puzzle.Puzzle
}

// OutcomeView is everything shown when a round ends.
type OutcomeView struct {
	Theme        theme.Theme
	Outcome      RoundOutcome
	Puzzle       puzzle.Puzzle
	TimerEnabled bool
}

// UI renders session events. Implementations must not block on input.
type UI interface {
	RoundStarted(v RoundView)
	ShowOptions()
	HintRevealed(label string, number int, text string)
	HintsExhausted()
	WrongAnswer(remaining int)
	RoundEnded(v OutcomeView)
	Results(s Summary)
	Sound(success bool)
}
