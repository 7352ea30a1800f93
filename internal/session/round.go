// internal/session/round.go
//
// Attempt engine for a single puzzle.
// Responsibilities:
//   - Track attempts used and hints revealed for one puzzle.
//   - Match submitted answers using the normalisation rule below.
//   - Track state transitions: playing → solved/failed/skipped.
//
// Matching rule:
//   - Both sides are trimmed, lowercased and have internal whitespace collapsed.
//   - Nothing else (no fuzzy matching, no synonyms).
//
// Notes:
//   - Hints never consume attempts.
//   - Blank submissions are ignored and leave the round untouched.
package session

import (
	"errors"
	"strings"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

// MaxAttempts is the number of answer submissions allowed per round.
const MaxAttempts = 3

// ErrRoundFinished is returned when acting on a round that is already over.
var ErrRoundFinished = errors.New("round finished")

// RoundState is a coarse representation of where a round stands.
type RoundState string

const (
	StatePlaying RoundState = "playing"
	StateSolved  RoundState = "solved"
	StateFailed  RoundState = "failed"
	StateSkipped RoundState = "skipped"
)

// Verdict is the result of one submission.
type Verdict int

const (
	VerdictIgnored   Verdict = iota // blank input, nothing consumed
	VerdictCorrect                  // round solved
	VerdictWrong                    // wrong, attempts remain
	VerdictExhausted                // wrong, no attempts left
)

// Round holds the state of one puzzle being played.
type Round struct {
	Puzzle      puzzle.Puzzle
	MaxAttempts int
	Attempts    int // submissions made so far
	HintsUsed   int // hints revealed so far
	state       RoundState
}

// NewRound starts a round for p.
func NewRound(p puzzle.Puzzle) *Round {
	return &Round{Puzzle: p, MaxAttempts: MaxAttempts, state: StatePlaying}
}

// State reports the current round state.
func (r *Round) State() RoundState { return r.state }

// Finished reports whether the round is over.
func (r *Round) Finished() bool { return r.state != StatePlaying }

// Solved reports whether the round ended with a correct answer.
func (r *Round) Solved() bool { return r.state == StateSolved }

// Remaining reports how many submissions are left.
func (r *Round) Remaining() int { return max(0, r.MaxAttempts-r.Attempts) }

// Hint reveals the next hint. ok is false once every hint has been shown;
// asking again is harmless.
func (r *Round) Hint() (text string, number int, ok bool) {
	if r.Finished() || r.HintsUsed >= len(r.Puzzle.Hints) {
		return "", r.HintsUsed, false
	}
	text = r.Puzzle.Hints[r.HintsUsed]
	r.HintsUsed++
	return text, r.HintsUsed, true
}

// Skip gives up on the round.
func (r *Round) Skip() error {
	if r.Finished() {
		return ErrRoundFinished
	}
	r.state = StateSkipped
	return nil
}

// Submit checks an answer and consumes one attempt unless the input is blank.
func (r *Round) Submit(answer string) (Verdict, error) {
	if r.Finished() {
		return VerdictIgnored, ErrRoundFinished
	}
	if strings.TrimSpace(answer) == "" {
		return VerdictIgnored, nil
	}

	r.Attempts++
	if Normalize(answer) == Normalize(r.Puzzle.Answer) {
		r.state = StateSolved
		return VerdictCorrect, nil
	}
	if r.Attempts >= r.MaxAttempts {
		r.state = StateFailed
		return VerdictExhausted, nil
	}
	return VerdictWrong, nil
}

// Normalize lowercases s, trims it and collapses runs of whitespace to one space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
