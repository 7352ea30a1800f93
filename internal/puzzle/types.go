// internal/puzzle/types.go
//
// Core type definitions shared by every part of the game.
// Defines:
//   - Difficulty: coarse pool partition (easy/medium/hard).
//   - Puzzle: one immutable question with its answer, hints and explanation.

package puzzle

import "strings"

// Difficulty is the coarse partition key of the puzzle pool.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every known difficulty in prompt order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty maps a free-form label onto a known Difficulty.
// The second return value is false for unknown labels.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Easy, Medium, Hard:
		return d, true
	}
	return "", false
}

func (d Difficulty) String() string { return string(d) }

// Puzzle holds a single question. Values are treated as immutable once built.
type Puzzle struct {
	Category    string     `json:"category" validate:"required"`
	Question    string     `json:"question" validate:"required"`
	Answer      string     `json:"answer" validate:"required"`
	Hints       []string   `json:"hints" validate:"required"` // progressive, revealed one at a time; may be empty
	Explanation string     `json:"explanation" validate:"required"`
	Difficulty  Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
}
