// internal/leaderboard/leaderboard.go
//
// Top-N leaderboard of finished sessions.
//
// Characteristics:
//   - Records are kept sorted by score, highest first.
//   - Ties keep the order in which they were added (stable sort).
//   - Only the best Limit records survive an Append.

package leaderboard

import (
	"context"
	"sort"
)

// Limit is the number of records kept.
const Limit = 10

// Record is one finished session as persisted.
type Record struct {
	Player     string `json:"player"`
	Score      int    `json:"score"`
	Rounds     int    `json:"rounds"`
	Difficulty string `json:"difficulty"`
	Theme      string `json:"theme"`
	TimerMode  bool   `json:"timer_mode"`
	DemoMode   bool   `json:"demo_mode"`
}

// Store defines the persistence interface for the leaderboard.
type Store interface {
	// Append adds r and keeps the best Limit records.
	Append(ctx context.Context, r Record) error

	// List returns the records, best first. Unreadable state yields an empty list.
	List(ctx context.Context) ([]Record, error)
}

// Rank appends r to records, sorts by score descending (stable) and truncates to Limit.
// The input slice is not modified.
func Rank(records []Record, r Record) []Record {
	out := make([]Record, 0, len(records)+1)
	out = append(out, records...)
	out = append(out, r)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > Limit {
		out = out[:Limit]
	}
	return out
}
