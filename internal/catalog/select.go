package catalog

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

// Request describes the puzzle wanted for one round.
type Request struct {
	Difficulty  puzzle.Difficulty
	DemoMode    bool
	RoundIndex  int // 1-based
	UseExternal bool
}

// Select picks the puzzle for a round.
//
// Order of precedence:
//  1. Demo mode walks the filtered pool in file order, one entry per round.
//  2. External generation is tried when requested; any failure falls through.
//  3. Otherwise a uniform random pick from the filtered pool.
func (c *Catalog) Select(ctx context.Context, req Request) puzzle.Puzzle {
	pool := c.Filter(req.Difficulty)

	if req.DemoMode {
		return pool[demoIndex(req.RoundIndex, len(pool))]
	}

	if req.UseExternal {
		if p, ok := c.source.Generate(ctx, req.Difficulty); ok {
			log.Debug().Str("difficulty", req.Difficulty.String()).Str("category", p.Category).Msg("using generated puzzle")
			return p
		}
		log.Debug().Str("difficulty", req.Difficulty.String()).Msg("generation unavailable, using catalog")
	}

	return pool[c.rng.IntN(len(pool))]
}

// demoIndex maps a 1-based round number onto the pool, wrapping around.
func demoIndex(roundIndex, n int) int {
	if n <= 0 {
		return 0
	}
	i := (roundIndex - 1) % n
	if i < 0 {
		i += n
	}
	return i
}
