// Package generator produces puzzles from an external text-generation service.
//
// Every failure (missing credentials, transport errors, malformed output)
// collapses into "no puzzle": callers receive ok=false and fall back to the
// local catalog. Nothing in this package returns an error past Generate.
package generator

import (
	"context"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

// Source generates one puzzle of the requested difficulty.
// ok is false when no puzzle could be produced.
type Source interface {
	Generate(ctx context.Context, d puzzle.Difficulty) (p puzzle.Puzzle, ok bool)
}

// Disabled never produces a puzzle.
type Disabled struct{}

func (Disabled) Generate(context.Context, puzzle.Difficulty) (puzzle.Puzzle, bool) {
	return puzzle.Puzzle{}, false
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, d puzzle.Difficulty) (puzzle.Puzzle, bool)

func (f SourceFunc) Generate(ctx context.Context, d puzzle.Difficulty) (puzzle.Puzzle, bool) {
	return f(ctx, d)
}
