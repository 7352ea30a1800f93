package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

func (a *App) howToPlay(ctx context.Context) error {
	a.con.Clear()
	a.con.Banner("How to Play")
	a.con.Println(a.con.Info("=== HOW TO PLAY ==="))
	a.con.Println("- You receive one puzzle per round.")
	a.con.Println("- Type your answer directly to submit.")
	a.con.Println("- Type 'hint' to reveal progressive hints (costs points).")
	a.con.Println("- Type 'skip' to move on.")
	a.con.Println("- Score is based on accuracy, hints used, attempts, and time (if timer mode is ON).")
	a.con.Println("- Theme mode changes the flavor text for a more immersive experience.")
	a.con.Println("- Demo mode gives predictable puzzle order for judge-safe live demos.")
	return a.con.Wait(ctx)
}

func (a *App) showLeaderboard(ctx context.Context) error {
	a.con.Clear()
	a.con.Banner("Leaderboard")
	records, err := a.board.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("leaderboard unavailable, showing empty list")
	}
	a.con.Leaderboard(records)
	return a.con.Wait(ctx)
}

func (a *App) about(ctx context.Context) error {
	a.con.Clear()
	a.con.Banner("About PuzzleForge")
	a.con.Println(a.con.Info("=== ABOUT ==="))
	a.con.Println("PuzzleForge is a terminal-based puzzle game built for hackathon judging.")
	a.con.Println("Design goals:")
	a.con.Println("- Replayability")
	a.con.Println("- Adaptive hints")
	a.con.Println("- Reliable live demo")
	a.con.Println("- Optional AI generation with safe local fallback")
	a.con.Println("- Fast, colorful, polished terminal UX")

	counts := a.catalog.Counts()
	a.con.Printf("\nLocal puzzles: %d (", a.catalog.Len())
	for i, d := range puzzle.Difficulties {
		if i > 0 {
			a.con.Printf(", ")
		}
		a.con.Printf("%s %d", d, counts[d])
	}
	a.con.Println(")")
	status := "not configured"
	if a.external {
		status = "configured"
	}
	a.con.Println(fmt.Sprintf("AI generation: %s", status))
	return a.con.Wait(ctx)
}
