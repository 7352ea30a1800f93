package console

import (
	"fmt"

	"github.com/robalobadob/puzzleforge/internal/leaderboard"
	"github.com/robalobadob/puzzleforge/internal/scoring"
	"github.com/robalobadob/puzzleforge/internal/session"
)

var tierMessages = map[scoring.Tier]string{
	scoring.TierOutstanding: "🏆 Outstanding run! Judge-ready performance.",
	scoring.TierStrong:      "🔥 Strong game! Nice balance of skill and hints.",
	scoring.TierGood:        "🧠 Good run! Tune strategy and hints for a better score.",
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// RoundStarted draws the round header and the puzzle.
func (c *Console) RoundStarted(v session.RoundView) {
	c.Clear()
	c.Banner(v.Theme.Name)
	c.Println(c.Info(v.Theme.Intro))
	c.Divider("=")
	c.Printf("%s %d/%d | Score: %d | Streak: %d\n", v.Theme.RoundLabel, v.Index, v.Config.Rounds, v.Score, v.Streak)
	c.Printf("Difficulty: %s | AI Mode: %s | Timer: %s | Sound: %s\n",
		v.Config.Difficulty, onOff(v.Config.UseExternal), onOff(v.Config.TimerEnabled), onOff(v.Config.SoundEnabled))
	c.Printf("Player: %s | Demo Mode: %s\n", v.Config.PlayerName, onOff(v.Config.DemoMode))
	c.Divider("-")
	c.Printf("\nCategory: %s\n", v.Puzzle.Category)
	c.Printf("Puzzle: %s\n", v.Puzzle.Question)
}

// ShowOptions lists the commands available during a round.
func (c *Console) ShowOptions() {
	c.Println("\nOptions: [answer] Submit answer | [hint] Get hint | [skip] Skip puzzle")
}

// HintRevealed prints one hint.
func (c *Console) HintRevealed(label string, number int, text string) {
	c.Println(c.Info(fmt.Sprintf("\n%s %d: %s", label, number, text)))
}

// HintsExhausted reports that every hint has been shown.
func (c *Console) HintsExhausted() {
	c.Println(c.Warning("\nNo more hints available."))
}

// WrongAnswer reports a miss that still leaves attempts.
func (c *Console) WrongAnswer(remaining int) {
	c.Println(c.Error("\n❌ Not correct."))
	c.Printf("Attempts remaining: %d\n", remaining)
}

// RoundEnded reveals the answer and how the round went.
func (c *Console) RoundEnded(v session.OutcomeView) {
	out := v.Outcome
	switch {
	case out.Solved:
		c.Println(c.Success("\n✅ Correct! " + v.Theme.SuccessText))
		c.Println(c.Success(fmt.Sprintf("+%d points", out.Points)))
		if v.TimerEnabled {
			c.Println(c.Info(fmt.Sprintf("⏱️ Time: %ds", out.ElapsedSeconds)))
		}
	case out.Skipped:
		c.Println(c.Warning("\n⏭️  Skipped. " + v.Theme.FailText))
	default:
		c.Println(c.Error("\n❌ Not correct."))
		c.Println(c.Error("\nNo attempts left. " + v.Theme.FailText))
	}
	c.Printf("Answer: %s\n", v.Puzzle.Answer)
	c.Printf("Explanation: %s\n", v.Puzzle.Explanation)
}

// Results draws the end-of-session screen.
func (c *Console) Results(s session.Summary) {
	c.Clear()
	c.Banner("PuzzleForge Results")
	c.Println(c.Info("=== FINAL RESULTS ==="))
	c.Printf("Player: %s\n", s.Player)
	c.Printf("Rounds played: %d\n", s.Rounds)
	c.Printf("Final score: %d\n", s.Score)
	c.Printf("Max streak: %d\n", s.MaxStreak)
	if s.HasAverage {
		c.Printf("Average round time: %.1fs\n", s.AverageSeconds)
	}
	msg := tierMessages[s.Tier]
	if s.Tier == scoring.TierGood {
		c.Println(c.Warning(msg))
	} else {
		c.Println(c.Success(msg))
	}
}

// Sound rings the bell once for a success and twice for a miss.
func (c *Console) Sound(success bool) {
	c.Bell()
	if !success {
		c.Bell()
	}
}

// Leaderboard prints the ranked records.
func (c *Console) Leaderboard(records []leaderboard.Record) {
	c.Println(c.Info("=== TOP SCORES ==="))
	if len(records) == 0 {
		c.Println(c.Warning("No scores yet. Play a game first!"))
		return
	}
	for i, r := range records {
		c.Printf("%2d. %-12s Score: %4d | %-6s | %-9s | Rounds: %d\n",
			i+1, r.Player, r.Score, r.Difficulty, r.Theme, r.Rounds)
	}
}

var _ session.UI = (*Console)(nil)
var _ session.Prompter = (*Console)(nil)
