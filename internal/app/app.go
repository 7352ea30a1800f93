// internal/app/app.go
//
// Menu-level flow of the game.
// Responsibilities:
//   - Main menu: start, how to play, leaderboard, about, quit.
//   - Setup prompts that build a fresh session.Config for every game.
//   - Post-game menu: play again with a new setup, or return to the main menu.
//   - Saving each finished session to the leaderboard.
//
// Invalid menu choices are reported and re-prompted. Invalid setup answers
// silently fall back to their defaults.

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzleforge/internal/catalog"
	"github.com/robalobadob/puzzleforge/internal/console"
	"github.com/robalobadob/puzzleforge/internal/leaderboard"
	"github.com/robalobadob/puzzleforge/internal/puzzle"
	"github.com/robalobadob/puzzleforge/internal/session"
	"github.com/robalobadob/puzzleforge/internal/theme"
)

// Deps are the collaborators the app needs.
type Deps struct {
	Console     *console.Console
	Catalog     *catalog.Catalog
	Leaderboard leaderboard.Store
	Themes      theme.Table
	// ExternalConfigured reports whether a generation service is set up. Only
	// shown on the About screen; selection falls back silently either way.
	ExternalConfigured bool
	// SessionOptions are passed to every session controller.
	SessionOptions []session.Option
}

// App runs the interactive menus.
type App struct {
	con      *console.Console
	catalog  *catalog.Catalog
	board    leaderboard.Store
	themes   theme.Table
	external bool
	opts     []session.Option
	cfg      session.Config
}

// New builds an App.
func New(d Deps) *App {
	return &App{
		con:      d.Console,
		catalog:  d.Catalog,
		board:    d.Leaderboard,
		themes:   d.Themes,
		external: d.ExternalConfigured,
		opts:     d.SessionOptions,
		cfg:      session.DefaultConfig(d.Themes.Default()),
	}
}

// Run shows the main menu until the player quits or input ends.
func (a *App) Run(ctx context.Context) error {
	err := a.mainMenu(ctx)
	if errors.Is(err, console.ErrInputClosed) {
		log.Info().Msg("input closed, exiting")
		return nil
	}
	return err
}

func (a *App) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.con.Clear()
		a.con.Banner(a.themes.Get(a.cfg.Theme).Name)
		a.con.Println(a.con.Info("=== MAIN MENU ==="))
		a.con.Println("1) Start Game")
		a.con.Println("2) How to Play")
		a.con.Println("3) Leaderboard")
		a.con.Println("4) About")
		a.con.Println("5) Quit")

		raw, err := a.con.ReadLine(ctx, "\nChoose an option: ")
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "1":
			if err := a.playOnce(ctx); err != nil {
				return err
			}
			if err := a.postGameMenu(ctx); err != nil {
				return err
			}
		case "2":
			err = a.howToPlay(ctx)
		case "3":
			err = a.showLeaderboard(ctx)
		case "4":
			err = a.about(ctx)
		case "5", "q", "quit", "exit":
			a.con.Println("\nThanks for playing PuzzleForge. Good luck at the hackathon! 🧩")
			return nil
		default:
			a.con.Println(a.con.Error("\nInvalid choice. Try again."))
			err = a.con.Wait(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// playOnce runs setup, one full session and the leaderboard save.
func (a *App) playOnce(ctx context.Context) error {
	cfg, err := a.setup(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg

	c := session.New(cfg, a.themes.Get(cfg.Theme), a.catalog, a.con, a.con, a.opts...)
	summary, err := c.Play(ctx)
	if err != nil {
		return err
	}
	a.save(ctx, cfg, summary)
	return nil
}

func (a *App) postGameMenu(ctx context.Context) error {
	for {
		a.con.Println(a.con.Info("\n=== POST GAME ==="))
		a.con.Println("1) Play Again (new setup)")
		a.con.Println("2) Main Menu")
		raw, err := a.con.ReadLine(ctx, "Choose: ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(raw) {
		case "1":
			if err := a.playOnce(ctx); err != nil {
				return err
			}
		case "2":
			return nil
		default:
			a.con.Println(a.con.Error("Invalid choice."))
		}
	}
}

// save records the session. Failures are logged; the game carries on.
func (a *App) save(ctx context.Context, cfg session.Config, s session.Summary) {
	rec := leaderboard.Record{
		Player:     s.Player,
		Score:      s.Score,
		Rounds:     s.Rounds,
		Difficulty: cfg.Difficulty.String(),
		Theme:      cfg.Theme,
		TimerMode:  cfg.TimerEnabled,
		DemoMode:   cfg.DemoMode,
	}
	if err := a.board.Append(ctx, rec); err != nil {
		log.Error().Err(err).Str("session_id", s.SessionID).Msg("save leaderboard")
		return
	}
	log.Info().Str("session_id", s.SessionID).Int("score", s.Score).Msg("score saved")
}

func difficultyChoices() []string {
	out := make([]string, len(puzzle.Difficulties))
	for i, d := range puzzle.Difficulties {
		out[i] = d.String()
	}
	return out
}

// setup asks for every session option and returns a new Config.
func (a *App) setup(ctx context.Context) (session.Config, error) {
	a.con.Clear()
	a.con.Banner("PuzzleForge Setup")
	a.con.Println(a.con.Info("=== GAME SETUP ==="))

	cfg := session.DefaultConfig(a.themes.Default())
	var err error

	if cfg.PlayerName, err = a.con.AskText(ctx, "Player name (default Player): ", session.DefaultPlayerName); err != nil {
		return cfg, err
	}
	if cfg.Rounds, err = a.con.AskInt(
		ctx, fmt.Sprintf("How many rounds? (default %d): ", session.DefaultRounds),
		session.DefaultRounds, session.MinRounds, session.MaxRounds,
	); err != nil {
		return cfg, err
	}

	diffs := difficultyChoices()
	diff, err := a.con.AskChoice(
		ctx, fmt.Sprintf("Difficulty [%s] (default %s): ", strings.Join(diffs, "/"), session.DefaultDifficulty),
		diffs, session.DefaultDifficulty.String(),
	)
	if err != nil {
		return cfg, err
	}
	cfg.Difficulty, _ = puzzle.ParseDifficulty(diff)

	if cfg.UseExternal, err = a.con.AskYesNo(ctx, "Use AI puzzle generation if available? [y/N]: ", false); err != nil {
		return cfg, err
	}

	keys := a.themes.Keys()
	if cfg.Theme, err = a.con.AskChoice(
		ctx, fmt.Sprintf("Theme [%s] (default %s): ", strings.Join(keys, "/"), a.themes.Default()),
		keys, a.themes.Default(),
	); err != nil {
		return cfg, err
	}
	if cfg.TimerEnabled, err = a.con.AskYesNo(ctx, "Timer mode ON? [Y/n]: ", true); err != nil {
		return cfg, err
	}
	if cfg.DemoMode, err = a.con.AskYesNo(ctx, "Demo mode (judge-safe predictable flow)? [y/N]: ", false); err != nil {
		return cfg, err
	}
	if cfg.SoundEnabled, err = a.con.AskYesNo(ctx, "Sound mode ON? [y/N]: ", false); err != nil {
		return cfg, err
	}

	a.con.Println(a.con.Success("\nSetup complete."))
	return cfg, a.con.Wait(ctx)
}
