// internal/session/controller.go
//
// Session controller: plays a full run of rounds for one setup.
//
// Flow per round:
//   - Pull a puzzle from the Selector.
//   - Start the timer (timer mode only).
//   - Read commands until the round ends: an answer, "hint" or "skip".
//   - Fold the outcome into the running score/streak tally.
//
// A fresh Controller is built for every setup, so the tally always starts at zero.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzleforge/internal/catalog"
	"github.com/robalobadob/puzzleforge/internal/scoring"
	"github.com/robalobadob/puzzleforge/internal/theme"
)

const (
	cmdHint = "hint"
	cmdSkip = "skip"

	movePrompt     = "Your move: "
	continuePrompt = "\nPress Enter to continue..."
)

// Controller owns the state of one session.
type Controller struct {
	id       string
	cfg      Config
	theme    theme.Theme
	selector Selector
	in       Prompter
	ui       UI
	now      func() time.Time
	log      zerolog.Logger
	pause    bool
	state    State
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithRoundPause waits for Enter after each round's reveal.
func WithRoundPause() Option {
	return func(c *Controller) { c.pause = true }
}

// New builds a controller for cfg. Rounds below 1 are raised to 1 and a blank
// player name becomes DefaultPlayerName.
func New(cfg Config, th theme.Theme, sel Selector, in Prompter, ui UI, opts ...Option) *Controller {
	if cfg.Rounds < MinRounds {
		cfg.Rounds = MinRounds
	}
	if strings.TrimSpace(cfg.PlayerName) == "" {
		cfg.PlayerName = DefaultPlayerName
	}
	id := uuid.NewString()
	c := &Controller{
		id:       id,
		cfg:      cfg,
		theme:    th,
		selector: sel,
		in:       in,
		ui:       ui,
		now:      time.Now,
		log:      log.With().Str("session_id", id).Logger(),
		state:    State{RoundTimes: []int{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies the session in logs.
func (c *Controller) ID() string { return c.id }

// Config returns the session configuration.
func (c *Controller) Config() Config { return c.cfg }

// State returns a copy of the running tally.
func (c *Controller) State() State {
	s := c.state
	s.RoundTimes = append([]int(nil), c.state.RoundTimes...)
	return s
}

// Play runs every round and shows the results.
// It only fails when input ends or ctx is cancelled.
func (c *Controller) Play(ctx context.Context) (Summary, error) {
	c.log.Info().
		Str("player", c.cfg.PlayerName).
		Int("rounds", c.cfg.Rounds).
		Str("difficulty", c.cfg.Difficulty.String()).
		Str("theme", c.cfg.Theme).
		Bool("external", c.cfg.UseExternal).
		Bool("timer", c.cfg.TimerEnabled).
		Bool("demo", c.cfg.DemoMode).
		Msg("session started")

	for i := 1; i <= c.cfg.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		if _, err := c.PlayRound(ctx, i); err != nil {
			c.log.Info().Err(err).Int("round", i).Msg("session interrupted")
			return Summary{}, err
		}
	}

	s := c.Summary()
	c.ui.Results(s)
	c.log.Info().Int("score", s.Score).Int("max_streak", s.MaxStreak).Str("tier", string(s.Tier)).Msg("session finished")
	return s, nil
}

// PlayRound plays round index (1-based) and folds its outcome into the tally.
func (c *Controller) PlayRound(ctx context.Context, index int) (RoundOutcome, error) {
	p := c.selector.Select(ctx, catalog.Request{
		Difficulty:  c.cfg.Difficulty,
		DemoMode:    c.cfg.DemoMode,
		RoundIndex:  index,
		UseExternal: c.cfg.UseExternal,
	})

	c.ui.RoundStarted(RoundView{
		Theme:  c.theme,
		Config: c.cfg,
		Index:  index,
		Score:  c.state.Score,
		Streak: c.state.Streak,
		Puzzle: p,
	})

	var start time.Time
	if c.cfg.TimerEnabled {
		start = c.now()
	}

	r := NewRound(p)
	for !r.Finished() {
		c.ui.ShowOptions()
		line, err := c.read(ctx, movePrompt)
		if err != nil {
			return RoundOutcome{}, err
		}
		if err := c.step(r, line); err != nil {
			return RoundOutcome{}, err
		}
	}

	out := RoundOutcome{
		Index:          index,
		Solved:         r.Solved(),
		Skipped:        r.State() == StateSkipped,
		AttemptsUsed:   r.Attempts,
		HintsUsed:      r.HintsUsed,
		ElapsedSeconds: c.elapsed(start),
	}
	c.apply(&out)

	if c.cfg.SoundEnabled {
		c.ui.Sound(out.Solved)
	}
	c.ui.RoundEnded(OutcomeView{Theme: c.theme, Outcome: out, Puzzle: p, TimerEnabled: c.cfg.TimerEnabled})

	c.log.Debug().
		Int("round", index).
		Str("state", string(r.State())).
		Int("attempts", out.AttemptsUsed).
		Int("hints", out.HintsUsed).
		Int("elapsed_s", out.ElapsedSeconds).
		Int("points", out.Points).
		Msg("round finished")

	if c.pause {
		if _, err := c.read(ctx, continuePrompt); err != nil {
			return out, err
		}
	}
	return out, nil
}

// read returns the next line, or ctx.Err() if the session was cancelled while
// waiting. A line that arrives after cancellation is dropped.
func (c *Controller) read(ctx context.Context, prompt string) (string, error) {
	line, err := c.in.ReadLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return line, nil
}

// step applies one line of input to the round. It is only called while the
// round is still being played.
func (c *Controller) step(r *Round, line string) error {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil
	}

	switch strings.ToLower(text) {
	case cmdHint:
		if hint, n, ok := r.Hint(); ok {
			c.ui.HintRevealed(c.theme.HintLabel, n, hint)
		} else {
			c.ui.HintsExhausted()
		}
	case cmdSkip:
		if err := r.Skip(); err != nil {
			return fmt.Errorf("skip round: %w", err)
		}
	default:
		v, err := r.Submit(text)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}
		if v == VerdictWrong {
			if c.cfg.SoundEnabled {
				c.ui.Sound(false)
			}
			c.ui.WrongAnswer(r.Remaining())
		}
	}
	return nil
}

// apply scores a finished round and updates the tally.
func (c *Controller) apply(out *RoundOutcome) {
	c.state.RoundTimes = append(c.state.RoundTimes, out.ElapsedSeconds)
	if !out.Solved {
		c.state.Streak = 0
		return
	}
	out.Points = scoring.ComputePoints(out.AttemptsUsed, out.HintsUsed, out.ElapsedSeconds, c.cfg.TimerEnabled, c.state.Streak)
	c.state.Score += out.Points
	c.state.Streak++
	c.state.MaxStreak = max(c.state.MaxStreak, c.state.Streak)
}

// elapsed returns whole seconds since start, or 0 when the timer is off.
func (c *Controller) elapsed(start time.Time) int {
	if !c.cfg.TimerEnabled {
		return 0
	}
	return max(0, int(c.now().Sub(start)/time.Second))
}

// Summary builds the end-of-session summary from the current tally.
func (c *Controller) Summary() Summary {
	avg, ok := scoring.AverageSeconds(c.state.RoundTimes)
	return Summary{
		SessionID:      c.id,
		Player:         c.cfg.PlayerName,
		Rounds:         c.cfg.Rounds,
		Score:          c.state.Score,
		MaxStreak:      c.state.MaxStreak,
		AverageSeconds: avg,
		HasAverage:     ok,
		Tier:           scoring.TierFor(c.state.Score, c.cfg.Rounds),
	}
}
