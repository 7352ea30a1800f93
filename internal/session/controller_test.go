package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/robalobadob/puzzleforge/internal/catalog"
	"github.com/robalobadob/puzzleforge/internal/puzzle"
	"github.com/robalobadob/puzzleforge/internal/scoring"
	"github.com/robalobadob/puzzleforge/internal/theme"
)

// script feeds canned input lines and advances the clock per line.
// onRead, when set, runs before each line is handed out.
type script struct {
	lines  []string
	clock  *fakeClock
	step   time.Duration
	reads  int
	onRead func()
}

func (s *script) ReadLine(context.Context, string) (string, error) {
	s.reads++
	if s.onRead != nil {
		s.onRead()
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if s.clock != nil {
		s.clock.t = s.clock.t.Add(s.step)
	}
	return line, nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

type recorder struct {
	started []RoundView
	ended   []OutcomeView
	hints   []string
	noHints int
	wrong   []int
	results []Summary
	sounds  []bool
	options int
}

func (r *recorder) RoundStarted(v RoundView) { r.started = append(r.started, v) }
func (r *recorder) ShowOptions()             { r.options++ }
func (r *recorder) HintRevealed(_ string, _ int, h string) {
	r.hints = append(r.hints, h)
}
func (r *recorder) HintsExhausted()          { r.noHints++ }
func (r *recorder) WrongAnswer(n int)        { r.wrong = append(r.wrong, n) }
func (r *recorder) RoundEnded(v OutcomeView) { r.ended = append(r.ended, v) }
func (r *recorder) Results(s Summary)        { r.results = append(r.results, s) }
func (r *recorder) Sound(ok bool)            { r.sounds = append(r.sounds, ok) }

type fixedSelector struct {
	p    puzzle.Puzzle
	reqs []catalog.Request
}

func (f *fixedSelector) Select(_ context.Context, req catalog.Request) puzzle.Puzzle {
	f.reqs = append(f.reqs, req)
	return f.p
}

func newTestController(cfg Config, lines []string, step time.Duration) (*Controller, *recorder, *fixedSelector) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	sel := &fixedSelector{p: whale()}
	in := &script{lines: lines, clock: clock, step: step}
	c := New(cfg, theme.Theme{HintLabel: "Hint"}, sel, in, rec, WithClock(clock.Now))
	return c, rec, sel
}

func TestSolveFirstTryWithStreakBonus(t *testing.T) {
	cfg := Config{Rounds: 3, Difficulty: puzzle.Easy, TimerEnabled: false}
	c, _, _ := newTestController(cfg, []string{"blue whale", "blue whale", "blue whale"}, time.Second)

	s, err := c.Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	// 120 + 125 + 130
	if s.Score != 375 {
		t.Fatalf("score = %d, want 375", s.Score)
	}
	st := c.State()
	if st.Streak != 3 || st.MaxStreak != 3 {
		t.Fatalf("streak=%d max=%d", st.Streak, st.MaxStreak)
	}
	for _, secs := range st.RoundTimes {
		if secs != 0 {
			t.Fatalf("timer off should record 0s, got %v", st.RoundTimes)
		}
	}
	if s.Tier != scoring.TierOutstanding {
		t.Fatalf("tier = %s", s.Tier)
	}
}

func TestExhaustedRoundResetsStreak(t *testing.T) {
	cfg := Config{Rounds: 2, Difficulty: puzzle.Easy}
	c, rec, _ := newTestController(cfg, []string{"blue whale", "a", "b", "c"}, 0)

	s, err := c.Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.Score != 120 {
		t.Fatalf("score = %d, want 120", s.Score)
	}
	last := rec.ended[1].Outcome
	if last.Solved || last.Points != 0 || last.AttemptsUsed != 3 {
		t.Fatalf("unexpected outcome %+v", last)
	}
	if st := c.State(); st.Streak != 0 || st.MaxStreak != 1 {
		t.Fatalf("streak=%d max=%d", st.Streak, st.MaxStreak)
	}
	if len(rec.wrong) != 2 || rec.wrong[0] != 2 || rec.wrong[1] != 1 {
		t.Fatalf("remaining-attempt reports = %v, want [2 1]", rec.wrong)
	}
}

func TestHintsAndTimerPenalties(t *testing.T) {
	cfg := Config{Rounds: 1, Difficulty: puzzle.Easy, TimerEnabled: true}
	// 5 lines, 10s each: 50s total.
	c, rec, _ := newTestController(cfg, []string{"hint", "hint", "hint", "wrong", "Blue Whale"}, 10*time.Second)

	if _, err := c.Play(context.Background()); err != nil {
		t.Fatalf("Play: %v", err)
	}
	out := rec.ended[0].Outcome
	if out.HintsUsed != 2 || out.AttemptsUsed != 2 || out.ElapsedSeconds != 50 {
		t.Fatalf("outcome = %+v", out)
	}
	// 120 - 20 - 30 - 5
	if out.Points != 65 {
		t.Fatalf("points = %d, want 65", out.Points)
	}
	if rec.noHints != 1 {
		t.Fatalf("expected one no-more-hints report, got %d", rec.noHints)
	}
}

func TestSkipEndsRound(t *testing.T) {
	cfg := Config{Rounds: 2, Difficulty: puzzle.Easy, TimerEnabled: true}
	c, rec, _ := newTestController(cfg, []string{"blue whale", "  SKIP "}, 3*time.Second)

	s, err := c.Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	out := rec.ended[1].Outcome
	if !out.Skipped || out.Solved || out.Points != 0 || out.AttemptsUsed != 0 {
		t.Fatalf("outcome = %+v", out)
	}
	if st := c.State(); st.Streak != 0 || len(st.RoundTimes) != 2 || st.RoundTimes[1] != 3 {
		t.Fatalf("state = %+v", st)
	}
	if !s.HasAverage || s.AverageSeconds != 3 {
		t.Fatalf("average = %v,%v", s.AverageSeconds, s.HasAverage)
	}
}

func TestBlankLinesDoNotConsumeAttempts(t *testing.T) {
	cfg := Config{Rounds: 1, Difficulty: puzzle.Easy}
	c, rec, _ := newTestController(cfg, []string{"", "   ", "x", "", "blue whale"}, 0)

	if _, err := c.Play(context.Background()); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if got := rec.ended[0].Outcome.AttemptsUsed; got != 2 {
		t.Fatalf("attempts = %d, want 2", got)
	}
}

func TestSelectorRequests(t *testing.T) {
	cfg := Config{Rounds: 2, Difficulty: puzzle.Hard, DemoMode: true, UseExternal: true}
	c, _, sel := newTestController(cfg, []string{"skip", "skip"}, 0)
	if _, err := c.Play(context.Background()); err != nil {
		t.Fatalf("Play: %v", err)
	}
	want := []catalog.Request{
		{Difficulty: puzzle.Hard, DemoMode: true, RoundIndex: 1, UseExternal: true},
		{Difficulty: puzzle.Hard, DemoMode: true, RoundIndex: 2, UseExternal: true},
	}
	if len(sel.reqs) != len(want) {
		t.Fatalf("requests = %v", sel.reqs)
	}
	for i := range want {
		if sel.reqs[i] != want[i] {
			t.Fatalf("request %d = %+v, want %+v", i, sel.reqs[i], want[i])
		}
	}
}

func TestSoundCues(t *testing.T) {
	cfg := Config{Rounds: 2, Difficulty: puzzle.Easy, SoundEnabled: true}
	c, rec, _ := newTestController(cfg, []string{"nope", "blue whale", "skip"}, 0)
	if _, err := c.Play(context.Background()); err != nil {
		t.Fatalf("Play: %v", err)
	}
	want := []bool{false, true, false}
	if len(rec.sounds) != len(want) {
		t.Fatalf("sounds = %v, want %v", rec.sounds, want)
	}
	for i := range want {
		if rec.sounds[i] != want[i] {
			t.Fatalf("sounds = %v, want %v", rec.sounds, want)
		}
	}

	quiet, qrec, _ := newTestController(Config{Rounds: 1}, []string{"nope", "blue whale"}, 0)
	if _, err := quiet.Play(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(qrec.sounds) != 0 {
		t.Fatalf("sound off should emit no cues, got %v", qrec.sounds)
	}
}

func TestPlayStopsOnInputEnd(t *testing.T) {
	cfg := Config{Rounds: 3, Difficulty: puzzle.Easy}
	c, rec, _ := newTestController(cfg, []string{"blue whale"}, 0)
	_, err := c.Play(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if len(rec.results) != 0 {
		t.Fatalf("results should not be shown for an interrupted session")
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _, _ := newTestController(Config{Rounds: 1}, []string{"blue whale"}, 0)
	if _, err := c.Play(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCancelMidRoundStopsAtOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{}
	in := &script{lines: []string{"orca", "blue whale", ""}, onRead: cancel}
	c := New(Config{Rounds: 2, Difficulty: puzzle.Easy}, theme.Theme{}, &fixedSelector{p: whale()}, in, rec)

	if _, err := c.PlayRound(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if in.reads != 1 {
		t.Fatalf("reads = %d, want 1", in.reads)
	}
	if len(rec.wrong) != 0 || len(rec.ended) != 0 {
		t.Fatalf("line read after cancel was applied: wrong=%v ended=%d", rec.wrong, len(rec.ended))
	}
	if st := c.State(); st.Score != 0 || len(st.RoundTimes) != 0 {
		t.Fatalf("tally changed: %+v", st)
	}
}

func TestCancelDuringPauseStopsPlay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := &script{lines: []string{"blue whale", "", "blue whale", ""}}
	in.onRead = func() {
		if in.reads == 2 {
			cancel()
		}
	}
	c := New(Config{Rounds: 2, Difficulty: puzzle.Easy}, theme.Theme{}, &fixedSelector{p: whale()}, in, &recorder{}, WithRoundPause())

	if _, err := c.Play(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if in.reads != 2 {
		t.Fatalf("reads = %d, want 2", in.reads)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	c, _, _ := newTestController(Config{Rounds: 0, PlayerName: "  "}, nil, 0)
	if c.Config().Rounds != 1 || c.Config().PlayerName != DefaultPlayerName {
		t.Fatalf("config = %+v", c.Config())
	}
	if c.ID() == "" {
		t.Fatalf("missing session id")
	}
}

func TestTierThresholds(t *testing.T) {
	// Two rounds: one first-try solve (120) and one fail gives 120 < 130 → good.
	c, _, _ := newTestController(Config{Rounds: 2}, []string{"blue whale", "skip"}, 0)
	s, err := c.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.Tier != scoring.TierGood {
		t.Fatalf("tier = %s, want good", s.Tier)
	}
}

func TestRoundPause(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	rec := &recorder{}
	in := &script{lines: []string{"blue whale", "", "skip", ""}, clock: clock}
	c := New(Config{Rounds: 2}, theme.Theme{}, &fixedSelector{p: whale()}, in, rec, WithClock(clock.Now), WithRoundPause())
	s, err := c.Play(context.Background())
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if s.Score != 120 || len(in.lines) != 0 {
		t.Fatalf("score=%d leftover=%v", s.Score, in.lines)
	}
}
