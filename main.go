package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/puzzleforge/assets"
	"github.com/robalobadob/puzzleforge/internal/app"
	"github.com/robalobadob/puzzleforge/internal/catalog"
	"github.com/robalobadob/puzzleforge/internal/config"
	"github.com/robalobadob/puzzleforge/internal/console"
	"github.com/robalobadob/puzzleforge/internal/generator"
	"github.com/robalobadob/puzzleforge/internal/leaderboard"
	"github.com/robalobadob/puzzleforge/internal/logging"
	"github.com/robalobadob/puzzleforge/internal/session"
	"github.com/robalobadob/puzzleforge/internal/theme"
)

// memoryOnly as the leaderboard file keeps scores for this process only.
const memoryOnly = "-"

func main() {
	if err := config.LoadDotenv(config.DotenvFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closer, err := logging.Setup(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	themes, err := theme.LoadEmbedded()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load themes")
	}

	src := newSource(ctx, cfg.Gemini)
	cat, err := catalog.Load(cfg.PuzzlesFile, catalog.WithSource(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load puzzles from %s: %v\n", cfg.PuzzlesFile, err)
		log.Fatal().Err(err).Str("path", cfg.PuzzlesFile).Msg("failed to load puzzle catalog")
	}
	log.Info().Int("puzzles", cat.Len()).Str("path", cfg.PuzzlesFile).Msg("catalog loaded")

	var board leaderboard.Store
	if cfg.LeaderboardFile == memoryOnly {
		board = leaderboard.NewMemoryStore()
	} else {
		board = leaderboard.NewFileStore(cfg.LeaderboardFile)
	}

	a := app.New(app.Deps{
		Console:            console.NewStd(cfg.NoColor),
		Catalog:            cat,
		Leaderboard:        board,
		Themes:             themes,
		ExternalConfigured: cfg.Gemini.Enabled(),
		SessionOptions:     []session.Option{session.WithRoundPause()},
	})
	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("game exited")
		closer.Close()
		os.Exit(1)
	}
	fmt.Println()
}

// newSource returns the Gemini source when a key is configured, otherwise a
// source that never produces puzzles.
func newSource(ctx context.Context, gc config.GeminiConfig) generator.Source {
	if !gc.Enabled() {
		return generator.Disabled{}
	}
	raw, err := assets.Read(assets.PuzzlePromptFile)
	if err != nil {
		log.Warn().Err(err).Msg("puzzle prompt missing, generation disabled")
		return generator.Disabled{}
	}
	prompt, err := generator.ParsePrompt(raw)
	if err != nil {
		log.Warn().Err(err).Msg("puzzle prompt invalid, generation disabled")
		return generator.Disabled{}
	}
	g, err := generator.NewGemini(ctx, generator.GeminiConfig{
		APIKey:  gc.APIKey,
		Model:   gc.Model,
		Timeout: gc.Timeout,
		Prompt:  prompt,
	})
	if err != nil {
		log.Warn().Err(err).Msg("gemini client unavailable, generation disabled")
		return generator.Disabled{}
	}
	log.Info().Str("model", gc.Model).Msg("gemini puzzle generation enabled")
	return g
}
