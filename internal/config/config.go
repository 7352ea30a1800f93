// Package config reads process configuration from the environment.
//
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE" envDefault:"puzzleforge.log"` // "-" logs to stderr
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"5"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	PuzzlesFile     string `env:"PUZZLEFORGE_PUZZLES_FILE" envDefault:"fallback_puzzles.json"`
	LeaderboardFile string `env:"PUZZLEFORGE_LEADERBOARD_FILE" envDefault:"leaderboard.json"` // "-" keeps scores in memory only

	Gemini GeminiConfig

	NoColor bool `env:"NO_COLOR"`
}

// GeminiConfig configures optional puzzle generation.
type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"20s"`
}

// Enabled reports whether an API key is configured.
func (g GeminiConfig) Enabled() bool { return g.APIKey != "" }

// DotenvFile is the optional file of development overrides.
const DotenvFile = ".env"

// LoadDotenv applies the variables in path. A missing file is not an error,
// a malformed one is.
func LoadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
