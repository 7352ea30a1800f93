package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel   = "gemini-2.5-flash"
	defaultTimeout = 20 * time.Second
	temperature    = 0.8
)

// ErrMissingAPIKey is returned by NewGemini when no key is configured.
var ErrMissingAPIKey = errors.New("missing gemini api key")

// contentGenerator is the part of genai.Models the generator uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configures the Gemini-backed source.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Prompt  Prompt
}

// Gemini generates puzzles with the Gemini API.
type Gemini struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	prompt  Prompt
}

// NewGemini builds a Gemini source. The client is created lazily by genai,
// so no request is made here.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, cfg.Model, timeout, cfg.Prompt), nil
}

func newGemini(models contentGenerator, model string, timeout time.Duration, prompt Prompt) *Gemini {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Gemini{models: models, model: model, timeout: timeout, prompt: prompt}
}

// Generate asks the model for one puzzle. Any failure yields ok=false.
func (g *Gemini) Generate(ctx context.Context, d puzzle.Difficulty) (p puzzle.Puzzle, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("puzzle generation panicked")
			p, ok = puzzle.Puzzle{}, false
		}
	}()

	p, err := g.generate(ctx, d)
	if err != nil {
		log.Debug().Err(err).Str("model", g.model).Str("difficulty", d.String()).Msg("puzzle generation failed")
		return puzzle.Puzzle{}, false
	}
	return p, true
}

func (g *Gemini) generate(ctx context.Context, d puzzle.Difficulty) (puzzle.Puzzle, error) {
	text, err := g.prompt.Render(d)
	if err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("render prompt: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(temperature)),
		ResponseMIMEType: "application/json",
	}
	if g.prompt.System != "" {
		config.SystemInstruction = genai.NewContentFromText(g.prompt.System, genai.RoleUser)
	}

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return puzzle.Puzzle{}, errors.New("no candidates")
	}
	return ParsePuzzle(resp.Text(), d)
}

var _ Source = (*Gemini)(nil)
