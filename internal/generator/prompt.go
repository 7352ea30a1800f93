package generator

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

// DifficultyPlaceholder marks where the requested difficulty goes in the user prompt.
const DifficultyPlaceholder = "{difficulty}"

var errNoPlaceholder = errors.New("user prompt has no " + DifficultyPlaceholder + " placeholder")

// Prompt is the system/user instruction pair sent to the model.
type Prompt struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// ParsePrompt decodes a prompt YAML document. The user prompt must mention
// the difficulty placeholder at least once.
func ParsePrompt(data []byte) (Prompt, error) {
	var p Prompt
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prompt{}, fmt.Errorf("parse prompt yaml: %w", err)
	}
	if strings.TrimSpace(p.User) == "" {
		return Prompt{}, errors.New("prompt yaml: user prompt is empty")
	}
	if !strings.Contains(p.User, DifficultyPlaceholder) {
		return Prompt{}, fmt.Errorf("prompt yaml: %w", errNoPlaceholder)
	}
	return p, nil
}

// Render returns the user prompt for difficulty d.
func (p Prompt) Render(d puzzle.Difficulty) (string, error) {
	if !strings.Contains(p.User, DifficultyPlaceholder) {
		return "", errNoPlaceholder
	}
	return strings.ReplaceAll(p.User, DifficultyPlaceholder, d.String()), nil
}
