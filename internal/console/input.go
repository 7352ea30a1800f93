package console

import (
	"context"
	"slices"
	"strconv"
	"strings"
)

// ParseIntInRange returns raw as an int, or def when raw is blank,
// non-numeric or outside [lo, hi].
func ParseIntInRange(raw string, def, lo, hi int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return def
	}
	return v
}

// ParseChoice returns the lowercased raw value when it is one of choices,
// otherwise def.
func ParseChoice(raw string, choices []string, def string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || !slices.Contains(choices, raw) {
		return def
	}
	return raw
}

// ParseYes is true only for an explicit yes. Used for [y/N] prompts.
func ParseYes(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true
	}
	return false
}

// ParseNotNo is true unless the answer is an explicit no. Used for [Y/n] prompts.
func ParseNotNo(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "n", "no":
		return false
	}
	return true
}

// AskInt prompts for an integer, clamping invalid answers to def.
func (c *Console) AskInt(ctx context.Context, prompt string, def, lo, hi int) (int, error) {
	raw, err := c.ReadLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return ParseIntInRange(raw, def, lo, hi), nil
}

// AskChoice prompts for one of choices, falling back to def.
func (c *Console) AskChoice(ctx context.Context, prompt string, choices []string, def string) (string, error) {
	raw, err := c.ReadLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	return ParseChoice(raw, choices, def), nil
}

// AskYesNo prompts a yes/no question. defYes selects [Y/n] semantics.
func (c *Console) AskYesNo(ctx context.Context, prompt string, defYes bool) (bool, error) {
	raw, err := c.ReadLine(ctx, prompt)
	if err != nil {
		return false, err
	}
	if defYes {
		return ParseNotNo(raw), nil
	}
	return ParseYes(raw), nil
}

// AskText prompts for free text, using def when blank.
func (c *Console) AskText(ctx context.Context, prompt, def string) (string, error) {
	raw, err := c.ReadLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	if s := strings.TrimSpace(raw); s != "" {
		return s, nil
	}
	return def, nil
}
