package generator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

// MaxHints caps how many hints a generated puzzle keeps.
const MaxHints = 3

var requiredKeys = []string{"category", "question", "answer", "hints", "explanation"}

// ParsePuzzle turns raw model output into a validated Puzzle.
// requested is used when the payload has no usable difficulty.
func ParsePuzzle(text string, requested puzzle.Difficulty) (puzzle.Puzzle, error) {
	body := stripFences(text)
	if body == "" {
		return puzzle.Puzzle{}, errors.New("empty response")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return puzzle.Puzzle{}, fmt.Errorf("decode payload: %w", err)
	}
	if data == nil {
		return puzzle.Puzzle{}, errors.New("payload is not an object")
	}
	for _, k := range requiredKeys {
		if _, ok := data[k]; !ok {
			return puzzle.Puzzle{}, fmt.Errorf("missing key %q", k)
		}
	}

	rawHints, ok := data["hints"].([]any)
	if !ok || len(rawHints) == 0 {
		return puzzle.Puzzle{}, errors.New("hints must be a non-empty list")
	}
	if len(rawHints) > MaxHints {
		rawHints = rawHints[:MaxHints]
	}
	hints := make([]string, 0, len(rawHints))
	for _, h := range rawHints {
		s, ok := scalar(h)
		if !ok {
			return puzzle.Puzzle{}, errors.New("hint is not text")
		}
		hints = append(hints, s)
	}

	p := puzzle.Puzzle{Hints: hints, Difficulty: requested}
	fields := map[string]*string{
		"category":    &p.Category,
		"question":    &p.Question,
		"answer":      &p.Answer,
		"explanation": &p.Explanation,
	}
	for k, dst := range fields {
		s, ok := scalar(data[k])
		if !ok {
			return puzzle.Puzzle{}, fmt.Errorf("key %q is not text", k)
		}
		*dst = s
	}
	if raw, ok := scalar(data["difficulty"]); ok {
		if d, ok := puzzle.ParseDifficulty(raw); ok {
			p.Difficulty = d
		}
	}

	if err := puzzle.Validate(p); err != nil {
		return puzzle.Puzzle{}, err
	}
	return p, nil
}

// scalar renders strings, numbers and booleans as text.
func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case json.Number:
		return x.String(), true
	}
	return "", false
}

// stripFences removes a surrounding ``` block some models add despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
