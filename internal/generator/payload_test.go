package generator

import (
	"strings"
	"testing"

	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

const goodPayload = `{
  "category": "Logic",
  "question": "What gets wetter the more it dries?",
  "answer": "A towel",
  "hints": ["bathroom", "fabric", "after a shower", "extra"],
  "explanation": "A towel dries you and gets wet.",
  "difficulty": "medium"
}`

func TestParsePuzzle(t *testing.T) {
	p, err := ParsePuzzle(goodPayload, puzzle.Easy)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}
	if p.Answer != "A towel" || p.Category != "Logic" {
		t.Fatalf("unexpected puzzle: %+v", p)
	}
	if len(p.Hints) != MaxHints {
		t.Fatalf("hints = %d, want %d", len(p.Hints), MaxHints)
	}
	if p.Difficulty != puzzle.Medium {
		t.Fatalf("difficulty = %s, want medium", p.Difficulty)
	}
}

func TestParsePuzzleDefaultsDifficulty(t *testing.T) {
	body := `{"category":"Math","question":"6*7?","answer":42,"hints":["even"],"explanation":"6*7=42"}`
	p, err := ParsePuzzle(body, puzzle.Hard)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}
	if p.Difficulty != puzzle.Hard {
		t.Fatalf("difficulty = %s, want hard", p.Difficulty)
	}
	if p.Answer != "42" {
		t.Fatalf("numeric answer = %q, want 42", p.Answer)
	}

	body = strings.Replace(goodPayload, `"medium"`, `"impossible"`, 1)
	p, err = ParsePuzzle(body, puzzle.Easy)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}
	if p.Difficulty != puzzle.Easy {
		t.Fatalf("unknown difficulty should fall back to requested, got %s", p.Difficulty)
	}
}

func TestParsePuzzleStripsFences(t *testing.T) {
	p, err := ParsePuzzle("```json\n"+goodPayload+"\n```", puzzle.Easy)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}
	if p.Question == "" {
		t.Fatalf("question missing")
	}
}

func TestParsePuzzleRejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"not json":       "Sure! Here is a puzzle.",
		"array":          `[1,2,3]`,
		"null":           `null`,
		"missing answer": `{"category":"a","question":"b","hints":["c"],"explanation":"d"}`,
		"hints string":   `{"category":"a","question":"b","answer":"x","hints":"c","explanation":"d"}`,
		"hints empty":    `{"category":"a","question":"b","answer":"x","hints":[],"explanation":"d"}`,
		"blank answer":   `{"category":"a","question":"b","answer":"  ","hints":["c"],"explanation":"d"}`,
		"object answer":  `{"category":"a","question":"b","answer":{"x":1},"hints":["c"],"explanation":"d"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParsePuzzle(body, puzzle.Easy); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
