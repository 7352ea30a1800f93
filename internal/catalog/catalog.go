// internal/catalog/catalog.go
//
// Puzzle catalog management for the game.
//
// Responsibilities:
//   - Load the fixed puzzle pool from a JSON file (all-or-nothing).
//   - Filter by difficulty, falling back to the whole pool when a difficulty is empty.
//   - Select one puzzle per round: demo order, external generation, or random.
//
// Puzzle file format (array of objects):
//   {"category", "question", "answer", "hints": [..], "explanation", "difficulty"}
//
// Constraints:
//   • A missing file, a non-array document or any invalid entry fails the whole load.
//   • Entries without a difficulty are treated as "easy".
//   • The loaded pool never changes after Load returns.

package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"

	"github.com/goccy/go-json"

	"github.com/robalobadob/puzzleforge/internal/generator"
	"github.com/robalobadob/puzzleforge/internal/puzzle"
)

// ErrCatalogLoad wraps every failure to load the puzzle file.
var ErrCatalogLoad = errors.New("catalog load failed")

// entry mirrors one object of the puzzle file before validation.
type entry struct {
	Category    puzzle.Text   `json:"category"`
	Question    puzzle.Text   `json:"question"`
	Answer      puzzle.Text   `json:"answer"`
	Hints       []puzzle.Text `json:"hints"`
	Explanation puzzle.Text   `json:"explanation"`
	Difficulty  string        `json:"difficulty"`
}

// Catalog is the loaded, read-only puzzle pool.
type Catalog struct {
	puzzles []puzzle.Puzzle
	source  generator.Source
	rng     *rand.Rand
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithSource sets the external generator consulted when a round asks for it.
func WithSource(s generator.Source) Option {
	return func(c *Catalog) { c.source = s }
}

// WithRand sets the random source for non-demo picks.
func WithRand(r *rand.Rand) Option {
	return func(c *Catalog) { c.rng = r }
}

// Load reads and validates the puzzle file at path.
func Load(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrCatalogLoad, path, err)
	}
	return Parse(data, opts...)
}

// LoadFS is Load over an fs.FS.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrCatalogLoad, name, err)
	}
	return Parse(data, opts...)
}

// Parse builds a Catalog from the raw JSON document.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var raw []entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrCatalogLoad, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: puzzle list is empty", ErrCatalogLoad)
	}

	puzzles := make([]puzzle.Puzzle, 0, len(raw))
	for i, e := range raw {
		p, err := e.toPuzzle()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrCatalogLoad, i, err)
		}
		puzzles = append(puzzles, p)
	}

	c := &Catalog{puzzles: puzzles, source: generator.Disabled{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		c.source = generator.Disabled{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c, nil
}

func (e entry) toPuzzle() (puzzle.Puzzle, error) {
	diff := puzzle.Easy
	if e.Difficulty != "" {
		d, ok := puzzle.ParseDifficulty(e.Difficulty)
		if !ok {
			return puzzle.Puzzle{}, fmt.Errorf("unknown difficulty %q", e.Difficulty)
		}
		diff = d
	}

	var hints []string
	if e.Hints != nil {
		hints = make([]string, len(e.Hints))
		for i, h := range e.Hints {
			hints[i] = string(h)
		}
	}

	p := puzzle.Puzzle{
		Category:    string(e.Category),
		Question:    string(e.Question),
		Answer:      string(e.Answer),
		Hints:       hints,
		Explanation: string(e.Explanation),
		Difficulty:  diff,
	}
	if err := puzzle.Validate(p); err != nil {
		return puzzle.Puzzle{}, err
	}
	return p, nil
}

// Len reports the number of loaded puzzles.
func (c *Catalog) Len() int { return len(c.puzzles) }

// Counts reports how many puzzles each difficulty holds.
func (c *Catalog) Counts() map[puzzle.Difficulty]int {
	out := make(map[puzzle.Difficulty]int, len(puzzle.Difficulties))
	for _, p := range c.puzzles {
		out[p.Difficulty]++
	}
	return out
}

// Filter returns the puzzles of difficulty d, or the whole pool if there are none.
func (c *Catalog) Filter(d puzzle.Difficulty) []puzzle.Puzzle {
	var out []puzzle.Puzzle
	for _, p := range c.puzzles {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return c.puzzles
	}
	return out
}
