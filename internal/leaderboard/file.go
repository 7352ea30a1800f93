package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// DefaultPath is where the leaderboard lives when nothing else is configured.
const DefaultPath = "leaderboard.json"

// FileStore keeps the leaderboard in a flat JSON array file.
// Writes replace the whole file; there is no locking.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path reports the backing file.
func (s *FileStore) Path() string { return s.path }

// List reads the file. A missing or corrupt file is an empty leaderboard.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	return s.load(), nil
}

// Append ranks r into the stored records and rewrites the file.
func (s *FileStore) Append(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ranked := Rank(s.load(), r)

	data, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}

func (s *FileStore) load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.path).Msg("leaderboard unreadable, treating as empty")
		}
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("leaderboard corrupt, treating as empty")
		return []Record{}
	}
	if records == nil {
		return []Record{}
	}
	return records
}

var _ Store = (*FileStore)(nil)
