package leaderboard

import "context"

// MemoryStore keeps the leaderboard in memory only. State is lost on exit.
type MemoryStore struct {
	records []Record
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: []Record{}}
}

// Append ranks r into the in-memory records.
func (m *MemoryStore) Append(ctx context.Context, r Record) error {
	m.records = Rank(m.records, r)
	return nil
}

// List returns a copy of the records.
func (m *MemoryStore) List(ctx context.Context) ([]Record, error) {
	return append([]Record{}, m.records...), nil
}

var _ Store = (*MemoryStore)(nil)
