package score

import (
	"context"
	"sync"
)

// memstore is the in-memory Store used when no Redis is configured.
// The scoreboard then lives only as long as the process.
type memstore struct {
	mu      sync.RWMutex
	results map[string]*Result
	tally   Tally
}

func NewMemoryStore() Store {
	return &memstore{results: make(map[string]*Result)}
}

func (m *memstore) SaveResult(ctx context.Context, r *Result) error {
	if r == nil {
		return ErrNilResult
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.results[r.MatchID]; exists {
		return ErrDuplicateResult
	}
	cp := *r
	m.results[r.MatchID] = &cp
	m.tally.Games++
	if r.Winner == "White" {
		m.tally.WhiteWins++
	} else {
		m.tally.BlackWins++
	}
	return nil
}

func (m *memstore) Tally(ctx context.Context) (Tally, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tally, nil
}
