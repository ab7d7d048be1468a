package analysis

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository. It backs the test suite and
// lets the server run without a database when no DATABASE_URL is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Analysis
	order []uuid.UUID
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[uuid.UUID]Analysis)}
}

// Save stores a copy of the analysis, assigning a fresh id when the record
// has none, and returns the id-populated copy.
func (r *MemoryRepository) Save(_ context.Context, a Analysis) (Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.ColumnStatistics = slices.Clone(a.ColumnStatistics)

	if _, exists := r.items[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	r.items[a.ID] = a
	return copyAnalysis(a), nil
}

// FindByID returns the analysis with the given id, or ErrNotFound.
func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return copyAnalysis(a), nil
}

// FindAll returns all analyses in creation order.
func (r *MemoryRepository) FindAll(_ context.Context) ([]Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Analysis, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, copyAnalysis(r.items[id]))
	}
	return out, nil
}

// Delete removes the analysis with the given id, or returns ErrNotFound.
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

// copyAnalysis clones the slice field so callers can never alias stored state.
func copyAnalysis(a Analysis) Analysis {
	a.ColumnStatistics = slices.Clone(a.ColumnStatistics)
	return a
}
