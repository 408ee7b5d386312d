package jobs

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	postings []Posting
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a posting, preserving insertion order.
func (r *MemoryRepo) Create(ctx context.Context, posting Posting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postings = append(r.postings, posting)
	return nil
}

// GetByID returns the posting with the given ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	if err := ctx.Err(); err != nil {
		return Posting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.postings {
		if r.postings[i].ID == id {
			return r.postings[i], nil
		}
	}
	return Posting{}, ErrNotFound
}

// List returns all postings in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Posting, len(r.postings))
	copy(out, r.postings)
	return out, nil
}
