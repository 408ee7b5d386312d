package jobs

import "context"

// Repo persists job postings for the local job board.
type Repo interface {
	Create(ctx context.Context, posting Posting) error
	GetByID(ctx context.Context, id string) (Posting, error)
	List(ctx context.Context) ([]Posting, error)
}
