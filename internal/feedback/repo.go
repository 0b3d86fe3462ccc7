package feedback

import "context"

// Repo defines persistence operations for feedback.
type Repo interface {
	Create(ctx context.Context, entry Entry) error
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
	Stats(ctx context.Context) (Stats, error)
}
