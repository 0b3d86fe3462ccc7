package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// recentLimit caps how many entries the listing endpoint returns.
const recentLimit = 100

// Service coordinates feedback persistence.
type Service struct {
	repo Repo
}

// NewService creates a new feedback service.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Submit records a new piece of feedback.
func (s *Service) Submit(ctx context.Context, userEmail, rating, comments string) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Rating:    rating,
		Comments:  comments,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Recent returns the latest feedback entries plus aggregate stats.
func (s *Service) Recent(ctx context.Context) ([]Entry, Stats, error) {
	entries, err := s.repo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, Stats{}, err
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	return entries, stats, nil
}
