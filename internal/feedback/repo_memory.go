package feedback

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo implements Repo with an in-memory slice. Used when no database
// is configured and in tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRepo creates a new MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]Entry, len(r.entries))
	copy(sorted, r.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *MemoryRepo) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		Total:              len(r.entries),
		RatingDistribution: []RatingCount{},
	}

	sum := 0
	dist := make(map[string]int)
	for _, entry := range r.entries {
		sum += ratingValue(entry.Rating)
		dist[entry.Rating]++
	}
	if len(r.entries) > 0 {
		stats.AverageRating = float64(sum) / float64(len(r.entries))
	}

	ratings := make([]string, 0, len(dist))
	for rating := range dist {
		ratings = append(ratings, rating)
	}
	sort.Strings(ratings)
	for _, rating := range ratings {
		stats.RatingDistribution = append(stats.RatingDistribution, RatingCount{Rating: rating, Count: dist[rating]})
	}

	return stats, nil
}

func ratingValue(rating string) int {
	switch rating {
	case RatingExcellent:
		return 5
	case RatingGood:
		return 4
	case RatingFair:
		return 3
	case RatingPoor:
		return 2
	default:
		return 1
	}
}

var _ Repo = (*MemoryRepo)(nil)
