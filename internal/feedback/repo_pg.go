package feedback

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepo implements Repo backed by PostgreSQL.
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo creates a new PostgresRepo.
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const insertFeedbackQuery = `
INSERT INTO feedback (id, user_email, rating, comments, created_at)
VALUES ($1, $2, $3, $4, $5)
`

func (r *PostgresRepo) Create(ctx context.Context, entry Entry) error {
	email := sql.NullString{String: entry.UserEmail, Valid: entry.UserEmail != ""}
	comments := sql.NullString{String: entry.Comments, Valid: entry.Comments != ""}

	_, err := r.db.ExecContext(ctx, insertFeedbackQuery,
		entry.ID,
		email,
		entry.Rating,
		comments,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

const listFeedbackQuery = `
SELECT id, user_email, rating, comments, created_at
FROM feedback
ORDER BY created_at DESC
LIMIT $1
`

func (r *PostgresRepo) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, listFeedbackQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var entry Entry
		var email, comments sql.NullString
		if err := rows.Scan(&entry.ID, &email, &entry.Rating, &comments, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		entry.UserEmail = email.String
		entry.Comments = comments.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return entries, nil
}

const feedbackStatsQuery = `
SELECT COUNT(*),
       COALESCE(AVG(CASE rating
         WHEN 'excellent' THEN 5
         WHEN 'good' THEN 4
         WHEN 'fair' THEN 3
         WHEN 'poor' THEN 2
         ELSE 1
       END), 0)
FROM feedback
`

const feedbackDistributionQuery = `
SELECT rating, COUNT(*)
FROM feedback
GROUP BY rating
ORDER BY rating
`

func (r *PostgresRepo) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{RatingDistribution: []RatingCount{}}

	err := r.db.QueryRowContext(ctx, feedbackStatsQuery).Scan(&stats.Total, &stats.AverageRating)
	if err != nil {
		return Stats{}, fmt.Errorf("select feedback stats: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, feedbackDistributionQuery)
	if err != nil {
		return Stats{}, fmt.Errorf("select rating distribution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rc RatingCount
		if err := rows.Scan(&rc.Rating, &rc.Count); err != nil {
			return Stats{}, fmt.Errorf("scan rating distribution: %w", err)
		}
		stats.RatingDistribution = append(stats.RatingDistribution, rc)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate rating distribution: %w", err)
	}

	return stats, nil
}

var _ Repo = (*PostgresRepo)(nil)
