package resumes

import (
	"context"
	"database/sql"
	"errors"
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

const insertResumeQuery = `
INSERT INTO resumes (id, file_name, original_filename, size_bytes, storage_key, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *PostgresRepo) CreateResume(ctx context.Context, resume Resume) error {
	_, err := r.db.ExecContext(ctx, insertResumeQuery,
		resume.ID,
		resume.FileName,
		resume.OriginalFilename,
		resume.SizeBytes,
		resume.StorageKey,
		resume.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

const insertAnalysisQuery = `
INSERT INTO resume_analyses (id, resume_id, ats_score, grade, total_words, readability_score, analysis_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *PostgresRepo) CreateAnalysis(ctx context.Context, record AnalysisRecord) error {
	_, err := r.db.ExecContext(ctx, insertAnalysisQuery,
		record.ID,
		record.ResumeID,
		record.ATSScore,
		record.Grade,
		record.TotalWords,
		record.ReadabilityScore,
		record.AnalysisData,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

const getResumeQuery = `
SELECT id, file_name, original_filename, size_bytes, storage_key, uploaded_at
FROM resumes
WHERE id = $1
`

func (r *PostgresRepo) GetResume(ctx context.Context, resumeID string) (Resume, error) {
	var resume Resume
	err := r.db.QueryRowContext(ctx, getResumeQuery, resumeID).Scan(
		&resume.ID,
		&resume.FileName,
		&resume.OriginalFilename,
		&resume.SizeBytes,
		&resume.StorageKey,
		&resume.UploadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Resume{}, ErrNotFound
	}
	if err != nil {
		return Resume{}, fmt.Errorf("select resume: %w", err)
	}
	return resume, nil
}

const getAnalysisQuery = `
SELECT id, resume_id, ats_score, grade, total_words, readability_score, analysis_data, created_at
FROM resume_analyses
WHERE resume_id = $1
ORDER BY created_at DESC
LIMIT 1
`

func (r *PostgresRepo) GetAnalysisByResume(ctx context.Context, resumeID string) (AnalysisRecord, error) {
	var record AnalysisRecord
	err := r.db.QueryRowContext(ctx, getAnalysisQuery, resumeID).Scan(
		&record.ID,
		&record.ResumeID,
		&record.ATSScore,
		&record.Grade,
		&record.TotalWords,
		&record.ReadabilityScore,
		&record.AnalysisData,
		&record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AnalysisRecord{}, ErrNotFound
	}
	if err != nil {
		return AnalysisRecord{}, fmt.Errorf("select analysis: %w", err)
	}
	return record, nil
}

const statsTotalsQuery = `
SELECT COUNT(r.id),
       COALESCE(AVG(a.ats_score), 0),
       COALESCE(AVG(a.total_words), 0)
FROM resumes r
LEFT JOIN resume_analyses a ON a.resume_id = r.id
`

const statsGradesQuery = `
SELECT CASE
         WHEN ats_score >= 90 THEN 'A+'
         WHEN ats_score >= 80 THEN 'A'
         WHEN ats_score >= 70 THEN 'B'
         WHEN ats_score >= 60 THEN 'C'
         ELSE 'D'
       END AS bucket,
       COUNT(*)
FROM resume_analyses
GROUP BY bucket
ORDER BY bucket
`

const statsActivityQuery = `
SELECT TO_CHAR(uploaded_at, 'YYYY-MM-DD') AS day, COUNT(*)
FROM resumes
WHERE uploaded_at >= NOW() - INTERVAL '30 days'
GROUP BY day
ORDER BY day
`

func (r *PostgresRepo) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{
		GradeDistribution: []GradeCount{},
		RecentActivity:    []DailyCount{},
	}

	var avgScore, avgWords float64
	err := r.db.QueryRowContext(ctx, statsTotalsQuery).Scan(&stats.TotalResumes, &avgScore, &avgWords)
	if err != nil {
		return Stats{}, fmt.Errorf("select stats totals: %w", err)
	}
	stats.AverageATSScore = int(avgScore + 0.5)
	stats.AverageWordCount = int(avgWords + 0.5)

	gradeRows, err := r.db.QueryContext(ctx, statsGradesQuery)
	if err != nil {
		return Stats{}, fmt.Errorf("select grade distribution: %w", err)
	}
	defer gradeRows.Close()
	for gradeRows.Next() {
		var gc GradeCount
		if err := gradeRows.Scan(&gc.Grade, &gc.Count); err != nil {
			return Stats{}, fmt.Errorf("scan grade distribution: %w", err)
		}
		stats.GradeDistribution = append(stats.GradeDistribution, gc)
	}
	if err := gradeRows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate grade distribution: %w", err)
	}

	activityRows, err := r.db.QueryContext(ctx, statsActivityQuery)
	if err != nil {
		return Stats{}, fmt.Errorf("select recent activity: %w", err)
	}
	defer activityRows.Close()
	for activityRows.Next() {
		var dc DailyCount
		if err := activityRows.Scan(&dc.Date, &dc.Uploads); err != nil {
			return Stats{}, fmt.Errorf("scan recent activity: %w", err)
		}
		stats.RecentActivity = append(stats.RecentActivity, dc)
	}
	if err := activityRows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate recent activity: %w", err)
	}

	return stats, nil
}

var _ Repo = (*PostgresRepo)(nil)
