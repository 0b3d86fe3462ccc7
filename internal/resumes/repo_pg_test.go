package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreateResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	resume := Resume{
		ID:               "5f8d7f9e-1b2c-4d3e-9f0a-123456789abc",
		FileName:         "5f8d7f9e-1b2c-4d3e-9f0a-123456789abc.pdf",
		OriginalFilename: "resume.pdf",
		SizeBytes:        2048,
		StorageKey:       "abc_resume.pdf",
		UploadedAt:       now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(resume.ID, resume.FileName, resume.OriginalFilename, resume.SizeBytes, resume.StorageKey, resume.UploadedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewPostgresRepo(db)
	if err := repo.CreateResume(context.Background(), resume); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetResumeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, file_name, original_filename").
		WithArgs("missing-id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name", "original_filename", "size_bytes", "storage_key", "uploaded_at"}))

	repo := NewPostgresRepo(db)
	_, err = repo.GetResume(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestPostgresGetAnalysisByResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "resume_id", "ats_score", "grade", "total_words", "readability_score", "analysis_data", "created_at"}).
		AddRow("analysis-1", "resume-1", 82, "A-", 450, 65, []byte(`{"score":82}`), now)

	mock.ExpectQuery("SELECT id, resume_id, ats_score").
		WithArgs("resume-1").
		WillReturnRows(rows)

	repo := NewPostgresRepo(db)
	record, err := repo.GetAnalysisByResume(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ATSScore != 82 || record.Grade != "A-" {
		t.Errorf("record: %+v", record)
	}
	if string(record.AnalysisData) != `{"score":82}` {
		t.Errorf("analysis data: %s", record.AnalysisData)
	}
}

func TestPostgresStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(r\.id\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg_score", "avg_words"}).AddRow(12, 74.4, 412.6))

	mock.ExpectQuery("SELECT CASE").
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "count"}).
			AddRow("A", 4).
			AddRow("B", 8))

	mock.ExpectQuery("SELECT TO_CHAR").
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).
			AddRow("2026-08-27", 3).
			AddRow("2026-08-28", 9))

	repo := NewPostgresRepo(db)
	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalResumes != 12 {
		t.Errorf("total: got %d", stats.TotalResumes)
	}
	if stats.AverageATSScore != 74 {
		t.Errorf("avg score: got %d", stats.AverageATSScore)
	}
	if stats.AverageWordCount != 413 {
		t.Errorf("avg words: got %d", stats.AverageWordCount)
	}
	if len(stats.GradeDistribution) != 2 || stats.GradeDistribution[0].Grade != "A" {
		t.Errorf("grades: %+v", stats.GradeDistribution)
	}
	if len(stats.RecentActivity) != 2 || stats.RecentActivity[1].Uploads != 9 {
		t.Errorf("activity: %+v", stats.RecentActivity)
	}
}
