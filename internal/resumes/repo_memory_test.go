package resumes

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	resume := Resume{ID: "r1", FileName: "r1.pdf", OriginalFilename: "cv.pdf", SizeBytes: 10, UploadedAt: time.Now()}
	if err := repo.CreateResume(ctx, resume); err != nil {
		t.Fatalf("create resume: %v", err)
	}

	record := AnalysisRecord{ID: "a1", ResumeID: "r1", ATSScore: 91, Grade: "A+", AnalysisData: []byte(`{}`), CreatedAt: time.Now()}
	if err := repo.CreateAnalysis(ctx, record); err != nil {
		t.Fatalf("create analysis: %v", err)
	}

	got, err := repo.GetResume(ctx, "r1")
	if err != nil || got.OriginalFilename != "cv.pdf" {
		t.Fatalf("get resume: %+v, err=%v", got, err)
	}

	gotRecord, err := repo.GetAnalysisByResume(ctx, "r1")
	if err != nil || gotRecord.ATSScore != 91 {
		t.Fatalf("get analysis: %+v, err=%v", gotRecord, err)
	}

	if _, err := repo.GetResume(ctx, "nope"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestMemoryRepoStats(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	now := time.Now()

	for i, score := range []int{95, 85, 62} {
		id := string(rune('a' + i))
		if err := repo.CreateResume(ctx, Resume{ID: id, UploadedAt: now}); err != nil {
			t.Fatalf("create resume: %v", err)
		}
		record := AnalysisRecord{ID: id + "-analysis", ResumeID: id, ATSScore: score, TotalWords: 400}
		if err := repo.CreateAnalysis(ctx, record); err != nil {
			t.Fatalf("create analysis: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalResumes != 3 {
		t.Errorf("total: got %d", stats.TotalResumes)
	}
	if stats.AverageATSScore != 81 {
		t.Errorf("avg score: got %d, want 81", stats.AverageATSScore)
	}
	if stats.AverageWordCount != 400 {
		t.Errorf("avg words: got %d", stats.AverageWordCount)
	}

	buckets := map[string]int{}
	for _, gc := range stats.GradeDistribution {
		buckets[gc.Grade] = gc.Count
	}
	if buckets["A+"] != 1 || buckets["A"] != 1 || buckets["C"] != 1 {
		t.Errorf("grade distribution: %+v", stats.GradeDistribution)
	}

	if len(stats.RecentActivity) != 1 || stats.RecentActivity[0].Uploads != 3 {
		t.Errorf("recent activity: %+v", stats.RecentActivity)
	}
}
