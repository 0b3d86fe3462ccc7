package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo implements Repo with in-memory maps. Used when no database is
// configured and in tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	resumes  map[string]Resume
	analyses map[string]AnalysisRecord // keyed by resume ID, latest wins
}

// NewMemoryRepo creates a new MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		resumes:  make(map[string]Resume),
		analyses: make(map[string]AnalysisRecord),
	}
}

func (r *MemoryRepo) CreateResume(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

func (r *MemoryRepo) CreateAnalysis(ctx context.Context, record AnalysisRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	data := make([]byte, len(record.AnalysisData))
	copy(data, record.AnalysisData)
	record.AnalysisData = data
	r.analyses[record.ResumeID] = record
	return nil
}

func (r *MemoryRepo) GetResume(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) GetAnalysisByResume(ctx context.Context, resumeID string) (AnalysisRecord, error) {
	if err := ctx.Err(); err != nil {
		return AnalysisRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.analyses[resumeID]
	if !ok {
		return AnalysisRecord{}, ErrNotFound
	}
	return record, nil
}

func (r *MemoryRepo) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		TotalResumes:      len(r.resumes),
		GradeDistribution: []GradeCount{},
		RecentActivity:    []DailyCount{},
	}

	scoreSum := 0
	wordSum := 0
	grades := make(map[string]int)
	for _, record := range r.analyses {
		scoreSum += record.ATSScore
		wordSum += record.TotalWords
		grades[gradeBucket(record.ATSScore)]++
	}
	if len(r.analyses) > 0 {
		stats.AverageATSScore = int(float64(scoreSum)/float64(len(r.analyses)) + 0.5)
		stats.AverageWordCount = int(float64(wordSum)/float64(len(r.analyses)) + 0.5)
	}

	gradeKeys := make([]string, 0, len(grades))
	for grade := range grades {
		gradeKeys = append(gradeKeys, grade)
	}
	sort.Strings(gradeKeys)
	for _, grade := range gradeKeys {
		stats.GradeDistribution = append(stats.GradeDistribution, GradeCount{Grade: grade, Count: grades[grade]})
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	days := make(map[string]int)
	for _, resume := range r.resumes {
		if resume.UploadedAt.Before(cutoff) {
			continue
		}
		days[resume.UploadedAt.Format("2006-01-02")]++
	}
	dayKeys := make([]string, 0, len(days))
	for day := range days {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)
	for _, day := range dayKeys {
		stats.RecentActivity = append(stats.RecentActivity, DailyCount{Date: day, Uploads: days[day]})
	}

	return stats, nil
}

func gradeBucket(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}

var _ Repo = (*MemoryRepo)(nil)
