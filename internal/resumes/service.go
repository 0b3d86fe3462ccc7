package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/shared/storage/object"
)

// MaxUploadBytes is the largest accepted resume file.
const MaxUploadBytes = 10 << 20

// Service coordinates resume storage, analysis and persistence.
type Service struct {
	store    object.ObjectStore
	repo     Repo
	analyzer *analyzer.Service
}

// NewService creates a new resume service.
func NewService(store object.ObjectStore, repo Repo, analyzerSvc *analyzer.Service) *Service {
	return &Service{store: store, repo: repo, analyzer: analyzerSvc}
}

// ProcessResult is the outcome of one upload: the stored resume row plus the
// full analysis.
type ProcessResult struct {
	Resume   Resume
	Analysis analyzer.Result
}

// Process stores an uploaded resume, runs the analysis pipeline and persists
// both the file metadata and the analysis record.
func (s *Service) Process(ctx context.Context, originalFilename string, data []byte, jobKeywords []string) (ProcessResult, error) {
	if len(data) == 0 {
		return ProcessResult{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if len(data) > MaxUploadBytes {
		return ProcessResult{}, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, MaxUploadBytes)
	}

	result, err := s.analyzer.Analyze(ctx, data, jobKeywords)
	if err != nil {
		return ProcessResult{}, err
	}

	resumeID := uuid.NewString()
	fileName := resumeID + ".pdf"

	storageKey, size, _, err := s.store.Save(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		return ProcessResult{}, fmt.Errorf("store resume: %w", err)
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:               resumeID,
		FileName:         fileName,
		OriginalFilename: originalFilename,
		SizeBytes:        size,
		StorageKey:       storageKey,
		UploadedAt:       now,
	}
	if err := s.repo.CreateResume(ctx, resume); err != nil {
		return ProcessResult{}, fmt.Errorf("persist resume: %w", err)
	}

	analysisData, err := json.Marshal(result)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("encode analysis: %w", err)
	}

	record := AnalysisRecord{
		ID:               uuid.NewString(),
		ResumeID:         resumeID,
		ATSScore:         result.Analysis.Score,
		Grade:            result.Analysis.Grade,
		TotalWords:       result.Resume.TotalWords,
		ReadabilityScore: result.Resume.ReadabilityScore,
		AnalysisData:     analysisData,
		CreatedAt:        now,
	}
	if err := s.repo.CreateAnalysis(ctx, record); err != nil {
		return ProcessResult{}, fmt.Errorf("persist analysis: %w", err)
	}

	return ProcessResult{Resume: resume, Analysis: result}, nil
}

// GetAnalysis loads a resume and its most recent analysis.
func (s *Service) GetAnalysis(ctx context.Context, resumeID string) (Resume, AnalysisRecord, error) {
	resume, err := s.repo.GetResume(ctx, resumeID)
	if err != nil {
		return Resume{}, AnalysisRecord{}, err
	}
	record, err := s.repo.GetAnalysisByResume(ctx, resumeID)
	if err != nil {
		return Resume{}, AnalysisRecord{}, err
	}
	return resume, record, nil
}

// OpenFile returns the resume metadata and a reader over its stored bytes.
func (s *Service) OpenFile(ctx context.Context, resumeID string) (Resume, io.ReadCloser, error) {
	resume, err := s.repo.GetResume(ctx, resumeID)
	if err != nil {
		return Resume{}, nil, err
	}
	rc, err := s.store.Open(ctx, resume.StorageKey)
	if err != nil {
		return Resume{}, nil, fmt.Errorf("open stored resume: %w", err)
	}
	return resume, rc, nil
}

// Stats aggregates upload and analysis statistics.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
