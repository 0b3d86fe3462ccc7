package analyzer

import (
	"context"

	"ats-backend/internal/ats"
	"ats-backend/internal/extract"
	"ats-backend/internal/parse"
)

// Result bundles everything produced for one resume. JSON field names match
// the analysis payload stored and served by the resumes package.
type Result struct {
	Resume    parse.ResumeInfo  `json:"extractedInfo"`
	Analysis  ats.Analysis      `json:"atsAnalysis"`
	PageCount int               `json:"pages"`
	Info      map[string]string `json:"info"`
}

// Service runs the full extraction and scoring pipeline. It holds no mutable
// state, so independent invocations may run concurrently.
type Service struct {
	Extractor extract.Extractor
}

// NewService constructs the pipeline around an injected extractor.
func NewService(extractor extract.Extractor) *Service {
	return &Service{Extractor: extractor}
}

// Analyze turns raw resume bytes into a scored analysis. Decode failures
// propagate from the extractor; everything past extraction cannot fail.
func (s *Service) Analyze(ctx context.Context, data []byte, jobKeywords []string) (Result, error) {
	doc, err := s.Extractor.Extract(ctx, data)
	if err != nil {
		return Result{}, err
	}

	info := parse.ExtractResumeInfo(doc.Text)

	return Result{
		Resume:    info,
		Analysis:  ats.Analyze(info, jobKeywords),
		PageCount: doc.PageCount,
		Info:      doc.Info,
	}, nil
}
