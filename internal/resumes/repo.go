package resumes

import "context"

// Repo defines persistence operations for resumes and their analyses.
type Repo interface {
	CreateResume(ctx context.Context, resume Resume) error
	CreateAnalysis(ctx context.Context, record AnalysisRecord) error
	GetResume(ctx context.Context, resumeID string) (Resume, error)
	GetAnalysisByResume(ctx context.Context, resumeID string) (AnalysisRecord, error)
	Stats(ctx context.Context) (Stats, error)
}
