package resumes

import "time"

// Resume is one uploaded resume file.
type Resume struct {
	ID               string
	FileName         string
	OriginalFilename string
	SizeBytes        int64
	StorageKey       string
	UploadedAt       time.Time
}

// AnalysisRecord is the stored outcome of scoring one resume. AnalysisData
// holds the full analyzer.Result as JSON.
type AnalysisRecord struct {
	ID               string
	ResumeID         string
	ATSScore         int
	Grade            string
	TotalWords       int
	ReadabilityScore int
	AnalysisData     []byte
	CreatedAt        time.Time
}

// GradeCount is one bucket of the stats grade distribution.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// DailyCount is one day of upload activity.
type DailyCount struct {
	Date    string `json:"date"`
	Uploads int    `json:"uploads"`
}

// Stats aggregates stored resumes and analyses for the stats endpoint.
type Stats struct {
	TotalResumes      int          `json:"totalResumes"`
	AverageATSScore   int          `json:"averageAtsScore"`
	AverageWordCount  int          `json:"averageWordCount"`
	GradeDistribution []GradeCount `json:"gradeDistribution"`
	RecentActivity    []DailyCount `json:"recentActivity"`
}
