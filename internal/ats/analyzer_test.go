package ats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-backend/internal/parse"
)

func completeResume() parse.ResumeInfo {
	return parse.ResumeInfo{
		PersonalInfo: parse.PersonalInfo{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Sections: parse.Sections{
			Summary: "Senior engineer with a decade of backend experience.",
			Experience: []parse.ExperienceEntry{
				{
					Title:    "Senior Engineer",
					Company:  "Acme",
					Duration: "2018-2024",
					Description: []string{
						"Led a team of 8 engineers and reduced costs by 30%",
					},
				},
			},
			Education: []parse.EducationEntry{
				{Degree: "Bachelor of Science", Institution: "State University", Year: "2014"},
			},
			Skills:         []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Docker", "Terraform"},
			Certifications: []string{"AWS Certified Solutions Architect"},
			Projects:       []parse.ProjectEntry{{Name: "Billing Platform", Technologies: []string{}}},
		},
		Keywords:         []string{"engineering", "backend", "kubernetes"},
		TotalWords:       450,
		ReadabilityScore: 65,
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	analysis := Analyze(parse.ResumeInfo{}, nil)

	assert.Equal(t, 0, analysis.Score)
	assert.Equal(t, "F", analysis.Grade)
	assert.Empty(t, analysis.Strengths)
	assert.Equal(t, 40, analysis.Formatting.Score)
	assert.ElementsMatch(t,
		[]string{"experience", "education", "skills", "summary", "certifications", "projects"},
		analysis.Sections.Missing)

	// Slices must be non-nil so the JSON payload renders [] instead of null.
	require.NotNil(t, analysis.Issues)
	require.NotNil(t, analysis.Strengths)
	require.NotNil(t, analysis.Keywords.Found)
	require.NotNil(t, analysis.Keywords.Missing)
	require.NotNil(t, analysis.Sections.Present)
	require.NotNil(t, analysis.Formatting.Issues)
}

func TestAnalyzeCompleteResumeScoresTop(t *testing.T) {
	analysis := Analyze(completeResume(), []string{"go", "kubernetes"})

	assert.Equal(t, 100, analysis.Score)
	assert.Equal(t, "A+", analysis.Grade)
	assert.Empty(t, analysis.Issues)
	assert.Equal(t, 100, analysis.Formatting.Score)
	assert.InDelta(t, 100.0, analysis.Keywords.Density, 0.001)
	assert.Contains(t, analysis.Strengths, "Quantified achievements present")
	assert.Contains(t, analysis.Strengths, "Strong action verbs used")
}

func TestAnalyzeReportsMissingJobKeyword(t *testing.T) {
	info := parse.ResumeInfo{Keywords: []string{"python"}}
	analysis := Analyze(info, []string{"kubernetes"})

	assert.Equal(t, []string{"kubernetes"}, analysis.Keywords.Missing)
	assert.Empty(t, analysis.Keywords.Found)
	assert.InDelta(t, 0.0, analysis.Keywords.Density, 0.001)

	var found bool
	for _, issue := range analysis.Issues {
		if issue.Message == "Low keyword density - may not pass ATS filters" {
			found = true
			assert.Equal(t, TypeError, issue.Type)
			assert.Equal(t, ImpactHigh, issue.Impact)
		}
	}
	assert.True(t, found, "expected low keyword density issue")
}

func TestAnalyzeKeywordSubstringMatch(t *testing.T) {
	info := parse.ResumeInfo{Keywords: []string{"golang"}}
	analysis := Analyze(info, []string{"go"})

	assert.Equal(t, []string{"go"}, analysis.Keywords.Found)
	assert.InDelta(t, 100.0, analysis.Keywords.Density, 0.001)
	assert.Contains(t, analysis.Strengths, "Good keyword density for ATS systems")
}

func TestAnalyzeFallsBackToIndustryKeywords(t *testing.T) {
	info := parse.ResumeInfo{Keywords: []string{"leadership", "agile"}}
	analysis := Analyze(info, nil)

	assert.Contains(t, analysis.Keywords.Found, "leadership")
	assert.Contains(t, analysis.Keywords.Found, "agile")
	assert.Len(t, append(analysis.Keywords.Found, analysis.Keywords.Missing...), len(defaultIndustryKeywords))
}

func TestAnalyzeSkillCountThresholds(t *testing.T) {
	few := parse.ResumeInfo{Sections: parse.Sections{Skills: []string{"Go", "SQL"}}}
	analysis := Analyze(few, nil)
	assert.True(t, hasIssue(analysis, "Limited skills listed"))

	many := parse.ResumeInfo{Sections: parse.Sections{Skills: make([]string, 25)}}
	analysis = Analyze(many, nil)
	assert.True(t, hasIssue(analysis, "Too many skills listed"))
}

func TestAnalyzeJSONRoundTrip(t *testing.T) {
	original := Analyze(completeResume(), nil)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Analysis
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func hasIssue(analysis Analysis, message string) bool {
	for _, issue := range analysis.Issues {
		if issue.Message == message {
			return true
		}
	}
	return false
}
