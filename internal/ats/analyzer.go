package ats

import (
	"fmt"
	"regexp"
	"strings"

	"ats-backend/internal/parse"
)

// defaultIndustryKeywords is the target list when the caller supplies no
// job-specific keywords.
var defaultIndustryKeywords = []string{
	"leadership", "management", "communication", "teamwork",
	"problem-solving", "analytical", "strategic", "innovative",
	"collaborative", "results-driven", "agile", "scrum",
	"project management", "data analysis", "customer service",
}

var actionVerbs = []string{
	"achieved", "managed", "led", "developed", "implemented", "created",
	"improved", "increased", "reduced", "optimized", "designed", "built",
	"launched", "delivered",
}

var digitRe = regexp.MustCompile(`\d`)

// Analyze scores a structured resume against ATS compatibility heuristics.
// The four passes run in a fixed order because issues and strengths are
// order-sensitive output; score and grade are computed last, in that order.
// Analyze never fails: an all-empty ResumeInfo degrades toward the low end.
func Analyze(info parse.ResumeInfo, jobKeywords []string) Analysis {
	analysis := Analysis{
		Issues:     []Issue{},
		Strengths:  []string{},
		Keywords:   KeywordReport{Found: []string{}, Missing: []string{}},
		Sections:   SectionReport{Present: []string{}, Missing: []string{}},
		Formatting: FormattingReport{Issues: []string{}},
		Readability: ReadabilityReport{
			Score: info.ReadabilityScore,
			Level: readabilityLevel(info.ReadabilityScore),
		},
	}

	analyzeSections(info, &analysis)
	analyzeKeywords(info, &analysis, jobKeywords)
	analyzeFormatting(info, &analysis)
	analyzeContentQuality(info, &analysis)

	analysis.Score = overallScore(&analysis)
	analysis.Grade = gradeFor(analysis.Score)

	return analysis
}

func analyzeSections(info parse.ResumeInfo, analysis *Analysis) {
	required := []string{"experience", "education", "skills"}
	recommended := []string{"summary", "certifications", "projects"}

	for _, section := range required {
		if hasSection(info, section) {
			analysis.Sections.Present = append(analysis.Sections.Present, section)
			analysis.Strengths = append(analysis.Strengths, capitalize(section)+" section present")
			continue
		}
		analysis.Sections.Missing = append(analysis.Sections.Missing, section)
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeError,
			Category:   "Structure",
			Message:    fmt.Sprintf("Missing %s section", section),
			Impact:     ImpactHigh,
			Suggestion: fmt.Sprintf("Add a dedicated %s section to your resume", section),
		})
	}

	for _, section := range recommended {
		if hasSection(info, section) {
			analysis.Sections.Present = append(analysis.Sections.Present, section)
			analysis.Strengths = append(analysis.Strengths, capitalize(section)+" section included")
			continue
		}
		analysis.Sections.Missing = append(analysis.Sections.Missing, section)
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeSuggestion,
			Category:   "Structure",
			Message:    fmt.Sprintf("Consider adding %s section", section),
			Impact:     ImpactLow,
			Suggestion: fmt.Sprintf("A %s section can strengthen your resume", section),
		})
	}
}

func hasSection(info parse.ResumeInfo, section string) bool {
	switch section {
	case "experience":
		return len(info.Sections.Experience) > 0
	case "education":
		return len(info.Sections.Education) > 0
	case "skills":
		return len(info.Sections.Skills) > 0
	case "summary":
		return info.Sections.Summary != ""
	case "certifications":
		return len(info.Sections.Certifications) > 0
	case "projects":
		return len(info.Sections.Projects) > 0
	default:
		return false
	}
}

func analyzeKeywords(info parse.ResumeInfo, analysis *Analysis, jobKeywords []string) {
	// Candidate pool: extracted keywords plus skills, lower-cased, deduped.
	pool := make([]string, 0, len(info.Keywords)+len(info.Sections.Skills))
	seen := make(map[string]bool, cap(pool))
	for _, term := range info.Keywords {
		lower := strings.ToLower(term)
		if !seen[lower] {
			seen[lower] = true
			pool = append(pool, lower)
		}
	}
	for _, term := range info.Sections.Skills {
		lower := strings.ToLower(term)
		if !seen[lower] {
			seen[lower] = true
			pool = append(pool, lower)
		}
	}

	target := jobKeywords
	if len(target) == 0 {
		target = defaultIndustryKeywords
	}

	for _, keyword := range target {
		lower := strings.ToLower(keyword)
		found := false
		for _, candidate := range pool {
			if strings.Contains(candidate, lower) {
				found = true
				break
			}
		}
		if found {
			analysis.Keywords.Found = append(analysis.Keywords.Found, keyword)
		} else {
			analysis.Keywords.Missing = append(analysis.Keywords.Missing, keyword)
		}
	}

	analysis.Keywords.Density = float64(len(analysis.Keywords.Found)) / float64(len(target)) * 100

	switch {
	case analysis.Keywords.Density < 30:
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeError,
			Category:   "Keywords",
			Message:    "Low keyword density - may not pass ATS filters",
			Impact:     ImpactHigh,
			Suggestion: "Include more industry-relevant keywords throughout your resume",
		})
	case analysis.Keywords.Density < 50:
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeWarning,
			Category:   "Keywords",
			Message:    "Moderate keyword density - room for improvement",
			Impact:     ImpactMedium,
			Suggestion: "Consider adding more relevant keywords to improve ATS compatibility",
		})
	default:
		analysis.Strengths = append(analysis.Strengths, "Good keyword density for ATS systems")
	}
}

func analyzeFormatting(info parse.ResumeInfo, analysis *Analysis) {
	score := 100

	if info.PersonalInfo.Email == "" {
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeError,
			Category:   "Contact Info",
			Message:    "Email address not found",
			Impact:     ImpactHigh,
			Suggestion: "Include a professional email address",
		})
		score -= 20
	} else {
		analysis.Strengths = append(analysis.Strengths, "Email address present")
	}

	if info.PersonalInfo.Phone == "" {
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeWarning,
			Category:   "Contact Info",
			Message:    "Phone number not found",
			Impact:     ImpactMedium,
			Suggestion: "Include a phone number for easy contact",
		})
		score -= 10
	} else {
		analysis.Strengths = append(analysis.Strengths, "Phone number present")
	}

	if info.PersonalInfo.Name == "" {
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeError,
			Category:   "Contact Info",
			Message:    "Name not clearly identified",
			Impact:     ImpactHigh,
			Suggestion: "Ensure your name is prominently displayed at the top",
		})
		score -= 15
	} else {
		analysis.Strengths = append(analysis.Strengths, "Name clearly identified")
	}

	switch {
	case info.TotalWords < 200:
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeWarning,
			Category:   "Content Length",
			Message:    "Resume appears too short",
			Impact:     ImpactMedium,
			Suggestion: "Consider adding more detail to your experience and achievements",
		})
		score -= 15
	case info.TotalWords > 800:
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeSuggestion,
			Category:   "Content Length",
			Message:    "Resume may be too lengthy",
			Impact:     ImpactLow,
			Suggestion: "Consider condensing content to 1-2 pages for better readability",
		})
		score -= 5
	default:
		analysis.Strengths = append(analysis.Strengths, "Appropriate resume length")
	}

	if score < 0 {
		score = 0
	}
	analysis.Formatting.Score = score
}

func analyzeContentQuality(info parse.ResumeInfo, analysis *Analysis) {
	hasNumbers := false
	hasActionVerbs := false
	for _, exp := range info.Sections.Experience {
		for _, desc := range exp.Description {
			if !hasNumbers && digitRe.MatchString(desc) {
				hasNumbers = true
			}
			if !hasActionVerbs {
				lower := strings.ToLower(desc)
				for _, verb := range actionVerbs {
					if strings.Contains(lower, verb) {
						hasActionVerbs = true
						break
					}
				}
			}
		}
	}

	if hasNumbers {
		analysis.Strengths = append(analysis.Strengths, "Quantified achievements present")
	} else {
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeSuggestion,
			Category:   "Content Quality",
			Message:    "Add quantified achievements to demonstrate impact",
			Impact:     ImpactMedium,
			Suggestion: "Include numbers, percentages, or metrics to show your accomplishments",
		})
	}

	if hasActionVerbs {
		analysis.Strengths = append(analysis.Strengths, "Strong action verbs used")
	} else {
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeSuggestion,
			Category:   "Content Quality",
			Message:    "Use more action verbs to describe your experience",
			Impact:     ImpactLow,
			Suggestion: `Start bullet points with strong action verbs like "achieved," "managed," or "developed"`,
		})
	}

	switch {
	case len(info.Sections.Skills) < 5:
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeWarning,
			Category:   "Skills",
			Message:    "Limited skills listed",
			Impact:     ImpactMedium,
			Suggestion: "Include more relevant technical and soft skills",
		})
	case len(info.Sections.Skills) > 20:
		analysis.Issues = append(analysis.Issues, Issue{
			Type:       TypeSuggestion,
			Category:   "Skills",
			Message:    "Too many skills listed",
			Impact:     ImpactLow,
			Suggestion: "Focus on the most relevant skills for your target role",
		})
	default:
		analysis.Strengths = append(analysis.Strengths, "Appropriate number of skills listed")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
