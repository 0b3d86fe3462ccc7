package ats

import "math"

// overallScore derives the final 0-100 score from the accumulated analysis:
// per-issue deductions by impact, a capped strengths bonus, then keyword
// density and formatting multipliers.
func overallScore(analysis *Analysis) int {
	score := 100.0

	for _, issue := range analysis.Issues {
		switch issue.Impact {
		case ImpactHigh:
			score -= 15
		case ImpactMedium:
			score -= 8
		case ImpactLow:
			score -= 3
		}
	}

	bonus := float64(len(analysis.Strengths)) * 2
	if bonus > 20 {
		bonus = 20
	}
	score += bonus

	score *= 0.7 + (analysis.Keywords.Density/100)*0.3
	score *= 0.8 + (float64(analysis.Formatting.Score)/100)*0.2

	return int(math.Max(0, math.Min(100, math.Round(score))))
}

// gradeFor is a step function of the final score.
func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 45:
		return "D+"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func readabilityLevel(score int) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}
