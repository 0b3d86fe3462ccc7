package parse

import "strings"

// ExtractResumeInfo builds the structured resume model from extracted plain
// text. Heuristics never fail: any field without a detectable pattern stays
// at its zero value and the scorer surfaces the gap instead.
func ExtractResumeInfo(text string) ResumeInfo {
	lines := nonEmptyLines(text)

	return ResumeInfo{
		PersonalInfo:     extractPersonalInfo(text, lines),
		Sections:         extractSections(text, lines),
		Keywords:         ExtractKeywords(text),
		TotalWords:       CountWords(text),
		ReadabilityScore: ReadabilityScore(text),
	}
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CountWords returns the number of whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
