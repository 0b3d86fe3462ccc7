package parse

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?([0-9]{3})[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[A-Za-z0-9-]+`)
	nameRe     = regexp.MustCompile(`^[A-Za-z\s.'-]+$`)
)

// extractPersonalInfo scans the whole raw text, not per-section. First match
// wins for every field.
func extractPersonalInfo(text string, lines []string) PersonalInfo {
	info := PersonalInfo{
		Email:    emailRe.FindString(text),
		Phone:    phoneRe.FindString(text),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}

	// Name heuristic: the first of the top five lines that is not contact
	// info, is a plausible length, and looks like a human name.
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if emailRe.MatchString(line) || phoneRe.MatchString(line) {
			continue
		}
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		if !nameRe.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		info.Name = line
		break
	}

	return info
}
