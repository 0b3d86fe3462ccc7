package parse

import (
	"regexp"
	"strings"
)

var (
	yearRe         = regexp.MustCompile(`\d{4}`)
	degreeRe       = regexp.MustCompile(`(?i)bachelor|master|phd|doctorate|associate|diploma|certificate`)
	institutionRe  = regexp.MustCompile(`(?i)university|college|institute|school`)
	gpaRe          = regexp.MustCompile(`(?i)gpa|grade`)
	titleCompanyRe = regexp.MustCompile(`^(.+?)\s+(?:at|@|\|)\s+(.+)$`)
	bulletPrefixRe = regexp.MustCompile(`^[•\-*]\s*`)
	skillSplitRe   = regexp.MustCompile(`[,;•\-\n]`)
)

// parseExperience classifies each line as a job header, a duration, or a
// description bullet. A header is any line longer than five characters with
// no bullet marker and no hyphen; it flushes the in-progress entry.
func parseExperience(content []string) []ExperienceEntry {
	entries := []ExperienceEntry{}
	var cur ExperienceEntry
	flush := func() {
		if cur.Title != "" {
			entries = append(entries, cur)
		}
	}

	for _, line := range content {
		switch {
		case len(line) > 5 && !strings.Contains(line, "•") && !strings.Contains(line, "-"):
			flush()
			cur = ExperienceEntry{Description: []string{}}
			if m := titleCompanyRe.FindStringSubmatch(line); m != nil {
				cur.Title = strings.TrimSpace(m[1])
				cur.Company = strings.TrimSpace(m[2])
			} else {
				cur.Title = line
			}
		case yearRe.MatchString(line) && (strings.Contains(line, "-") || strings.Contains(line, "to")):
			cur.Duration = line
		case strings.Contains(line, "•") || strings.Contains(line, "-") || len(line) > 20:
			cur.Description = append(cur.Description, bulletPrefixRe.ReplaceAllString(line, ""))
		}
	}
	flush()

	return entries
}

func parseEducation(content []string) []EducationEntry {
	entries := []EducationEntry{}
	var cur EducationEntry

	for _, line := range content {
		switch {
		case degreeRe.MatchString(line):
			if cur.Degree != "" {
				entries = append(entries, cur)
			}
			cur = EducationEntry{Degree: line}
		case institutionRe.MatchString(line):
			cur.Institution = line
		case yearRe.MatchString(line):
			cur.Year = line
		case gpaRe.MatchString(line):
			cur.GPA = line
		}
	}
	if cur.Degree != "" {
		entries = append(entries, cur)
	}

	return entries
}

// parseSkills joins the section and splits on common delimiters, keeping
// tokens between 2 and 29 characters.
func parseSkills(content []string) []string {
	skills := []string{}
	for _, part := range skillSplitRe.Split(strings.Join(content, " "), -1) {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) > 1 && len(trimmed) < 30 {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// parseProjects treats any line longer than five characters without bullet
// or hyphen as a new project name; everything else joins the description.
// Technologies is never populated here: the source layout carries no
// reliable marker for a tech list, so the field stays a documented gap.
func parseProjects(content []string) []ProjectEntry {
	projects := []ProjectEntry{}
	var cur ProjectEntry
	flush := func() {
		if cur.Name != "" {
			projects = append(projects, cur)
		}
	}

	for _, line := range content {
		if len(line) > 5 && !strings.Contains(line, "•") && !strings.Contains(line, "-") {
			flush()
			cur = ProjectEntry{Name: line, Technologies: []string{}}
			continue
		}
		if cur.Description == "" {
			cur.Description = line
		} else {
			cur.Description += " " + line
		}
	}
	flush()

	return projects
}
