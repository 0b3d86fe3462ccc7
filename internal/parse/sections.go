package parse

import (
	"regexp"
	"strings"
)

// sectionHeaders are tested in order against each whole line,
// case-insensitively. The first match wins.
var sectionHeaders = []struct {
	kind    string
	pattern *regexp.Regexp
}{
	{"experience", regexp.MustCompile(`(?i)^(experience|work experience|professional experience|employment|career|work history)$`)},
	{"education", regexp.MustCompile(`(?i)^(education|academic background|qualifications)$`)},
	{"skills", regexp.MustCompile(`(?i)^(skills|technical skills|core competencies|expertise|technologies)$`)},
	{"summary", regexp.MustCompile(`(?i)^(summary|profile|objective|about|overview)$`)},
	{"certifications", regexp.MustCompile(`(?i)^(certifications|certificates|licenses)$`)},
	{"projects", regexp.MustCompile(`(?i)^(projects|portfolio|notable projects)$`)},
}

// extractSections folds over the trimmed non-empty lines carrying a current
// section cursor and its accumulated content. Lines before the first
// recognized header belong to no section and are dropped.
func extractSections(text string, lines []string) Sections {
	sections := Sections{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Certifications: []string{},
		Projects:       []ProjectEntry{},
	}

	current := ""
	var content []string
	flush := func() {
		if current != "" && len(content) > 0 {
			applySection(&sections, current, content)
		}
	}

	for _, line := range lines {
		found := ""
		for _, header := range sectionHeaders {
			if header.pattern.MatchString(line) {
				found = header.kind
				break
			}
		}
		if found != "" {
			flush()
			current = found
			content = nil
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flush()

	// Fallback: if no dedicated skills section produced anything, scan the
	// whole document against the known-skill catalog.
	if len(sections.Skills) == 0 {
		sections.Skills = skillsFromCatalog(text)
	}

	return sections
}

func applySection(s *Sections, kind string, content []string) {
	switch kind {
	case "summary":
		s.Summary = strings.Join(content, " ")
	case "experience":
		s.Experience = parseExperience(content)
	case "education":
		s.Education = parseEducation(content)
	case "skills":
		s.Skills = parseSkills(content)
	case "certifications":
		for _, line := range content {
			if len(line) > 3 {
				s.Certifications = append(s.Certifications, line)
			}
		}
	case "projects":
		s.Projects = parseProjects(content)
	}
}
