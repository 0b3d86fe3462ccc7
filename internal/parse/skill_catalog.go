package parse

import "strings"

// skillCatalog is the fixed list of well-known technologies scanned for when
// a resume has no recognizable skills section. Matches are reported in
// catalog order.
var skillCatalog = []string{
	// Programming languages
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "PHP", "Ruby",
	"Go", "Rust", "Swift", "Kotlin",
	// Web technologies
	"React", "Angular", "Vue.js", "Node.js", "Express", "Next.js", "HTML",
	"CSS", "SASS", "LESS",
	// Databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "SQL Server",
	// Cloud and DevOps
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git",
	"GitHub", "GitLab",
	// Frameworks and libraries
	"Spring", "Django", "Flask", "Laravel", "Rails", "jQuery", "Bootstrap",
	"Tailwind",
	// Tools and methodologies
	"Agile", "Scrum", "Kanban", "CI/CD", "TDD", "REST", "GraphQL",
	"Microservices",
}

func skillsFromCatalog(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range skillCatalog {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
