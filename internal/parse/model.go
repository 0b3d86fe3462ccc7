package parse

// PersonalInfo holds contact details scraped from the raw text. Fields are
// empty strings when no pattern matched.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is one job within the experience section. Description lines
// keep their source order.
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// EducationEntry is one degree within the education section.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// ProjectEntry is one project within the projects section. Technologies is
// part of the model but no parser heuristic fills it in; see parseProjects.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Sections groups the labeled blocks recognized in the resume.
type Sections struct {
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []string          `json:"certifications"`
	Projects       []ProjectEntry    `json:"projects"`
}

// ResumeInfo is the structured model built once per document. It is never
// mutated after ExtractResumeInfo returns.
type ResumeInfo struct {
	PersonalInfo     PersonalInfo `json:"personalInfo"`
	Sections         Sections     `json:"sections"`
	Keywords         []string     `json:"keywords"`
	TotalWords       int          `json:"totalWords"`
	ReadabilityScore int          `json:"readabilityScore"`
}
