package ats

// Issue types and impact levels produced by the analyzer.
const (
	TypeError      = "error"
	TypeWarning    = "warning"
	TypeSuggestion = "suggestion"

	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Issue is one detected problem, in detection order.
type Issue struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Impact     string `json:"impact"`
	Suggestion string `json:"suggestion,omitempty"`
}

// KeywordReport lists which target keywords matched the resume's combined
// keyword/skill pool. Density is the found fraction as a percentage.
type KeywordReport struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Density float64  `json:"density"`
}

// SectionReport lists present and missing resume sections.
type SectionReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// FormattingReport carries the contact/length sub-score, clamped to >= 0.
type FormattingReport struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// ReadabilityReport restates the Flesch score with a human-readable level.
type ReadabilityReport struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// Analysis is the full ATS compatibility report for one resume. Score and
// Grade are derived last from the accumulated issues, strengths, keyword
// density and formatting score; no pass sets them directly.
type Analysis struct {
	Score       int               `json:"score"`
	Grade       string            `json:"grade"`
	Issues      []Issue           `json:"issues"`
	Strengths   []string          `json:"strengths"`
	Keywords    KeywordReport     `json:"keywords"`
	Sections    SectionReport     `json:"sections"`
	Formatting  FormattingReport  `json:"formatting"`
	Readability ReadabilityReport `json:"readability"`
}
