package parse

import "testing"

func TestExtractPersonalInfoLinks(t *testing.T) {
	text := "Jane Smith\njane.smith@example.com\nlinkedin.com/in/jane-smith\ngithub.com/janesmith"
	info := ExtractResumeInfo(text).PersonalInfo

	if info.Name != "Jane Smith" {
		t.Errorf("name: got %q", info.Name)
	}
	if info.Email != "jane.smith@example.com" {
		t.Errorf("email: got %q", info.Email)
	}
	if info.LinkedIn != "linkedin.com/in/jane-smith" {
		t.Errorf("linkedin: got %q", info.LinkedIn)
	}
	if info.GitHub != "github.com/janesmith" {
		t.Errorf("github: got %q", info.GitHub)
	}
}

func TestExtractPersonalInfoPhoneFormats(t *testing.T) {
	for _, raw := range []string{
		"555-123-4567",
		"555.123.4567",
		"555 123 4567",
		"+1 555 123 4567",
	} {
		info := ExtractResumeInfo("Jane Smith\n" + raw).PersonalInfo
		if info.Phone == "" {
			t.Errorf("phone %q not detected", raw)
		}
	}
}

func TestExtractPersonalInfoNameHeuristic(t *testing.T) {
	// The first plausible line wins; contact lines and long lines are skipped.
	text := "jane@example.com\nA very long headline that reads like a sentence and not a name\nJane Smith"
	info := ExtractResumeInfo(text).PersonalInfo
	if info.Name != "Jane Smith" {
		t.Errorf("name: got %q, want %q", info.Name, "Jane Smith")
	}

	// More than four words is not a name.
	text = "One Two Three Four Five\njane@example.com"
	info = ExtractResumeInfo(text).PersonalInfo
	if info.Name != "" {
		t.Errorf("name: got %q, want empty", info.Name)
	}
}
