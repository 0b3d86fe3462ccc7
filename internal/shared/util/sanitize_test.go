package util

import (
	"errors"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"resume.pdf", "resume.pdf", false},
		{"  resume.pdf  ", "resume.pdf", false},
		{"dir/resume.pdf", "dir_resume.pdf", false},
		{`dir\resume.pdf`, "dir_resume.pdf", false},
		{"../../etc/passwd", "", true},
		{"", "", true},
		{"   ", "", true},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.name)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFileName) {
				t.Errorf("%q: expected ErrInvalidFileName, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
