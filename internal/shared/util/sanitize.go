package util

import (
	"errors"
	"strings"
)

var ErrInvalidFileName = errors.New("invalid file name")

var separatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

// SanitizeFileName makes an upload's file name safe to use as a single path
// element: traversal sequences are rejected outright, path separators are
// flattened to underscores.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := separatorReplacer.Replace(strings.TrimSpace(name))
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
