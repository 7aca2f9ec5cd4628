package logger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxPathLength = 500

// SanitizePath prepares a URL path for logging: drops control characters
// (log injection), repairs invalid UTF-8, and truncates oversized paths.
func SanitizePath(path string) string {
	if path == "" {
		return ""
	}
	if !utf8.ValidString(path) {
		path = strings.ToValidUTF8(path, "")
	}
	var builder strings.Builder
	builder.Grow(len(path))
	for _, r := range path {
		if unicode.IsPrint(r) || r == ' ' || r == '\t' {
			builder.WriteRune(r)
		}
	}
	path = builder.String()
	if len(path) > maxPathLength {
		path = path[:maxPathLength] + "..."
	}
	return path
}
