package protocol

import (
	"math"
	"strings"
)

const (
	// MaxNameLen caps sanitized display names.
	MaxNameLen = 32

	// MaxTextLen caps chat messages and combat event strings.
	MaxTextLen = 256

	// DefaultName is used when a client joins without a usable name.
	DefaultName = "Unknown"
)

// SanitizeName trims and truncates a display name, substituting DefaultName
// when nothing usable remains.
func SanitizeName(name string) string {
	name = truncate(strings.TrimSpace(name), MaxNameLen)
	if name == "" {
		return DefaultName
	}
	return name
}

// SanitizeText trims and truncates free-form client text (chat lines and
// combat events). An empty result means the input carried no content.
func SanitizeText(text string) string {
	return truncate(strings.TrimSpace(text), MaxTextLen)
}

// ValidCoords reports whether both coordinates are present and finite.
func ValidCoords(x, y *float64) bool {
	return finite(x) && finite(y)
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// truncate caps s at n runes without splitting a multi-byte character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
