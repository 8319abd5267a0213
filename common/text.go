package common

import (
	"strings"
	"unicode/utf8"
)

// CountFold counts non-overlapping, case-insensitive occurrences of sub in s.
// An empty sub never matches.
func CountFold(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(strings.ToLower(s), strings.ToLower(sub))
}

// ContainsFold reports whether sub appears in s ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Slice returns s[start:end] with both bounds clamped to the string and
// widened outwards to rune boundaries, so byte offsets computed elsewhere
// never split a multi-byte character.
func Slice(s string, start, end int) string {
	start, end = Clamp(start, len(s)), Clamp(end, len(s))
	if start >= end {
		return ""
	}
	for start > 0 && !utf8.RuneStart(s[start]) {
		start--
	}
	for end < len(s) && !utf8.RuneStart(s[end]) {
		end++
	}
	return s[start:end]
}

// Clamp bounds i to [0, n].
func Clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Preview shortens s to at most n bytes, appending "..." when it was cut.
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return Slice(s, 0, n) + "..."
}
