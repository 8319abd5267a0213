package brain

import (
	"strings"
	"unicode"
)

// SanitizeForPrompt drops control characters other than newline and tab
// from text sent to a model. Word exports carry form feeds and other
// control runes that some providers reject. Returns the cleaned text and
// the number of runes dropped.
func SanitizeForPrompt(text string) (string, int) {
	dropped := 0
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			return r
		}
		dropped++
		return -1
	}, text)
	return cleaned, dropped
}
