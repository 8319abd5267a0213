package anchor

import (
	"regexp"
	"strings"

	"revcheck.app/checker/common"
)

const (
	lookbehind  = 100
	unknownText = "unknown text"
)

// Marker is an inline comment found in plain text, e.g. "[COMMENT: ...]".
type Marker struct {
	Text  string
	Raw   string
	Start int
	End   int
}

var (
	markerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\[COMMENT:\s*([^\]]+)\]`),
		regexp.MustCompile(`(?i)\{COMMENT:\s*([^\}]+)\}`),
		regexp.MustCompile(`(?i)##\s*([^#]+)##`),
		regexp.MustCompile(`(?im)//\s*(.+)$`),
	}

	changePhrase = regexp.MustCompile(`(?i)change\s+(\w+)\s+to\s+(\w+)`)

	wordsBeforeMarker = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\w+(?:\s+\w+){0,2})\s*\[COMMENT`),
		regexp.MustCompile(`(?i)(\w+)\s*\[COMMENT`),
	}

	// Both only count when a [COMMENT marker follows on the same line.
	quotedBeforeMarker = []*regexp.Regexp{
		regexp.MustCompile(`^["']([^"']+)["']`),
		regexp.MustCompile(`^(\w+(?:\s+\w+){0,2})\s*["']`),
	}

	sentenceBreak = regexp.MustCompile(`[.!?]`)
)

// FindMarkers returns the inline comments of text, grouped by marker style
// in a fixed order: brackets, braces, hashes, then line comments.
func FindMarkers(text string) []Marker {
	var markers []Marker
	for _, re := range markerPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			markers = append(markers, Marker{
				Text:  strings.TrimSpace(text[loc[2]:loc[3]]),
				Raw:   text[loc[0]:loc[1]],
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	return markers
}

// InferTarget guesses which text before the marker the comment is about.
// Strategies are tried in priority order and the first hit wins.
func InferTarget(fullText string, m Marker) string {
	before := common.Slice(fullText, m.Start-lookbehind, m.Start)

	if g := changePhrase.FindStringSubmatch(m.Text); g != nil {
		if common.ContainsFold(before, g[1]) {
			return g[1]
		}
	}

	withMarker := before + m.Raw
	for _, re := range wordsBeforeMarker {
		if g := re.FindStringSubmatch(withMarker); g != nil && len(g[1]) > 2 {
			return strings.TrimSpace(g[1])
		}
	}

	for _, re := range quotedBeforeMarker {
		if target, ok := firstQuoted(re, withMarker); ok {
			return target
		}
	}

	pieces := sentenceBreak.Split(before, -1)
	last := strings.TrimSpace(pieces[len(pieces)-1])
	if words := strings.Fields(last); len(words) > 10 {
		return strings.Join(words[len(words)-5:], " ")
	} else if len(words) > 0 {
		return last
	}

	if words := strings.Fields(before); len(words) > 0 {
		return strings.Join(words[max(0, len(words)-3):], " ")
	}
	return unknownText
}

// firstQuoted scans every start offset of s for an anchored match of re that
// is followed, on the same line, by a [COMMENT marker.
func firstQuoted(re *regexp.Regexp, s string) (string, bool) {
	for p := 0; p < len(s); p++ {
		loc := re.FindStringSubmatchIndex(s[p:])
		if loc == nil {
			continue
		}
		if commentAhead(s[p+loc[1]:]) {
			return strings.TrimSpace(s[p+loc[2] : p+loc[3]]), true
		}
	}
	return "", false
}

func commentAhead(rest string) bool {
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.Contains(strings.ToUpper(rest), "[COMMENT")
}
