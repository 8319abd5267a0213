package intent

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	contractionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\w+['’]\w+\b`),
		regexp.MustCompile(`(?i)\b(?:can't|won't|shouldn't|couldn't|wouldn't|isn't|aren't|wasn't|weren't|don't|doesn't|didn't|haven't|hasn't|hadn't|I'm|you're|he's|she's|it's|we're|they're|I'll|you'll|he'll|she'll|it'll|we'll|they'll|I'd|you'd|he'd|she'd|it'd|we'd|they'd|I've|you've|we've|they've)\b`),
	}

	expansions = map[string]string{
		"can't":     "cannot",
		"won't":     "will not",
		"shouldn't": "should not",
		"couldn't":  "could not",
		"wouldn't":  "would not",
		"isn't":     "is not",
		"aren't":    "are not",
		"wasn't":    "was not",
		"weren't":   "were not",
		"don't":     "do not",
		"doesn't":   "does not",
		"didn't":    "did not",
		"haven't":   "have not",
		"hasn't":    "has not",
		"hadn't":    "had not",
		"i'm":       "I am",
		"you're":    "you are",
		"he's":      "he is",
		"she's":     "she is",
		"it's":      "it is",
		"we're":     "we are",
		"they're":   "they are",
		"i'll":      "I will",
		"you'll":    "you will",
		"he'll":     "he will",
		"she'll":    "she will",
		"it'll":     "it will",
		"we'll":     "we will",
		"they'll":   "they will",
		"i'd":       "I would",
		"you'd":     "you would",
		"he'd":      "he would",
		"she'd":     "she would",
		"it'd":      "it would",
		"we'd":      "we would",
		"they'd":    "they would",
		"i've":      "I have",
		"you've":    "you have",
		"we've":     "we have",
		"they've":   "they have",
		"storm's":   "storm has",
	}
)

// FindContractions returns the distinct contractions in text in order of
// first appearance. Curly apostrophes count as apostrophes.
func FindContractions(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, re := range contractionPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				found = append(found, m)
			}
		}
	}
	return found
}

// ExpandContraction returns the full form of a contraction, capitalised when
// the contraction starts with an upper-case letter. Unknown "'s" forms
// become "<base> has"; anything else is returned unchanged.
func ExpandContraction(c string) string {
	normalized := strings.ReplaceAll(c, "’", "'")
	lower := strings.ToLower(normalized)

	if exp, ok := expansions[lower]; ok {
		if first, _ := utf8.DecodeRuneInString(c); unicode.IsUpper(first) {
			return upperFirst(exp)
		}
		return exp
	}

	if strings.HasSuffix(lower, "'s") {
		return normalized[:len(normalized)-2] + " has"
	}
	return c
}

// KnownContractions lists the contractions with a fixed expansion, sorted.
func KnownContractions() []string {
	keys := make([]string, 0, len(expansions))
	for k := range expansions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
