package validate

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// MinSimilarity is the lowest ratio at which a removed word is accepted as
// the source of a single-word replacement.
const MinSimilarity = 0.6

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// RemovedWords returns, sorted, the lower-cased words present in original
// but absent from revised.
func RemovedWords(original, revised string) []string {
	kept := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(strings.ToLower(revised), -1) {
		kept[w] = true
	}

	seen := make(map[string]bool)
	var removed []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(original), -1) {
		if kept[w] || seen[w] {
			continue
		}
		seen[w] = true
		removed = append(removed, w)
	}
	sort.Strings(removed)
	return removed
}

// Similarity is the difflib ratio between two words compared character by
// character: twice the matched characters over the total length.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// ClosestMatch returns the candidate most similar to word, provided it
// reaches MinSimilarity. Candidates are scanned in sorted order and the
// first best wins ties.
func ClosestMatch(word string, candidates []string) (string, bool) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestScore, found := "", 0.0, false
	for _, c := range sorted {
		score := Similarity(c, word)
		if score >= MinSimilarity && (!found || score > bestScore) {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}
