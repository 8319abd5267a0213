package intent

import (
	"regexp"
	"strings"

	"revcheck.app/checker/internal/model"
)

const (
	styleIssue     = "style_issue"
	styleCorrected = "style_corrected"
)

type styleRule struct {
	pattern     *regexp.Regexp
	description string
	contraction bool
}

var styleRules = []styleRule{
	{regexp.MustCompile(`(?i)don['’]?t\s+use\s+contractions?`), "Remove contractions from text", true},
	{regexp.MustCompile(`(?i)expand\s+contractions?`), "Expand contractions to full forms", true},
	{regexp.MustCompile(`(?i)no\s+contractions?`), "Remove contractions from text", true},

	{regexp.MustCompile(`(?i)make\s+(?:this\s+)?more\s+formal`), "Make text more formal", false},
	{regexp.MustCompile(`(?i)use\s+formal\s+language`), "Use formal language", false},
	{regexp.MustCompile(`(?i)less\s+casual`), "Make text less casual", false},

	{regexp.MustCompile(`(?i)fix\s+grammar`), "Fix grammatical errors", false},
	{regexp.MustCompile(`(?i)correct\s+grammar`), "Correct grammatical errors", false},
	{regexp.MustCompile(`(?i)grammar\s+(?:error|mistake)`), "Fix grammatical errors", false},

	{regexp.MustCompile(`(?i)improve\s+(?:the\s+)?writing`), "Improve writing style", false},
	{regexp.MustCompile(`(?i)make\s+(?:this\s+)?clearer`), "Make text clearer", false},
	{regexp.MustCompile(`(?i)simplify\s+(?:this\s+)?(?:text|language)?`), "Simplify the language", false},
}

// IsContractionStyle reports whether a style description is about contractions.
func IsContractionStyle(description string) bool {
	return strings.Contains(strings.ToLower(description), "contraction")
}

func parseStyle(comment, associated string) (model.Intent, bool) {
	for _, rule := range styleRules {
		if !rule.pattern.MatchString(comment) {
			continue
		}

		it := model.Intent{
			Type:             model.IntentStyleGrammar,
			Scope:            model.IntentScopeLocal,
			StyleDescription: rule.description,
		}

		if rule.contraction && associated != "" {
			found := FindContractions(associated)
			if len(found) == 0 {
				it.FromText = model.StrPtr(associated)
				it.ToText = model.StrPtr(model.NoContractionsFound)
				return it, true
			}
			expanded := make([]string, len(found))
			for i, c := range found {
				expanded[i] = ExpandContraction(c)
			}
			it.FromText = model.StrPtr(strings.Join(found, ", "))
			it.ToText = model.StrPtr(strings.Join(expanded, ", "))
			return it, true
		}

		from := associated
		if from == "" {
			from = styleIssue
		}
		it.FromText = model.StrPtr(from)
		it.ToText = model.StrPtr(styleCorrected)
		return it, true
	}
	return model.Intent{}, false
}
