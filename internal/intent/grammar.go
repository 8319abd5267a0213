package intent

import (
	"regexp"
	"strings"

	"revcheck.app/checker/internal/model"
)

// extractor turns the submatches of a grammar rule into (from, to). An empty
// string means the side is unknown.
type extractor func(g []string, comment, associated string) (from, to string)

type grammarRule struct {
	kind    model.IntentType
	pattern *regexp.Regexp
	extract extractor
}

// grammarRules is evaluated top to bottom: global replacements, local
// replacements, deletions, additions, then formatting.
var grammarRules = []grammarRule{
	{model.IntentReplaceGlobal, regexp.MustCompile(`(?i)change\s+(?:all\s+)?(?:instances?\s+of\s+)?["']?([^"']+)["']?\s+(?:to|with)\s+["']?([^"']+)["']?\s+(?:everywhere|globally|throughout)`), namedPair},
	{model.IntentReplaceGlobal, regexp.MustCompile(`(?i)replace\s+(?:all\s+)?["']?([^"']+)["']?\s+(?:with|to)\s+["']?([^"']+)["']?\s+(?:everywhere|globally|throughout)`), namedPair},
	{model.IntentReplaceGlobal, regexp.MustCompile(`(?i)(?:find|search)\s+and\s+replace\s+["']?([^"']+)["']?\s+(?:with|to)\s+["']?([^"']+)["']?`), namedPair},
	{model.IntentReplaceGlobal, regexp.MustCompile(`(?i)change\s+all\s+["']?([^"']+)["']?\s+(?:to|with)\s+["']?([^"']+)["']?`), namedPair},
	{model.IntentReplaceGlobal, regexp.MustCompile(`(?i)change\s+(?:the\s+)?(?:character|boy|girl|person|name)'?s?\s+name\s+to\s+["']?([^"']+)["']?`), namedTarget},
	{model.IntentReplaceGlobal, regexp.MustCompile(`(?i)rename\s+(?:the\s+)?(?:character|boy|girl|person)\s+to\s+["']?([^"']+)["']?`), namedTarget},

	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)change\s+(?:this\s+)?["']?([^"']+)["']?\s+(?:to|with)\s+["']?([^"']+)["']?(?:\s+here|\s+in\s+this\s+(?:sentence|paragraph))?`), pair},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)replace\s+["']?([^"']+)["']?\s+(?:with|to)\s+["']?([^"']+)["']?`), pair},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)correct\s+(?:spelling|word)?:?\s*["']?([^"']+)["']?\s+(?:to|should\s+be|->|→)\s+["']?([^"']+)["']?`), pair},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)correct\s+(?:spelling|word)?:?\s+([^\s]+)`), targetOnly},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)should\s+be\s+["']?([^"']+)["']?\s+(?:not|instead\s+of)\s+["']?([^"']+)["']?`), swapped},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)(?:fix|correct):\s*["']?([^"']+)["']?\s+(?:to|->|→)\s+["']?([^"']+)["']?`), pair},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)(?:typo|error):\s*["']?([^"']+)["']?\s+(?:should\s+be|->|→)\s+["']?([^"']+)["']?`), pair},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)["']?([^"']+)["']?\s*[?]\s*["']?([^"']+)["']?`), pair},
	{model.IntentReplaceLocal, regexp.MustCompile(`(?i)use\s+["']?([^"']+)["']?\s+(?:instead\s+of|not)\s+["']?([^"']+)["']?`), swapped},

	{model.IntentDelete, regexp.MustCompile(`(?i)(?:delete|remove)\s+["']?([^"']+)["']?`), pair},
	{model.IntentDelete, regexp.MustCompile(`(?i)(?:cut|omit)\s+["']?([^"']+)["']?`), pair},
	{model.IntentDelete, regexp.MustCompile(`(?i)take\s+out\s+["']?([^"']+)["']?`), pair},

	{model.IntentAdd, regexp.MustCompile(`(?i)(?:add|insert)\s+["']?([^"']+)["']?(?:\s+(?:before|after)\s+["']?([^"']+)["']?)?`), pair},
	{model.IntentAdd, regexp.MustCompile(`(?i)include\s+["']?([^"']+)["']?`), pair},
	{model.IntentAdd, regexp.MustCompile(`(?i)put\s+["']?([^"']+)["']?\s+(?:before|after)\s+["']?([^"']+)["']?`), pair},

	{model.IntentFormat, regexp.MustCompile(`(?i)(?:format|style)\s+["']?([^"']+)["']?\s+as\s+([^"']+)`), pair},
	{model.IntentFormat, regexp.MustCompile(`(?i)make\s+["']?([^"']+)["']?\s+(?:bold|italic|underlined?)`), pair},
}

func group(g []string, i int) string {
	if i < len(g) {
		return strings.TrimSpace(g[i])
	}
	return ""
}

func pair(g []string, _, _ string) (string, string) {
	return group(g, 1), group(g, 2)
}

// swapped serves "should be X not Y" and "use X instead of Y", which name
// the target first.
func swapped(g []string, _, _ string) (string, string) {
	return group(g, 2), group(g, 1)
}

func targetOnly(g []string, _, _ string) (string, string) {
	return "", group(g, 1)
}

// namedPair fills a missing source from the anchored text when the comment
// is a character rename.
func namedPair(g []string, comment, associated string) (string, string) {
	from, to := group(g, 1), group(g, 2)
	if !isRename(comment) {
		return from, to
	}
	if from == "" {
		from = associated
	}
	if to == "" {
		to = group(g, 1)
	}
	return from, to
}

// namedTarget handles rename templates that only capture the new name.
func namedTarget(g []string, comment, associated string) (string, string) {
	if mentionsCharacter(comment) {
		return associated, group(g, 1)
	}
	return "", group(g, 1)
}

func isRename(comment string) bool {
	return strings.Contains(strings.ToLower(comment), "change") && mentionsCharacter(comment)
}

func mentionsCharacter(comment string) bool {
	lower := strings.ToLower(comment)
	for _, w := range []string{"name", "character", "boy", "girl"} {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func parseGrammar(comment, associated string) (model.Intent, bool) {
	for _, rule := range grammarRules {
		g := rule.pattern.FindStringSubmatch(comment)
		if g == nil {
			continue
		}
		from, to := rule.extract(g, comment, associated)
		return model.Intent{
			Type:     rule.kind,
			FromText: model.StrPtr(from),
			ToText:   model.StrPtr(to),
			Scope:    scopeFor(rule.kind),
		}, true
	}
	return model.Intent{}, false
}
