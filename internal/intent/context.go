package intent

import (
	"regexp"
	"strings"

	"revcheck.app/checker/internal/model"
)

// contextRule reads a target from the comment and takes the source from the
// text the comment is anchored to.
type contextRule struct {
	pattern *regexp.Regexp
	kind    model.IntentType
}

var (
	explicitScopePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)change\s+all\s+`),
		regexp.MustCompile(`(?i)replace\s+all\s+`),
		regexp.MustCompile(`(?i)find\s+and\s+replace`),
		regexp.MustCompile(`(?i)everywhere`),
		regexp.MustCompile(`(?i)globally`),
		regexp.MustCompile(`(?i)throughout`),
	}

	contextRules = []contextRule{
		// Names are renamed everywhere.
		{regexp.MustCompile(`(?i)(?:his|her|their|the)\s+name\s+should\s+be\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)(?:his|her|their|the)\s+name\s+is\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)name\s+should\s+be\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)should\s+be\s+named\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)call\s+(?:him|her|them|it)\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)(?:the\s+)?(?:character|boy|girl|person)\s+should\s+be\s+called\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)change\s+(?:his|her|their|the)\s+name\s+to\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},
		{regexp.MustCompile(`(?i)rename\s+(?:him|her|them|it)\s+to\s+["']?([^"']+)["']?`), model.IntentReplaceGlobal},

		{regexp.MustCompile(`(?i)should\s+be\s+["']?([^"']+)["']?$`), model.IntentReplaceLocal},

		{regexp.MustCompile(`(?i)make\s+(?:it|this)\s+["']?([^"']+)["']?`), model.IntentReplaceLocal},
		{regexp.MustCompile(`(?i)change\s+(?:it|this)\s+to\s+["']?([^"']+)["']?`), model.IntentReplaceLocal},
		{regexp.MustCompile(`(?i)use\s+["']?([^"']+)["']?\s+instead`), model.IntentReplaceLocal},
	}

	barePhrase = regexp.MustCompile(`^["']?([^"']+)["']?$`)
)

const maxBarePhraseWords = 3

func parseContextual(comment, associated string) (model.Intent, bool) {
	if associated == "" || strings.Contains(strings.ToLower(comment), strings.ToLower(associated)) {
		return model.Intent{}, false
	}
	for _, re := range explicitScopePatterns {
		if re.MatchString(comment) {
			return model.Intent{}, false
		}
	}

	for _, rule := range contextRules {
		if g := rule.pattern.FindStringSubmatch(comment); g != nil {
			return contextual(rule.kind, associated, g[1]), true
		}
	}

	// A lone word carries no source and is left to the single-word fallback.
	trimmed := strings.TrimSpace(comment)
	if n := len(strings.Fields(trimmed)); n >= 2 && n <= maxBarePhraseWords {
		if g := barePhrase.FindStringSubmatch(trimmed); g != nil {
			return contextual(model.IntentReplaceLocal, associated, g[1]), true
		}
	}
	return model.Intent{}, false
}

func contextual(kind model.IntentType, from, to string) model.Intent {
	return model.Intent{
		Type:     kind,
		FromText: model.StrPtr(from),
		ToText:   model.StrPtr(strings.TrimSpace(to)),
		Scope:    scopeFor(kind),
	}
}

func scopeFor(kind model.IntentType) model.IntentScope {
	if kind == model.IntentReplaceGlobal {
		return model.IntentScopeGlobal
	}
	return model.IntentScopeLocal
}
