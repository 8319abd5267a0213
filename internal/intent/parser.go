// Package intent reads the change a reviewer asked for out of a free-text
// comment.
package intent

import (
	"regexp"
	"strings"

	"revcheck.app/checker/internal/model"
)

var (
	twoTokens  = regexp.MustCompile(`(?i)^["']?(\w+)["']?\s*[?/→-]+\s*["']?(\w+)["']?$`)
	singleWord = regexp.MustCompile(`(?i)^["']?(\w+)["']?$`)
)

// Parse interprets comment against the text it is anchored to. Recognizers
// run in a fixed priority order and the first match wins: style and
// grammar requests, context-aware forms, the explicit grammar, a bare
// "word1 -> word2" pair, a single target word, and finally unknown.
func Parse(comment, associated string) model.Intent {
	associated = strings.TrimSpace(associated)

	it, ok := parseStyle(comment, associated)
	if !ok {
		it, ok = parseContextual(comment, associated)
	}
	if !ok {
		it, ok = parseGrammar(comment, associated)
	}
	if !ok {
		it = parseFallback(strings.TrimSpace(comment))
	}

	it.RawComment = &comment
	return Normalize(it)
}

func parseFallback(comment string) model.Intent {
	if g := twoTokens.FindStringSubmatch(comment); g != nil {
		return model.Intent{
			Type:     model.IntentReplaceLocal,
			FromText: model.StrPtr(g[1]),
			ToText:   model.StrPtr(g[2]),
			Scope:    model.IntentScopeLocal,
		}
	}
	if g := singleWord.FindStringSubmatch(comment); g != nil {
		return model.Intent{
			Type:   model.IntentReplaceLocal,
			ToText: model.StrPtr(g[1]),
			Scope:  model.IntentScopeLocal,
		}
	}
	return model.Intent{
		Type:  model.IntentUnknown,
		Scope: model.IntentScopeManualReview,
	}
}

// Normalize fills defaults so every intent carries a type and a scope and
// uses nil rather than "" for an unknown side.
func Normalize(it model.Intent) model.Intent {
	if it.Type == "" {
		it.Type = model.IntentUnknown
	}
	if it.Scope == "" {
		if it.Type == model.IntentUnknown {
			it.Scope = model.IntentScopeManualReview
		} else {
			it.Scope = scopeFor(it.Type)
		}
	}
	if it.FromText != nil && *it.FromText == "" {
		it.FromText = nil
	}
	if it.ToText != nil && *it.ToText == "" {
		it.ToText = nil
	}
	return it
}

// ApplyUserScope lets an explicit reviewer decision override the parsed
// scope. Replacement types follow the new scope; other types keep theirs.
func ApplyUserScope(it model.Intent, scope model.UserScope) model.Intent {
	switch scope {
	case model.UserScopeGlobal:
		it.Scope = model.IntentScopeGlobal
		if it.Type.IsReplace() {
			it.Type = model.IntentReplaceGlobal
		}
	case model.UserScopeLocal:
		it.Scope = model.IntentScopeLocal
		if it.Type == model.IntentReplaceGlobal {
			it.Type = model.IntentReplaceLocal
		}
	}
	return it
}
