package model

type IntentType string

const (
	IntentReplaceLocal  IntentType = "replace_local"
	IntentReplaceGlobal IntentType = "replace_global"
	IntentDelete        IntentType = "delete"
	IntentAdd           IntentType = "add"
	IntentFormat        IntentType = "format"
	IntentStyleGrammar  IntentType = "style_grammar"
	IntentUnknown       IntentType = "unknown"
)

// IsReplace reports whether t is one of the two replacement variants.
func (t IntentType) IsReplace() bool {
	return t == IntentReplaceLocal || t == IntentReplaceGlobal
}

type IntentScope string

const (
	IntentScopeLocal        IntentScope = "local"
	IntentScopeGlobal       IntentScope = "global"
	IntentScopeManualReview IntentScope = "manual_review"
)

// NoContractionsFound is the ToText sentinel for a contraction request whose
// target span already has no contractions.
const NoContractionsFound = "no_contractions_found"

// Intent is the structured reading of a comment. FromText and ToText are nil
// when the comment does not name them; they are never omitted from JSON.
type Intent struct {
	Type             IntentType  `json:"type"`
	FromText         *string     `json:"from_text"`
	ToText           *string     `json:"to_text"`
	Scope            IntentScope `json:"scope"`
	RawComment       *string     `json:"raw_comment"`
	StyleDescription string      `json:"style_description"`
	AIInterpretation string      `json:"ai_interpretation"`
}

// From returns FromText or "" when unset.
func (i Intent) From() string {
	if i.FromText == nil {
		return ""
	}
	return *i.FromText
}

// To returns ToText or "" when unset.
func (i Intent) To() string {
	if i.ToText == nil {
		return ""
	}
	return *i.ToText
}

// StrPtr returns a pointer to s, or nil when s is empty.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
