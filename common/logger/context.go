package logger

import (
	"context"
	"unicode/utf8"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so business context (session_id, comment_id, etc.)
// is included in every log statement without being passed around explicitly.
type LogFields struct {
	SessionID    *string // Review session ID
	CommentID    *string // Comment ID inside the original document
	CommentIndex *int    // Position of the comment in the session's comment list
	Oracle       *string // Oracle that produced the verdict ("rules", "openai", "anthropic")
	Component    string  // Component name (OTel semantic convention style, e.g., "revcheck.brain.orchestrator")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.SessionID != nil {
		result.SessionID = new.SessionID
	}
	if new.CommentID != nil {
		result.CommentID = new.CommentID
	}
	if new.CommentIndex != nil {
		result.CommentIndex = new.CommentIndex
	}
	if new.Oracle != nil {
		result.Oracle = new.Oracle
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{SessionID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate shortens s to at most maxLen bytes without splitting a character,
// appending "..." if truncated. Useful for logging comment and document text.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
