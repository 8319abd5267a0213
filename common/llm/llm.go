// Package llm wraps the OpenAI and Anthropic chat APIs behind a single
// JSON-answer client.
package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var (
	ErrNoJSONObject  = errors.New("no JSON object in model output")
	ErrEmptyResponse = errors.New("model returned no content")
)

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Optional: provider default when empty
}

// ExtractJSON returns the first balanced {...} block of s. Braces inside
// JSON strings do not count.
func ExtractJSON(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && ch == '\\':
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONObject
}

// DecodeJSON unmarshals the first JSON object found in content into result.
func DecodeJSON(content string, result any) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyResponse
	}
	raw, err := ExtractJSON(content)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
