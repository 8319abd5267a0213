// Package brain turns comments into analysis records. An Oracle interprets
// one comment and judges the revision; the Orchestrator runs the
// configured oracle per comment and falls back to the rule engine.
package brain

import (
	"context"
	"fmt"

	"revcheck.app/checker/common/llm"
	"revcheck.app/checker/core/config"
	"revcheck.app/checker/internal/model"
)

// OracleRules names the rule engine.
const OracleRules = "rules"

// Oracle interprets a comment and decides whether revised carries it out.
type Oracle interface {
	Name() string
	Analyze(ctx context.Context, c model.Comment, original, revised string) (model.AnalysisRecord, error)
}

// OracleFromConfig builds the model-backed oracle, or returns nil when no
// provider is configured.
func OracleFromConfig(cfg config.LLMConfig) (Oracle, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client, err := llm.New(llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", cfg.Provider, err)
	}
	return NewLLMOracle(client, cfg.Timeout, cfg.MaxTokens), nil
}
