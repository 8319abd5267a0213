package brain_test

import (
	"context"
	"encoding/json"

	"revcheck.app/checker/common/llm"
	"revcheck.app/checker/internal/model"
)

// mockLLMClient implements llm.Client for testing.
type mockLLMClient struct {
	chatFn    func(ctx context.Context, req llm.Request, result any) (*llm.Response, error)
	provider  string
	callCount int
	lastReq   llm.Request
}

func (m *mockLLMClient) Chat(ctx context.Context, req llm.Request, result any) (*llm.Response, error) {
	m.callCount++
	m.lastReq = req
	if m.chatFn != nil {
		return m.chatFn(ctx, req, result)
	}
	return &llm.Response{}, nil
}

func (m *mockLLMClient) Model() string {
	return "mock-model"
}

func (m *mockLLMClient) Provider() string {
	if m.provider == "" {
		return llm.ProviderOpenAI
	}
	return m.provider
}

// respondWith returns a chatFn that decodes answer into the result.
func respondWith(answer string) func(context.Context, llm.Request, any) (*llm.Response, error) {
	return func(_ context.Context, _ llm.Request, result any) (*llm.Response, error) {
		if err := llm.DecodeJSON(answer, result); err != nil {
			return nil, err
		}
		return &llm.Response{PromptTokens: 100, CompletionTokens: 50}, nil
	}
}

// mockOracle implements brain.Oracle for testing.
type mockOracle struct {
	name      string
	analyzeFn func(ctx context.Context, c model.Comment, original, revised string) (model.AnalysisRecord, error)
	callCount int
}

func (m *mockOracle) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockOracle) Analyze(ctx context.Context, c model.Comment, original, revised string) (model.AnalysisRecord, error) {
	m.callCount++
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, c, original, revised)
	}
	return model.AnalysisRecord{
		Comment:    c,
		Validation: model.ValidationResult{Status: model.StatusCorrectlyApplied, Message: "mock"},
		AIPowered:  true,
	}, nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
