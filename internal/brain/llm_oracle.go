package brain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"revcheck.app/checker/common/llm"
	"revcheck.app/checker/internal/intent"
	"revcheck.app/checker/internal/model"
)

const (
	defaultConfidence = 0.8
	defaultEvidence   = "AI analysis completed"
)

var ErrInvalidVerdict = errors.New("invalid verdict")

// verdict is the answer the model is asked to produce.
type verdict struct {
	Interpretation       string   `json:"interpretation" jsonschema:"description=What change the comment requests"`
	CommentType          string   `json:"comment_type" jsonschema:"enum=direct_replacement,enum=style_grammar,enum=content_change,enum=correction,enum=deletion"`
	ExpectedFrom         string   `json:"expected_from" jsonschema:"description=Text that should be changed"`
	ExpectedTo           string   `json:"expected_to" jsonschema:"description=What the text should become"`
	ScopeApplied         string   `json:"scope_applied" jsonschema:"enum=global,enum=local"`
	Status               string   `json:"status" jsonschema:"enum=correctly_applied,enum=partially_applied,enum=not_applied,enum=unclear"`
	Evidence             string   `json:"evidence" jsonschema:"description=What shows the change was or was not applied"`
	Confidence           *float64 `json:"confidence" jsonschema:"minimum=0,maximum=1"`
	RequiresManualReview bool     `json:"requires_manual_review"`
}

// oracleAnswer also accepts from_text/to_text, which models sometimes
// return instead of expected_from/expected_to.
type oracleAnswer struct {
	verdict
	FromText *string `json:"from_text"`
	ToText   *string `json:"to_text"`
}

var verdictSchema = llm.GenerateSchema[verdict]()

// LLMOracle asks a language model for the intent and the verdict.
type LLMOracle struct {
	client    llm.Client
	timeout   time.Duration
	maxTokens int
}

func NewLLMOracle(client llm.Client, timeout time.Duration, maxTokens int) *LLMOracle {
	return &LLMOracle{
		client:    client,
		timeout:   timeout,
		maxTokens: maxTokens,
	}
}

func (o *LLMOracle) Name() string {
	return o.client.Provider()
}

func (o *LLMOracle) Analyze(ctx context.Context, c model.Comment, original, revised string) (model.AnalysisRecord, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	req := llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   BuildPrompt(c, original, revised),
		SchemaName:   "revision_verdict",
		Schema:       verdictSchema,
		MaxTokens:    o.maxTokens,
		Temperature:  llm.Temp(0),
	}

	var answer oracleAnswer
	if _, err := o.client.Chat(ctx, req, &answer); err != nil {
		return model.AnalysisRecord{}, fmt.Errorf("%s oracle: %w", o.Name(), err)
	}
	return answer.record(c)
}

func (a oracleAnswer) record(c model.Comment) (model.AnalysisRecord, error) {
	status := model.ValidationStatus(a.Status)
	if status == "" {
		status = model.StatusUnclear
	}
	if !status.Valid() {
		return model.AnalysisRecord{}, fmt.Errorf("%w: status %q", ErrInvalidVerdict, a.Status)
	}

	scope := scopeOf(a.ScopeApplied, c.UserScope)
	raw := c.Text
	it := intent.Normalize(model.Intent{
		Type:             intentType(a.CommentType, scope),
		FromText:         model.StrPtr(firstNonEmpty(a.ExpectedFrom, deref(a.FromText), c.Target())),
		ToText:           model.StrPtr(firstNonEmpty(a.ExpectedTo, deref(a.ToText))),
		Scope:            scope,
		RawComment:       &raw,
		AIInterpretation: a.Interpretation,
	})

	confidence := defaultConfidence
	if a.Confidence != nil {
		confidence = *a.Confidence
	}

	return model.AnalysisRecord{
		Comment: c,
		Intent:  it,
		Validation: model.ValidationResult{
			Status:     status,
			Message:    firstNonEmpty(a.Evidence, defaultEvidence),
			Confidence: &confidence,
			Evidence:   a.Evidence,
		},
		RequiresManualReview: a.RequiresManualReview,
		AIPowered:            true,
	}, nil
}

func scopeOf(applied string, user model.UserScope) model.IntentScope {
	switch model.IntentScope(applied) {
	case model.IntentScopeGlobal, model.IntentScopeLocal:
		return model.IntentScope(applied)
	}
	switch user {
	case model.UserScopeGlobal:
		return model.IntentScopeGlobal
	case model.UserScopeLocal:
		return model.IntentScopeLocal
	}
	return model.IntentScopeManualReview
}

func intentType(commentType string, scope model.IntentScope) model.IntentType {
	switch commentType {
	case "direct_replacement", "correction":
		if scope == model.IntentScopeGlobal {
			return model.IntentReplaceGlobal
		}
		return model.IntentReplaceLocal
	case "style_grammar":
		return model.IntentStyleGrammar
	case "deletion":
		return model.IntentDelete
	}
	return model.IntentUnknown
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
