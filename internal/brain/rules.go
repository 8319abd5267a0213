package brain

import (
	"context"

	"revcheck.app/checker/internal/intent"
	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/validate"
)

// RuleOracle is the always-available oracle: pattern parsing followed by
// counting validation.
type RuleOracle struct{}

func NewRuleOracle() *RuleOracle {
	return &RuleOracle{}
}

func (o *RuleOracle) Name() string {
	return OracleRules
}

// Analyze never returns an error.
func (o *RuleOracle) Analyze(ctx context.Context, c model.Comment, original, revised string) (model.AnalysisRecord, error) {
	target := c.Target()
	it := intent.ApplyUserScope(intent.Parse(c.Text, target), c.UserScope)

	var v model.ValidationResult
	if c.UserScope == model.UserScopeLocal && target != "" {
		v = validate.Local(ctx, c, original, revised)
	} else {
		v = validate.Comment(ctx, c, it, original, revised)
	}

	return model.AnalysisRecord{
		Comment:              c,
		Intent:               it,
		Validation:           v,
		RequiresManualReview: validate.RequiresReview(v),
	}, nil
}
