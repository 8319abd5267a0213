package brain

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"revcheck.app/checker/common/logger"
	"revcheck.app/checker/internal/model"
)

// Orchestrator analyzes comments one at a time. When a model oracle is
// configured it is asked first; any error from it falls back to the rule
// engine for that comment only.
type Orchestrator struct {
	oracle   Oracle
	fallback Oracle
}

// NewOrchestrator accepts a nil oracle, in which case the rule engine
// answers every comment.
func NewOrchestrator(oracle Oracle) *Orchestrator {
	return &Orchestrator{
		oracle:   oracle,
		fallback: NewRuleOracle(),
	}
}

// OracleName reports which oracle is asked first.
func (o *Orchestrator) OracleName() string {
	if o.oracle != nil {
		return o.oracle.Name()
	}
	return o.fallback.Name()
}

// Analyze returns one record per comment, in comment order. The
// informational placeholder comment is skipped.
func (o *Orchestrator) Analyze(ctx context.Context, comments []model.Comment, original, revised string) []model.AnalysisRecord {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "revcheck.brain.orchestrator"})

	slog.InfoContext(ctx, "analyzing comments",
		"comments", len(comments),
		"oracle", o.OracleName())

	records := make([]model.AnalysisRecord, 0, len(comments))
	for i, c := range comments {
		if c.IsPlaceholder() {
			slog.DebugContext(ctx, "skipping placeholder comment")
			continue
		}
		records = append(records, o.analyzeComment(ctx, i, c, original, revised))
	}

	slog.InfoContext(ctx, "analysis complete", "records", len(records))
	return records
}

func (o *Orchestrator) analyzeComment(ctx context.Context, index int, c model.Comment, original, revised string) (record model.AnalysisRecord) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CommentID:    logger.Ptr(c.ID),
		CommentIndex: logger.Ptr(index),
	})

	sc := logger.StartSpan(ctx, "brain.analyze_comment")
	defer sc.End()
	ctx = sc.Context()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			sc.RecordError(err)
			slog.ErrorContext(ctx, "comment analysis panicked",
				"error", err,
				"stack", string(debug.Stack()))
			record = failedRecord(c, err)
		}
	}()

	if o.oracle != nil {
		rec, err := o.ask(ctx, o.oracle, c, original, revised)
		if err == nil {
			return rec
		}
		sc.RecordError(err)
		slog.WarnContext(ctx, "oracle failed, falling back to rules",
			"oracle", o.oracle.Name(),
			"error", err)
	}

	rec, err := o.ask(ctx, o.fallback, c, original, revised)
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "rule analysis failed", "error", err)
		return failedRecord(c, err)
	}
	return rec
}

// ask converts a panic inside the oracle into an error so the caller can
// fall back like for any other oracle failure.
func (o *Orchestrator) ask(ctx context.Context, oracle Oracle, c model.Comment, original, revised string) (rec model.AnalysisRecord, err error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Oracle: logger.Ptr(oracle.Name())})

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "oracle panicked",
				"error", r,
				"stack", string(debug.Stack()))
			rec, err = model.AnalysisRecord{}, fmt.Errorf("panic: %v", r)
		}
	}()

	rec, err = oracle.Analyze(ctx, c, original, revised)
	if err != nil {
		return model.AnalysisRecord{}, err
	}

	slog.DebugContext(ctx, "comment analyzed",
		"comment", logger.Truncate(c.Text, 50),
		"intent_type", rec.Intent.Type,
		"status", rec.Validation.Status)
	return rec, nil
}

// failedRecord is the record of a comment whose analysis could not finish.
func failedRecord(c model.Comment, err error) model.AnalysisRecord {
	raw := c.Text
	return model.AnalysisRecord{
		Comment: c,
		Intent: model.Intent{
			Type:       model.IntentUnknown,
			Scope:      model.IntentScopeManualReview,
			RawComment: &raw,
		},
		Validation: model.ValidationResult{
			Status:  model.StatusManualReviewRequired,
			Message: fmt.Sprintf("Analysis failed: %v", err),
		},
		RequiresManualReview: true,
	}
}
