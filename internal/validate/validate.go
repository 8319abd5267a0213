// Package validate decides whether a revised document carries out the
// change a comment asked for.
package validate

import (
	"context"
	"fmt"
	"strings"

	"revcheck.app/checker/common"
	"revcheck.app/checker/internal/intent"
	"revcheck.app/checker/internal/locate"
	"revcheck.app/checker/internal/model"
)

// Validate classifies the revision of original into revised against it.
// Counting is case-insensitive and over whole texts.
func Validate(it model.Intent, original, revised string) model.ValidationResult {
	switch {
	case it.Type == model.IntentUnknown:
		return verdict(model.StatusManualReviewRequired, "Comment requires manual interpretation")
	case it.Type.IsReplace():
		return replacement(it, original, revised)
	case it.Type == model.IntentStyleGrammar:
		return Style(it, original, revised)
	}
	return verdict(model.StatusManualReviewRequired,
		fmt.Sprintf("Change type %q requires manual review", it.Type))
}

// Comment validates it for c. Contraction requests on an anchored comment
// compare the anchored text with its located counterpart in revised;
// everything else compares the full texts.
func Comment(ctx context.Context, c model.Comment, it model.Intent, original, revised string) model.ValidationResult {
	target := c.Target()
	if it.Type == model.IntentStyleGrammar && target != "" && intent.IsContractionStyle(it.StyleDescription) {
		loc := locate.Locate(ctx, c, original, revised)
		return Style(it, target, loc.RevisedContext)
	}
	return Validate(it, original, revised)
}

func replacement(it model.Intent, original, revised string) model.ValidationResult {
	from, to := it.From(), it.To()
	if from == "" && to != "" {
		return SingleWord(to, original, revised)
	}
	if from == "" || to == "" {
		return verdict(model.StatusInvalidComment, "Could not parse replacement text from comment")
	}

	d := &model.ValidationDetails{
		OriginalCount:  common.CountFold(original, from),
		RemainingCount: common.CountFold(revised, from),
		NewCount:       common.CountFold(revised, to),
	}

	if it.Scope == model.IntentScopeGlobal {
		if d.RemainingCount == 0 && d.NewCount >= d.OriginalCount {
			return model.ValidationResult{
				Status:  model.StatusCorrectlyApplied,
				Message: fmt.Sprintf("All %d instances of %q were changed to %q", d.OriginalCount, from, to),
				Details: d,
			}
		}
		return model.ValidationResult{
			Status:  model.StatusPartiallyApplied,
			Message: fmt.Sprintf("%d of %d instances were changed", d.OriginalCount-d.RemainingCount, d.OriginalCount),
			Details: d,
		}
	}

	if d.RemainingCount < d.OriginalCount {
		return model.ValidationResult{
			Status:  model.StatusCorrectlyApplied,
			Message: fmt.Sprintf("At least one instance of %q was changed to %q", from, to),
			Details: d,
		}
	}
	return model.ValidationResult{
		Status:  model.StatusNotApplied,
		Message: fmt.Sprintf("No instances of %q were changed", from),
		Details: d,
	}
}

// SingleWord validates a replacement whose source word is unknown. A
// target that appears more often is taken as substituted in; otherwise the
// closest word that disappeared from the text is assumed to be the source.
func SingleWord(target, original, revised string) model.ValidationResult {
	originalTarget := common.CountFold(original, target)
	revisedTarget := common.CountFold(revised, target)

	if revisedTarget > originalTarget {
		added := revisedTarget - originalTarget
		return model.ValidationResult{
			Status:  model.StatusCorrectlyApplied,
			Message: fmt.Sprintf("%q was added %d time(s) - likely replacing another word", target, added),
			Details: &model.ValidationDetails{
				OriginalCount: originalTarget,
				NewCount:      revisedTarget,
				AddedCount:    added,
			},
		}
	}

	if source, ok := ClosestMatch(strings.ToLower(target), RemovedWords(original, revised)); ok {
		before := common.CountFold(original, source)
		after := common.CountFold(revised, source)
		if after < before && revisedTarget >= originalTarget {
			return model.ValidationResult{
				Status:  model.StatusCorrectlyApplied,
				Message: fmt.Sprintf("Likely replaced %q with %q", source, target),
				Details: &model.ValidationDetails{
					InferredFrom:   source,
					OriginalCount:  before,
					RemainingCount: after,
					NewCount:       revisedTarget,
				},
			}
		}
	}

	if revisedTarget == originalTarget {
		return verdict(model.StatusUnclear,
			fmt.Sprintf("%q appears same number of times in both documents - unclear if change was applied", target))
	}
	return verdict(model.StatusManualReviewRequired,
		fmt.Sprintf("Cannot determine if %q replacement was correctly applied", target))
}

// Style validates a style request. Only contraction requests are checked
// mechanically.
func Style(it model.Intent, original, revised string) model.ValidationResult {
	description := strings.ToLower(it.StyleDescription)
	if !intent.IsContractionStyle(description) {
		return verdict(model.StatusManualReviewRequired,
			fmt.Sprintf("Style change %q requires manual review", description))
	}

	before := intent.FindContractions(original)
	after := intent.FindContractions(revised)
	d := &model.ValidationDetails{
		OriginalContractions: len(before),
		RevisedContractions:  len(after),
	}

	switch {
	case len(before) == 0:
		return model.ValidationResult{
			Status:  model.StatusCorrectlyApplied,
			Message: "No contractions found in original text - style rule already satisfied",
			Details: d,
		}
	case len(after) < len(before):
		d.Contractions = before
		return model.ValidationResult{
			Status:  model.StatusCorrectlyApplied,
			Message: fmt.Sprintf("Contractions reduced from %d to %d", len(before), len(after)),
			Details: d,
		}
	case len(after) == len(before):
		d.Contractions = after
		return model.ValidationResult{
			Status:  model.StatusNotApplied,
			Message: "Contractions still present: " + strings.Join(before, ", "),
			Details: d,
		}
	}
	return model.ValidationResult{
		Status:  model.StatusNotApplied,
		Message: "More contractions found in revised text than original",
		Details: d,
	}
}

// RequiresReview reports whether a rule-engine verdict needs a human.
// Local context verdicts are settled only when they are a clear yes or no.
func RequiresReview(r model.ValidationResult) bool {
	if r.ChangeType == model.ChangeTypeLocalContext {
		return r.Status != model.StatusCorrectlyApplied && r.Status != model.StatusNotApplied
	}
	return r.Status.NeedsReview()
}

func verdict(status model.ValidationStatus, message string) model.ValidationResult {
	return model.ValidationResult{Status: status, Message: message}
}
