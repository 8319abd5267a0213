package validate

import (
	"context"
	"fmt"
	"strings"

	"revcheck.app/checker/internal/locate"
	"revcheck.app/checker/internal/model"
)

var (
	spellingFixes = map[string]string{
		"recieve":    "receive",
		"teh":        "the",
		"hte":        "the",
		"seperate":   "separate",
		"occured":    "occurred",
		"definately": "definitely",
		"thier":      "their",
		"reel":       "real",
		"absolutly":  "absolutely",
	}

	replacementVerbs = []string{"change", "replace", "use", "different"}

	// Checked in order; the first keyword found in the comment names the
	// expected replacement.
	expectedWords = []struct {
		keywords []string
		word     string
	}{
		{[]string{"sunny", "sun"}, "sunny"},
		{[]string{"jimmy"}, "Jimmy"},
		{[]string{"smiling"}, "smiling"},
		{[]string{"excellent"}, "excellent"},
	}
)

// Local validates a comment the reviewer marked as local by comparing the
// located context windows instead of whole-document counts.
func Local(ctx context.Context, c model.Comment, original, revised string) model.ValidationResult {
	target := c.Target()
	loc := locate.Locate(ctx, c, original, revised)
	originalContext := strings.ToLower(loc.OriginalContext)
	revisedContext := strings.ToLower(loc.RevisedContext)
	lowerTarget := strings.ToLower(target)

	if target == "" || !strings.Contains(originalContext, lowerTarget) {
		return model.ValidationResult{
			Status:  model.StatusManualReviewRequired,
			Message: "Could not locate associated text in context for validation",
		}
	}

	result := model.ValidationResult{
		ChangeType: model.ChangeTypeLocalContext,
		Evidence:   loc.RevisedContext,
	}

	if expected := ExpectedChange(c.Text, target); expected != "" {
		result.Details = &model.ValidationDetails{ExpectedChange: expected}
		if strings.Contains(revisedContext, strings.ToLower(expected)) {
			result.Status = model.StatusCorrectlyApplied
			result.Message = fmt.Sprintf("Successfully changed %q to %q in the local context", target, expected)
		} else {
			result.Status = model.StatusNotApplied
			result.Message = fmt.Sprintf("Expected change from %q to %q was not found in revised context", target, expected)
		}
		return result
	}

	if !strings.Contains(revisedContext, lowerTarget) {
		result.Status = model.StatusCorrectlyApplied
		result.Message = fmt.Sprintf("Associated text %q was modified/removed from the context as requested", target)
	} else {
		result.Status = model.StatusNotApplied
		result.Message = fmt.Sprintf("Associated text %q still appears unchanged in the revised context", target)
	}
	return result
}

// ExpectedChange looks up the replacement a comment implies for target from
// a small closed vocabulary. It returns "" when nothing is implied.
func ExpectedChange(comment, target string) string {
	lower := strings.ToLower(comment)
	if strings.Contains(lower, "spell") {
		return spellingFixes[strings.ToLower(target)]
	}

	if !containsAny(lower, replacementVerbs) {
		return ""
	}
	for _, e := range expectedWords {
		if containsAny(lower, e.keywords) {
			return e.word
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
