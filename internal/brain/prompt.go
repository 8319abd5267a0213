package brain

import (
	"fmt"

	"revcheck.app/checker/internal/model"
)

const systemPrompt = `You are an expert document reviewer. You check whether review comments left on a Word document were carried out in its revised version. Answer with a single JSON object and nothing else.`

var scopeDescriptions = map[model.UserScope]string{
	model.UserScopeGlobal: "a GLOBAL change (should affect all instances throughout the document)",
	model.UserScopeLocal:  "a LOCAL change (should affect only the specific instance being commented on)",
	model.UserScopeAuto:   "automatically determined scope based on the comment intent",
}

const anchoredPrompt = `COMMENT: "%[1]s"
COMMENTED ON: "%[2]s"
SCOPE: This is %[3]s

TASK: Evaluate whether the comment "%[1]s" applied to the text "%[2]s" was correctly implemented in the revised document.

ORIGINAL DOCUMENT:
%[4]s

REVISED DOCUMENT:
%[5]s

ANALYSIS APPROACH:
1. Understand what specific change "%[1]s" requests when applied to "%[2]s".
2. Identify the comment type:
   - direct_replacement: "Change X to Y", "should be Z"
   - style_grammar: "Don't use contractions", "Make more formal", "Fix grammar"
   - content_change: "Make this more exciting", "Add detail"
   - correction: "spelling mistake", "wrong word"
   - deletion: "remove this", "delete"
3. Determine the expected change. For style comments name the specific issues (e.g. "can't, it's") and their fixes (e.g. "cannot, it is"). Respect the requested scope.
4. Search the revised document for evidence. Count instances before and after for global changes.

EXAMPLES:
- "Change her name to Claire" on "Diane" = change "Diane" to "Claire"
- "Don't use contractions" on "can't" = change "can't" to "cannot"
- "spelling mistake" on "recieve" = change "recieve" to "receive"
- "should be sunny" on "rainy" = change "rainy" to "sunny"
- "delete this" on "very very" = remove the duplicate "very"

RESPONSE FORMAT (JSON):
{
    "interpretation": "What change does the comment request?",
    "comment_type": "direct_replacement|style_grammar|content_change|correction|deletion",
    "expected_from": "What text should be changed",
    "expected_to": "What it should become",
    "scope_applied": "global|local",
    "status": "correctly_applied|partially_applied|not_applied|unclear",
    "evidence": "What evidence shows the change was or wasn't applied?",
    "confidence": 0.95,
    "requires_manual_review": false
}`

const unanchoredPrompt = `COMMENT: "%[1]s"
SCOPE: This is %[2]s

ORIGINAL DOCUMENT:
%[3]s

REVISED DOCUMENT:
%[4]s

TASK: Determine what change the comment "%[1]s" requests and verify whether it was applied correctly.

The text this comment refers to was not identified. Compare the two documents, find the change that best matches the comment, and check it against the requested scope.

RESPONSE FORMAT (JSON):
{
    "interpretation": "What change does the comment request?",
    "comment_type": "direct_replacement|style_grammar|content_change|correction|deletion",
    "expected_from": "What text was changed (if identifiable)",
    "expected_to": "What it was changed to (empty if deleted)",
    "scope_applied": "global|local",
    "status": "correctly_applied|partially_applied|not_applied|unclear",
    "evidence": "What evidence shows the change was or wasn't applied?",
    "confidence": 0.70,
    "requires_manual_review": true
}`

// BuildPrompt renders the user prompt for one comment. Comments without a
// resolved anchor get the variant that asks the model to find the change
// itself.
func BuildPrompt(c model.Comment, original, revised string) string {
	scope, ok := scopeDescriptions[c.UserScope]
	if !ok {
		scope = scopeDescriptions[model.UserScopeAuto]
	}

	text, _ := SanitizeForPrompt(c.Text)
	original, _ = SanitizeForPrompt(original)
	revised, _ = SanitizeForPrompt(revised)

	if target := c.Target(); target != "" {
		target, _ = SanitizeForPrompt(target)
		return fmt.Sprintf(anchoredPrompt, text, target, scope, original, revised)
	}
	return fmt.Sprintf(unanchoredPrompt, text, scope, original, revised)
}
