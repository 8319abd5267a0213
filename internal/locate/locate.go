// Package locate finds the neighbourhood of a comment in the original text
// and the best-effort matching neighbourhood in the revised text.
package locate

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"revcheck.app/checker/common"
	"revcheck.app/checker/common/logger"
	"revcheck.app/checker/internal/model"
)

const (
	window        = 100
	anchorSpan    = 50
	sequenceLead  = 50
	wordLead      = 75
	minAnchorSize = 10
)

type Strategy string

const (
	StrategyAnchorBefore    Strategy = "anchor_before"
	StrategyWordSequence    Strategy = "word_sequence"
	StrategySignificantWord Strategy = "significant_word"
	StrategyProportional    Strategy = "proportional"
)

var (
	anchorLengths = []int{30, 20, 15, 10}
	sequenceSizes = []int{3, 2}
	stopWords     = map[string]bool{
		"the": true, "and": true, "was": true, "were": true,
		"that": true, "this": true, "with": true, "from": true,
	}
)

// Context is the located pair of windows. Position is a byte offset into
// the original full text.
type Context struct {
	OriginalContext string   `json:"original_context"`
	RevisedContext  string   `json:"revised_context"`
	Position        int      `json:"position"`
	Strategy        Strategy `json:"strategy"`
}

// Locate never fails: when no alignment strategy finds common ground it
// projects the position proportionally onto the revised text.
func Locate(ctx context.Context, c model.Comment, original, revised string) Context {
	pos := c.Position
	if assoc := strings.TrimSpace(c.AssociatedText); assoc != "" {
		if i := strings.Index(original, assoc); i >= 0 {
			pos = i
		}
	}
	pos = common.Clamp(pos, len(original))

	originalContext := TrimToSentences(strings.TrimSpace(common.Slice(original, pos-window, pos+window)))
	before := strings.TrimSpace(common.Slice(original, pos-anchorSpan, pos))

	revisedContext, strategy := correspondingContext(before, originalContext, revised)

	slog.DebugContext(ctx, "context located",
		"position", pos,
		"strategy", strategy,
		"original_context", logger.Truncate(originalContext, 50),
		"revised_context", logger.Truncate(revisedContext, 50))

	return Context{
		OriginalContext: originalContext,
		RevisedContext:  revisedContext,
		Position:        pos,
		Strategy:        strategy,
	}
}

func correspondingContext(before, originalContext, revised string) (string, Strategy) {
	if len(before) > minAnchorSize {
		for _, n := range anchorLengths {
			if len(before) < n {
				continue
			}
			search := strings.TrimSpace(common.Slice(before, len(before)-n, len(before)))
			i := strings.Index(revised, search)
			if search == "" || i < 0 {
				continue
			}
			start := i + len(search)
			if found := strings.TrimSpace(common.Slice(revised, start, start+window)); found != "" {
				return TrimToSentences(found), StrategyAnchorBefore
			}
		}
	}

	words := strings.Fields(originalContext)
	if len(words) >= 3 {
		for i := 0; i < len(words)-1; i++ {
			for _, n := range sequenceSizes {
				if i+n > len(words) {
					continue
				}
				match := strings.Index(revised, strings.Join(words[i:i+n], " "))
				if match < 0 {
					continue
				}
				if found := strings.TrimSpace(common.Slice(revised, match-sequenceLead, match+window)); found != "" {
					return TrimToSentences(found), StrategyWordSequence
				}
			}
		}
	}

	for _, w := range words {
		if utf8.RuneCountInString(w) <= 3 || stopWords[strings.ToLower(w)] {
			continue
		}
		match := strings.Index(revised, w)
		if match < 0 {
			continue
		}
		if found := strings.TrimSpace(common.Slice(revised, match-wordLead, match+window)); found != "" {
			return TrimToSentences(found), StrategySignificantWord
		}
	}

	total := 3 * (len(before) + len(originalContext))
	relative := float64(len(before)) / float64(max(total, 1))
	approx := int(float64(len(revised)) * relative)
	return TrimToSentences(common.Slice(revised, approx-window/2, approx+window/2)), StrategyProportional
}

// TrimToSentences cuts text at its last sentence boundary when that keeps
// more than half of it, otherwise at a word boundary near the end.
func TrimToSentences(text string) string {
	for _, ending := range []string{". ", "! ", "? "} {
		if i := strings.LastIndex(text, ending); 2*i > len(text) {
			return strings.TrimSpace(text[:i+1])
		}
	}

	if len(text) > 50 {
		if i := strings.LastIndexByte(text[:len(text)-10], ' '); i > 0 {
			return strings.TrimSpace(text[:i])
		}
	}
	return text
}
