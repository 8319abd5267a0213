// Package anchor ties comments to the document text they were placed on,
// either through comment range markers in the markup or, for plain text,
// through inline comment markers.
package anchor

import (
	"sort"
	"strings"

	"revcheck.app/checker/internal/docx"
)

// Index is the output of a range walk. Token positions are the only
// coordinate system shared by Starts, Ends and Tokens.
type Index struct {
	Starts map[string]int
	Ends   map[string]int
	Tokens []string
}

func NewIndex() *Index {
	return &Index{
		Starts: make(map[string]int),
		Ends:   make(map[string]int),
	}
}

// Walk visits root pre-order, depth first, and records every text token and
// every comment range marker into ix.
func Walk(root *docx.Node, ix *Index) {
	if root == nil {
		return
	}

	stack := []*docx.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.Local {
		case "commentRangeStart":
			if id := n.AttrValue("id"); id != "" {
				ix.Starts[id] = len(ix.Tokens)
			}
		case "commentRangeEnd":
			if id := n.AttrValue("id"); id != "" {
				ix.Ends[id] = len(ix.Tokens)
			}
		case "t":
			if n.Text != "" {
				ix.Tokens = append(ix.Tokens, n.Text)
			}
		}

		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// Build walks root into a fresh index.
func Build(root *docx.Node) *Index {
	ix := NewIndex()
	Walk(root, ix)
	return ix
}

// Orphans returns, sorted, the ids of ranges that were opened but never closed.
func (ix *Index) Orphans() []string {
	var ids []string
	for id := range ix.Starts {
		if _, ok := ix.Ends[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Text returns the associated text of a comment, or "" when its range is
// missing or unresolved.
func (ix *Index) Text(commentID string) string {
	return Associate(commentID, ix.Starts, ix.Ends, ix.Tokens)
}

// Associate joins the tokens in [start, end) of the comment's range and
// trims the result.
func Associate(commentID string, starts, ends map[string]int, tokens []string) string {
	start, ok := starts[commentID]
	if !ok {
		return ""
	}
	end, ok := ends[commentID]
	if !ok {
		return ""
	}
	if start < 0 || start >= end || start >= len(tokens) {
		return ""
	}
	end = min(end, len(tokens))
	return strings.TrimSpace(strings.Join(tokens[start:end], ""))
}
