package docx

import (
	"fmt"
	"strings"
)

// CommentEntry is one w:comment element of the comments part.
type CommentEntry struct {
	ID     string
	Author string
	Date   string
	Text   string
}

// Comments parses the comments part. It returns nil without error when the
// container has no comments part.
func (d *Document) Comments() ([]CommentEntry, error) {
	if !d.HasCommentsPart() {
		return nil, nil
	}

	root, err := ParseTree(d.CommentsXML)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", CommentsPart, err)
	}

	var entries []CommentEntry
	for _, n := range descendants(root, "comment") {
		author := n.AttrValue("author")
		if author == "" {
			author = "Unknown"
		}
		var text strings.Builder
		for _, t := range descendants(n, "t") {
			text.WriteString(t.Text)
		}
		entries = append(entries, CommentEntry{
			ID:     n.AttrValue("id"),
			Author: author,
			Date:   n.AttrValue("date"),
			Text:   text.String(),
		})
	}
	return entries, nil
}

// descendants collects, in document order, every node below root with the
// given local name.
func descendants(root *Node, local string) []*Node {
	var out []*Node
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n != root && n.Local == local {
			out = append(out, n)
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return out
}
