// Package extract builds a DocumentSnapshot from a .docx container.
//
// Comments are recovered through a cascade: the comments part with ranges
// resolved against the body markup, then inline text markers, then a
// single informational placeholder. Extraction never fails because of
// comments; the worst case is a snapshot whose only comment is the
// placeholder.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"revcheck.app/checker/common/logger"
	"revcheck.app/checker/internal/anchor"
	"revcheck.app/checker/internal/docx"
	"revcheck.app/checker/internal/model"
)

const (
	unknownAuthor     = "Unknown"
	placeholderAuthor = "System"
	placeholderText   = "No Word comments detected. For testing, try adding comments like [COMMENT: change this text] in your document."
)

// Method names the cascade step that produced a snapshot's comments.
type Method string

const (
	MethodStructured  Method = "structured"
	MethodInline      Method = "inline"
	MethodPlaceholder Method = "placeholder"
	// MethodNone means the body references comments that could not be read.
	MethodNone Method = "none"
)

// Open reads the container at path.
func Open(ctx context.Context, path string) (model.DocumentSnapshot, error) {
	doc, err := docx.Open(path)
	if err != nil {
		return model.DocumentSnapshot{}, fmt.Errorf("opening %s: %w", path, err)
	}
	snap, _ := Snapshot(ctx, doc)
	return snap, nil
}

// Read parses a container held in memory.
func Read(ctx context.Context, data []byte) (model.DocumentSnapshot, error) {
	doc, err := docx.Read(data)
	if err != nil {
		return model.DocumentSnapshot{}, fmt.Errorf("reading document: %w", err)
	}
	snap, _ := Snapshot(ctx, doc)
	return snap, nil
}

// Snapshot extracts paragraphs, full text and comments from doc.
func Snapshot(ctx context.Context, doc *docx.Document) (model.DocumentSnapshot, Method) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "revcheck.extract"})

	fullText := doc.FullText()
	comments, method := Comments(ctx, doc, fullText)

	paragraphs := doc.Paragraphs
	if paragraphs == nil {
		paragraphs = []model.Paragraph{}
	}

	slog.InfoContext(ctx, "document extracted",
		"paragraphs", len(paragraphs),
		"comments", len(comments),
		"method", method)

	return model.DocumentSnapshot{
		Paragraphs: paragraphs,
		Comments:   comments,
		FullText:   fullText,
	}, method
}

// Comments runs the extraction cascade over doc.
func Comments(ctx context.Context, doc *docx.Document, fullText string) ([]model.Comment, Method) {
	if comments := structured(ctx, doc, fullText); len(comments) > 0 {
		return comments, MethodStructured
	}

	slog.DebugContext(ctx, "no structured comments, scanning text for inline markers")
	if comments := Inline(fullText); len(comments) > 0 {
		return comments, MethodInline
	}

	if refs := doc.CommentReferenceIDs(); len(refs) > 0 {
		slog.WarnContext(ctx, "document references comments that could not be read",
			"references", len(refs))
		return []model.Comment{}, MethodNone
	}

	slog.WarnContext(ctx, "no comments found, document may not contain review comments")
	return []model.Comment{Placeholder()}, MethodPlaceholder
}

func structured(ctx context.Context, doc *docx.Document, fullText string) []model.Comment {
	entries, err := doc.Comments()
	if err != nil {
		slog.WarnContext(ctx, "comments part unreadable", "error", err)
		return nil
	}
	if len(entries) == 0 {
		return nil
	}

	ix := anchor.Build(doc.Body)
	for _, id := range ix.Orphans() {
		slog.WarnContext(ctx, "comment range has a start but no end",
			"comment_id", id)
	}

	var comments []model.Comment
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}

		id := e.ID
		if id == "" {
			id = strconv.Itoa(len(comments) + 1)
		}

		c := model.Comment{
			ID:             id,
			Text:           text,
			Author:         e.Author,
			Date:           e.Date,
			AssociatedText: ix.Text(e.ID),
			UserScope:      model.UserScopeAuto,
		}

		if c.AssociatedText == "" {
			slog.WarnContext(ctx, "no associated text for comment",
				"comment_id", id,
				"ranges", len(ix.Ends))
			c.AssociatedText = fmt.Sprintf("%s FOR ID %s]", model.RangeNotFoundPrefix, id)
		} else if i := strings.Index(fullText, c.AssociatedText); i >= 0 {
			c.Position = i
		}

		slog.DebugContext(ctx, "structured comment extracted",
			"comment_id", id,
			"text", logger.Truncate(text, 50),
			"associated_text", logger.Truncate(c.AssociatedText, 50))

		comments = append(comments, c)
	}
	return comments
}

// Inline finds comments written into the text itself, such as
// "[COMMENT: ...]", and infers the text each one refers to.
func Inline(fullText string) []model.Comment {
	var comments []model.Comment
	for _, m := range anchor.FindMarkers(fullText) {
		comments = append(comments, model.Comment{
			ID:             strconv.Itoa(len(comments) + 1),
			Text:           m.Text,
			Author:         unknownAuthor,
			Position:       m.Start,
			AssociatedText: anchor.InferTarget(fullText, m),
			UserScope:      model.UserScopeAuto,
		})
	}
	return comments
}

// Placeholder is the informational comment for documents without comments.
func Placeholder() model.Comment {
	return model.Comment{
		ID:        model.InfoCommentID,
		Text:      placeholderText,
		Author:    placeholderAuthor,
		UserScope: model.UserScopeAuto,
	}
}
