package model

import "strings"

// UserScope is the scope decision a reviewer attaches to a comment.
type UserScope string

const (
	UserScopeLocal  UserScope = "local"
	UserScopeGlobal UserScope = "global"
	UserScopeAuto   UserScope = "auto"
)

func (s UserScope) Valid() bool {
	switch s {
	case UserScopeLocal, UserScopeGlobal, UserScopeAuto:
		return true
	}
	return false
}

const (
	// InfoCommentID marks the placeholder comment emitted when a document has no comments at all.
	InfoCommentID = "info"

	// RangeNotFoundPrefix starts the associated text of a structured comment
	// whose anchored range could not be resolved.
	RangeNotFoundPrefix = "[RANGE NOT FOUND"
)

// Comment is a revision request anchored to a span of the original document.
// Position is an offset into DocumentSnapshot.FullText and is only used when
// AssociatedText cannot be found there.
type Comment struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Author         string    `json:"author"`
	Date           string    `json:"date"`
	Position       int       `json:"position"`
	AssociatedText string    `json:"associated_text"`
	UserScope      UserScope `json:"user_scope"`
}

// IsPlaceholder reports whether c is the informational "no comments" entry.
func (c Comment) IsPlaceholder() bool {
	return c.ID == InfoCommentID
}

// Target returns the trimmed associated text, or "" when the comment has no
// usable anchor.
func (c Comment) Target() string {
	t := strings.TrimSpace(c.AssociatedText)
	if strings.HasPrefix(t, RangeNotFoundPrefix) {
		return ""
	}
	return t
}
