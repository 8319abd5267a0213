package dto

import (
	"fmt"
	"time"

	"revcheck.app/checker/internal/model"
)

type CreateSessionResponse struct {
	SessionID        string          `json:"session_id"`
	OriginalFile     string          `json:"original_file"`
	RevisedFile      string          `json:"revised_file"`
	OriginalComments int             `json:"original_comments"`
	RevisedComments  int             `json:"revised_comments"`
	Comments         []model.Comment `json:"comments"`
	Message          string          `json:"message"`
	ExpiresAt        time.Time       `json:"expires_at"`
}

func ToCreateSessionResponse(s *model.Session) *CreateSessionResponse {
	comments := s.Original.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	return &CreateSessionResponse{
		SessionID:        s.ID,
		OriginalFile:     s.OriginalFile,
		RevisedFile:      s.RevisedFile,
		OriginalComments: len(s.Original.Comments),
		RevisedComments:  len(s.Revised.Comments),
		Comments:         comments,
		Message:          fmt.Sprintf("Files uploaded successfully. Found %d comments in original document.", len(s.Original.Comments)),
		ExpiresAt:        s.ExpiresAt,
	}
}

type SetScopeRequest struct {
	Scope string `json:"scope" binding:"required,oneof=local global auto"`
}

type SetScopeResponse struct {
	Index   int           `json:"index"`
	Comment model.Comment `json:"comment"`
}

// AnalyzeRequest optionally carries scope selections keyed by comment index.
type AnalyzeRequest struct {
	Scopes map[int]string `json:"scopes"`
}

func (r AnalyzeRequest) UserScopes() map[int]model.UserScope {
	if len(r.Scopes) == 0 {
		return nil
	}
	scopes := make(map[int]model.UserScope, len(r.Scopes))
	for i, s := range r.Scopes {
		scopes[i] = model.UserScope(s)
	}
	return scopes
}

type AnalyzeResponse struct {
	SessionID string                 `json:"session_id"`
	Summary   model.Summary          `json:"summary"`
	Records   []model.AnalysisRecord `json:"records"`
}

type StatusResponse struct {
	AIEnabled bool   `json:"ai_enabled"`
	Oracle    string `json:"oracle"`
}
