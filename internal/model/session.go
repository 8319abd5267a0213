package model

import "time"

type Session struct {
	ID           string           `json:"id"`
	OriginalFile string           `json:"original_file"`
	RevisedFile  string           `json:"revised_file"`
	Original     DocumentSnapshot `json:"original"`
	Revised      DocumentSnapshot `json:"revised"`
	Records      []AnalysisRecord `json:"records"`
	CreatedAt    time.Time        `json:"created_at"`
	ExpiresAt    time.Time        `json:"expires_at"`
	AnalyzedAt   *time.Time       `json:"analyzed_at,omitempty"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
