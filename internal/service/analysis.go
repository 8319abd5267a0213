package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"revcheck.app/checker/common"
	"revcheck.app/checker/common/id"
	"revcheck.app/checker/common/logger"
	"revcheck.app/checker/internal/brain"
	"revcheck.app/checker/internal/extract"
	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/report"
	"revcheck.app/checker/internal/store"
)

const previewLength = 500

// Document is one uploaded version of the manuscript.
type Document struct {
	Name string
	Data []byte
}

// DebugInfo is a read-only view of what extraction produced for a session.
type DebugInfo struct {
	SessionID               string          `json:"session_id"`
	OriginalComments        []model.Comment `json:"original_comments"`
	OriginalTextPreview     string          `json:"original_text_preview"`
	RevisedTextPreview      string          `json:"revised_text_preview"`
	OriginalParagraphsCount int             `json:"original_paragraphs_count"`
	RevisedParagraphsCount  int             `json:"revised_paragraphs_count"`
}

type Status struct {
	Oracle    string `json:"oracle"`
	AIEnabled bool   `json:"ai_enabled"`
}

type AnalysisService interface {
	CreateSession(ctx context.Context, original, revised Document) (*model.Session, error)
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	// SetScope records the reviewer's scope for the comment at index.
	SetScope(ctx context.Context, sessionID string, index int, scope model.UserScope) (*model.Comment, error)
	// RunAnalysis applies any scope selections, keyed by comment index, and
	// analyzes every comment. Earlier records are replaced.
	RunAnalysis(ctx context.Context, sessionID string, scopes map[int]model.UserScope) ([]model.AnalysisRecord, error)
	GetReport(ctx context.Context, sessionID string) (*report.Report, error)
	Debug(ctx context.Context, sessionID string) (*DebugInfo, error)
	Status() Status
}

type analysisService struct {
	sessions     store.SessionStore
	orchestrator *brain.Orchestrator
	now          func() time.Time
}

func NewAnalysisService(sessions store.SessionStore, orchestrator *brain.Orchestrator) AnalysisService {
	return &analysisService{
		sessions:     sessions,
		orchestrator: orchestrator,
		now:          time.Now,
	}
}

func (s *analysisService) CreateSession(ctx context.Context, original, revised Document) (*model.Session, error) {
	sessionID := id.NewString()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: &sessionID,
		Component: "revcheck.service.analysis",
	})

	originalSnap, err := extract.Read(ctx, original.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, original.Name, err)
	}
	revisedSnap, err := extract.Read(ctx, revised.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, revised.Name, err)
	}

	session := &model.Session{
		ID:           sessionID,
		OriginalFile: original.Name,
		RevisedFile:  revised.Name,
		Original:     originalSnap,
		Revised:      revisedSnap,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	slog.InfoContext(ctx, "session created",
		"original_file", original.Name,
		"revised_file", revised.Name,
		"comments", len(originalSnap.Comments),
		"original_paragraphs", len(originalSnap.Paragraphs),
		"revised_paragraphs", len(revisedSnap.Paragraphs))

	return session, nil
}

func (s *analysisService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func (s *analysisService) SetScope(ctx context.Context, sessionID string, index int, scope model.UserScope) (*model.Comment, error) {
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := checkCommentIndex(session, index); err != nil {
		return nil, err
	}
	session.Original.Comments[index].UserScope = scope
	if err := s.update(ctx, session); err != nil {
		return nil, err
	}

	comment := session.Original.Comments[index]
	return &comment, nil
}

func (s *analysisService) RunAnalysis(ctx context.Context, sessionID string, scopes map[int]model.UserScope) ([]model.AnalysisRecord, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SessionID: &sessionID,
		Component: "revcheck.service.analysis",
	})

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Nothing is applied unless every selection is acceptable.
	for index, scope := range scopes {
		if !scope.Valid() {
			return nil, fmt.Errorf("%w: %q for comment %d", ErrInvalidScope, scope, index)
		}
		if err := checkCommentIndex(session, index); err != nil {
			return nil, err
		}
	}
	for index, scope := range scopes {
		session.Original.Comments[index].UserScope = scope
	}

	start := s.now()
	records := s.orchestrator.Analyze(ctx, session.Original.Comments, session.Original.FullText, session.Revised.FullText)

	analyzedAt := s.now()
	session.Records = records
	session.AnalyzedAt = &analyzedAt
	if err := s.update(ctx, session); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "session analyzed",
		"records", len(records),
		"duration_ms", analyzedAt.Sub(start).Milliseconds())

	return records, nil
}

func (s *analysisService) GetReport(ctx context.Context, sessionID string) (*report.Report, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.AnalyzedAt == nil {
		return nil, ErrNotAnalyzed
	}
	return report.Build(session)
}

func (s *analysisService) Debug(ctx context.Context, sessionID string) (*DebugInfo, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	comments := session.Original.Comments
	if comments == nil {
		comments = []model.Comment{}
	}

	return &DebugInfo{
		SessionID:               session.ID,
		OriginalComments:        comments,
		OriginalTextPreview:     common.Preview(session.Original.FullText, previewLength),
		RevisedTextPreview:      common.Preview(session.Revised.FullText, previewLength),
		OriginalParagraphsCount: len(session.Original.Paragraphs),
		RevisedParagraphsCount:  len(session.Revised.Paragraphs),
	}, nil
}

func (s *analysisService) Status() Status {
	name := s.orchestrator.OracleName()
	return Status{
		Oracle:    name,
		AIEnabled: name != brain.OracleRules,
	}
}

func (s *analysisService) update(ctx context.Context, session *model.Session) error {
	if err := s.sessions.Update(ctx, session); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

func checkCommentIndex(session *model.Session, index int) error {
	comments := session.Original.Comments
	if index < 0 || index >= len(comments) || comments[index].IsPlaceholder() {
		return fmt.Errorf("%w: index %d", ErrCommentNotFound, index)
	}
	return nil
}
