package handler_test

import (
	"context"

	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/report"
	"revcheck.app/checker/internal/service"
)

type mockAnalysisService struct {
	createFn   func(ctx context.Context, original, revised service.Document) (*model.Session, error)
	getFn      func(ctx context.Context, sessionID string) (*model.Session, error)
	setScopeFn func(ctx context.Context, sessionID string, index int, scope model.UserScope) (*model.Comment, error)
	runFn      func(ctx context.Context, sessionID string, scopes map[int]model.UserScope) ([]model.AnalysisRecord, error)
	reportFn   func(ctx context.Context, sessionID string) (*report.Report, error)
	debugFn    func(ctx context.Context, sessionID string) (*service.DebugInfo, error)
	status     service.Status
}

func (m *mockAnalysisService) CreateSession(ctx context.Context, original, revised service.Document) (*model.Session, error) {
	if m.createFn != nil {
		return m.createFn(ctx, original, revised)
	}
	return &model.Session{}, nil
}

func (m *mockAnalysisService) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if m.getFn != nil {
		return m.getFn(ctx, sessionID)
	}
	return nil, service.ErrSessionNotFound
}

func (m *mockAnalysisService) SetScope(ctx context.Context, sessionID string, index int, scope model.UserScope) (*model.Comment, error) {
	if m.setScopeFn != nil {
		return m.setScopeFn(ctx, sessionID, index, scope)
	}
	return &model.Comment{UserScope: scope}, nil
}

func (m *mockAnalysisService) RunAnalysis(ctx context.Context, sessionID string, scopes map[int]model.UserScope) ([]model.AnalysisRecord, error) {
	if m.runFn != nil {
		return m.runFn(ctx, sessionID, scopes)
	}
	return []model.AnalysisRecord{}, nil
}

func (m *mockAnalysisService) GetReport(ctx context.Context, sessionID string) (*report.Report, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx, sessionID)
	}
	return &report.Report{SessionID: sessionID}, nil
}

func (m *mockAnalysisService) Debug(ctx context.Context, sessionID string) (*service.DebugInfo, error) {
	if m.debugFn != nil {
		return m.debugFn(ctx, sessionID)
	}
	return &service.DebugInfo{SessionID: sessionID}, nil
}

func (m *mockAnalysisService) Status() service.Status {
	return m.status
}
