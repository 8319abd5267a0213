package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"revcheck.app/checker/internal/brain"
	"revcheck.app/checker/internal/http/dto"
	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/service"
)

const (
	FieldOriginal = "original_doc"
	FieldRevised  = "revised_doc"
)

var (
	errMissingFile     = errors.New("both original and revised documents are required")
	errUnsupportedType = errors.New("only .docx files are supported")
	errFileTooLarge    = errors.New("file too large")
)

type SessionHandler struct {
	svc            service.AnalysisService
	maxUploadBytes int64
}

func NewSessionHandler(svc service.AnalysisService, maxUploadBytes int64) *SessionHandler {
	return &SessionHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

func (h *SessionHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	original, err := h.readUpload(c, FieldOriginal)
	if err != nil {
		h.uploadError(c, err)
		return
	}
	revised, err := h.readUpload(c, FieldRevised)
	if err != nil {
		h.uploadError(c, err)
		return
	}

	session, err := h.svc.CreateSession(ctx, original, revised)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateSessionResponse(session))
}

func (h *SessionHandler) SetScope(c *gin.Context) {
	ctx := c.Request.Context()

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment index must be an integer"})
		return
	}

	var req dto.SetScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.SetScope(ctx, c.Param("session_id"), index, model.UserScope(req.Scope))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SetScopeResponse{Index: index, Comment: *comment})
}

func (h *SessionHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("session_id")

	var req dto.AnalyzeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.WarnContext(ctx, "invalid request body", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	records, err := h.svc.RunAnalysis(ctx, sessionID, req.UserScopes())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		SessionID: sessionID,
		Summary:   brain.Summarize(records),
		Records:   records,
	})
}

// Report renders JSON by default and YAML when ?format=yaml.
func (h *SessionHandler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	r, err := h.svc.GetReport(ctx, c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, r)
	case "yaml":
		out, err := r.YAML()
		if err != nil {
			slog.ErrorContext(ctx, "failed to render report", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or yaml"})
	}
}

func (h *SessionHandler) Debug(c *gin.Context) {
	info, err := h.svc.Debug(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *SessionHandler) Status(c *gin.Context) {
	status := h.svc.Status()
	c.JSON(http.StatusOK, dto.StatusResponse{AIEnabled: status.AIEnabled, Oracle: status.Oracle})
}

func (h *SessionHandler) readUpload(c *gin.Context, field string) (service.Document, error) {
	header, err := c.FormFile(field)
	if err != nil || header.Filename == "" {
		return service.Document{}, errMissingFile
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".docx") {
		return service.Document{}, errUnsupportedType
	}
	if h.maxUploadBytes > 0 && header.Size > h.maxUploadBytes {
		return service.Document{}, fmt.Errorf("%w: %s exceeds %d bytes", errFileTooLarge, header.Filename, h.maxUploadBytes)
	}

	data, err := readFile(header)
	if err != nil {
		return service.Document{}, err
	}
	return service.Document{Name: filepath.Base(header.Filename), Data: data}, nil
}

func (h *SessionHandler) uploadError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "rejected upload", "error", err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errMissingFile), errors.Is(err, errUnsupportedType):
		status = http.StatusBadRequest
	case errors.Is(err, errFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %s: %w", header.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", header.Filename, err)
	}
	return data, nil
}

// writeError maps service errors to status codes.
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidScope), errors.Is(err, service.ErrInvalidDocument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAnalyzed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(ctx, "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
