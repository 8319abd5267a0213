package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"revcheck.app/checker/internal/docx"
	"revcheck.app/checker/internal/http/handler"
	"revcheck.app/checker/internal/model"
	"revcheck.app/checker/internal/report"
	"revcheck.app/checker/internal/service"
)

type upload struct {
	field, name string
	data        []byte
}

func multipartRequest(url string, files ...upload) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write(f.data)
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(w.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}

var _ = Describe("SessionHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAnalysisService
	)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		router = gin.New()
		svc = &mockAnalysisService{}
		h := handler.NewSessionHandler(svc, 1024)
		router.POST("/sessions", h.Create)
		router.PUT("/sessions/:session_id/comments/:index/scope", h.SetScope)
		router.POST("/sessions/:session_id/analyze", h.Analyze)
		router.GET("/sessions/:session_id/report", h.Report)
		router.GET("/sessions/:session_id/debug", h.Debug)
		router.GET("/status", h.Status)
	})

	Describe("Create", func() {
		It("returns 201 with the session summary", func() {
			var got [2]service.Document
			svc.createFn = func(_ context.Context, original, revised service.Document) (*model.Session, error) {
				got = [2]service.Document{original, revised}
				return &model.Session{
					ID:           "7",
					OriginalFile: original.Name,
					RevisedFile:  revised.Name,
					Original: model.DocumentSnapshot{Comments: []model.Comment{
						{ID: "1", Text: "fix", UserScope: model.UserScopeAuto},
					}},
				}, nil
			}

			w := serve(multipartRequest("/sessions",
				upload{handler.FieldOriginal, "draft.docx", []byte("a")},
				upload{handler.FieldRevised, "final.DOCX", []byte("b")},
			))

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got[0]).To(Equal(service.Document{Name: "draft.docx", Data: []byte("a")}))
			Expect(got[1].Name).To(Equal("final.DOCX"))

			resp := decode(w)
			Expect(resp["session_id"]).To(Equal("7"))
			Expect(resp["original_comments"]).To(BeNumerically("==", 1))
			Expect(resp["message"]).To(ContainSubstring("Found 1 comments"))
		})

		It("returns 400 when a document is missing", func() {
			w := serve(multipartRequest("/sessions",
				upload{handler.FieldOriginal, "draft.docx", []byte("a")},
			))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).To(ContainSubstring("both original and revised"))
		})

		It("returns 400 for other file types", func() {
			w := serve(multipartRequest("/sessions",
				upload{handler.FieldOriginal, "draft.pdf", []byte("a")},
				upload{handler.FieldRevised, "final.docx", []byte("b")},
			))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).To(Equal("only .docx files are supported"))
		})

		It("returns 413 for oversized files", func() {
			w := serve(multipartRequest("/sessions",
				upload{handler.FieldOriginal, "draft.docx", bytes.Repeat([]byte("a"), 2048)},
				upload{handler.FieldRevised, "final.docx", []byte("b")},
			))

			Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
		})

		It("returns 400 for unreadable documents", func() {
			svc.createFn = func(context.Context, service.Document, service.Document) (*model.Session, error) {
				return nil, fmt.Errorf("%w: draft.docx: %w", service.ErrInvalidDocument, docx.ErrNotDocx)
			}

			w := serve(multipartRequest("/sessions",
				upload{handler.FieldOriginal, "draft.docx", []byte("a")},
				upload{handler.FieldRevised, "final.docx", []byte("b")},
			))

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("SetScope", func() {
		It("passes the scope through", func() {
			var gotIndex int
			var gotScope model.UserScope
			svc.setScopeFn = func(_ context.Context, sessionID string, index int, scope model.UserScope) (*model.Comment, error) {
				gotIndex, gotScope = index, scope
				return &model.Comment{ID: "1", UserScope: scope}, nil
			}

			w := serve(jsonRequest(http.MethodPut, "/sessions/7/comments/2/scope", `{"scope":"global"}`))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotIndex).To(Equal(2))
			Expect(gotScope).To(Equal(model.UserScopeGlobal))
		})

		It("returns 400 for scopes outside the enum", func() {
			w := serve(jsonRequest(http.MethodPut, "/sessions/7/comments/0/scope", `{"scope":"sometimes"}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 for a non-numeric index", func() {
			w := serve(jsonRequest(http.MethodPut, "/sessions/7/comments/x/scope", `{"scope":"local"}`))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for unknown comments", func() {
			svc.setScopeFn = func(context.Context, string, int, model.UserScope) (*model.Comment, error) {
				return nil, fmt.Errorf("%w: index 9", service.ErrCommentNotFound)
			}

			w := serve(jsonRequest(http.MethodPut, "/sessions/7/comments/9/scope", `{"scope":"local"}`))
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Analyze", func() {
		It("runs without a body", func() {
			svc.runFn = func(_ context.Context, _ string, scopes map[int]model.UserScope) ([]model.AnalysisRecord, error) {
				Expect(scopes).To(BeNil())
				return []model.AnalysisRecord{
					{Validation: model.ValidationResult{Status: model.StatusCorrectlyApplied}},
				}, nil
			}

			w := serve(httptest.NewRequest(http.MethodPost, "/sessions/7/analyze", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["session_id"]).To(Equal("7"))
			Expect(resp["summary"]).To(HaveKeyWithValue("success_rate", BeNumerically("==", 100)))
		})

		It("forwards scope selections", func() {
			var got map[int]model.UserScope
			svc.runFn = func(_ context.Context, _ string, scopes map[int]model.UserScope) ([]model.AnalysisRecord, error) {
				got = scopes
				return nil, nil
			}

			w := serve(jsonRequest(http.MethodPost, "/sessions/7/analyze", `{"scopes":{"0":"global","2":"local"}}`))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).To(Equal(map[int]model.UserScope{0: model.UserScopeGlobal, 2: model.UserScopeLocal}))
		})

		It("returns 404 for unknown sessions", func() {
			svc.runFn = func(context.Context, string, map[int]model.UserScope) ([]model.AnalysisRecord, error) {
				return nil, service.ErrSessionNotFound
			}

			w := serve(httptest.NewRequest(http.MethodPost, "/sessions/nope/analyze", nil))

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["error"]).To(Equal("session not found"))
		})

		It("returns 500 for unexpected failures", func() {
			svc.runFn = func(context.Context, string, map[int]model.UserScope) ([]model.AnalysisRecord, error) {
				return nil, errors.New("boom")
			}

			w := serve(httptest.NewRequest(http.MethodPost, "/sessions/7/analyze", nil))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Report", func() {
		It("renders JSON by default", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/sessions/7/report", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["session_id"]).To(Equal("7"))
		})

		It("renders YAML on request", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/sessions/7/report?format=yaml", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("application/yaml"))
			Expect(w.Body.String()).To(ContainSubstring("session_id: \"7\""))
		})

		It("rejects unknown formats", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/sessions/7/report?format=html", nil))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 409 before analysis", func() {
			svc.reportFn = func(context.Context, string) (*report.Report, error) {
				return nil, service.ErrNotAnalyzed
			}

			w := serve(httptest.NewRequest(http.MethodGet, "/sessions/7/report", nil))
			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Debug", func() {
		It("returns 404 for unknown sessions", func() {
			svc.debugFn = func(context.Context, string) (*service.DebugInfo, error) {
				return nil, service.ErrSessionNotFound
			}

			w := serve(httptest.NewRequest(http.MethodGet, "/sessions/nope/debug", nil))
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Status", func() {
		It("reports the configured oracle", func() {
			svc.status = service.Status{Oracle: "openai", AIEnabled: true}

			w := serve(httptest.NewRequest(http.MethodGet, "/status", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(Equal(map[string]any{"ai_enabled": true, "oracle": "openai"}))
		})
	})
})
