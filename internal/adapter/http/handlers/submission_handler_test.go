package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biquote/internal/adapter/http/handlers/mocks"
	"biquote/internal/domain/entities"
	"biquote/internal/intake"
	"biquote/internal/usecase"
	"biquote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const submissionJSON = `{
	"analyst_name": "pricing-ana",
	"client": {"name": "Acme Corp", "type": "B2B", "country": "Germany"},
	"project_title": "Sales Dashboards",
	"subscription_plan": "Starter Lite (Monthly)",
	"expected_deliverables": [{"type": "Dashboard", "quantity": 2, "widgets": 6}],
	"data_sources": [{"file_type": "csv", "size_mb": 5}]
}`

func TestSubmissionHandler_CreateSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.POST("/v1/submissions", h.CreateSubmission)

		req := httptest.NewRequest(http.MethodPost, "/v1/submissions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.POST("/v1/submissions", h.CreateSubmission)

		payload := `{
			"analyst_name": "pricing-ana",
			"client": {"name": "Acme Corp", "type": "B2B"},
			"project_title": "Sales Dashboards",
			"subscription_plan": "Starter Lite (Monthly)",
			"expected_deliverables": [{"type": "Dashboard"}],
			"start_date": "01/06/2026"
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/submissions", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.POST("/v1/submissions", h.CreateSubmission)

		fe := intake.FieldErrors{"analyst_name": {"must start with 'pricing'"}}
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, entities.PipelineItem{}, fe)

		req := httptest.NewRequest(http.MethodPost, "/v1/submissions", bytes.NewBufferString(submissionJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_FAILED" || body["fields"] == nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.POST("/v1/submissions", h.CreateSubmission)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, entities.PipelineItem, error) {
				if s.AnalystName != "pricing-ana" || len(s.DataSources) != 1 {
					t.Fatalf("unexpected submission: %+v", s)
				}
				s.ID = "sub-1"
				return s, entities.PipelineItem{ID: "sub-1", SubmissionID: "sub-1", Stage: entities.StagePricingSubmissions, Revision: 1}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/submissions", bytes.NewBufferString(submissionJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		sub, _ := body["submission"].(map[string]any)
		item, _ := body["pipeline_item"].(map[string]any)
		if sub["id"] != "sub-1" || item["stage"] != string(entities.StagePricingSubmissions) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSubmissionHandler_GetSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions/:id", h.GetSubmission)

		uc.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, usecase.ErrSubmissionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions/sub-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions/:id", h.GetSubmission)

		uc.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1", ProjectTitle: "Sales Dashboards"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions/sub-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSubmissionHandler_DeleteSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISubmissionUseCase(ctrl)
	h := NewSubmissionHandler(uc)

	r := gin.New()
	r.DELETE("/v1/submissions/:id", h.DeleteSubmission)

	uc.EXPECT().Delete(gomock.Any(), "sub-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/submissions/sub-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestSubmissionHandler_ListSubmissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions", h.ListSubmissions)

		uc.EXPECT().List(gomock.Any(), int32(10), "c1").Return(interfaces.SubmissionPage{
			Items:      []entities.Submission{{ID: "sub-1"}},
			NextCursor: "c2",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions?limit=10&cursor=c1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["next_cursor"] != "c2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions", h.ListSubmissions)

		uc.EXPECT().Search(gomock.Any(), "acme", int32(0), "").Return(interfaces.SubmissionPage{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions?q=acme", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions", h.ListSubmissions)

		uc.EXPECT().List(gomock.Any(), int32(0), "!!").Return(interfaces.SubmissionPage{}, interfaces.ErrInvalidCursor)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions?cursor=!!", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapSubmissionError_Internal(t *testing.T) {
	appErr := mapSubmissionError(errors.New("boom"))
	if appErr.HTTPStatus != http.StatusInternalServerError || appErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected mapping: %+v", appErr)
	}
}
