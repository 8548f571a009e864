package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"laundry_dispatch/internal/adapter/http/handlers/mocks"
	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase"
)

func TestBatchHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*mocks.MockIBatchUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBatchUseCase(ctrl)
		h := NewBatchHandler(uc, nil)
		r := gin.New()
		r.GET("/v1/batches/:id", h.GetBatch)
		r.PATCH("/v1/batches/:id/start", h.StartBatch)
		r.PATCH("/v1/batches/:id/finish", h.FinishBatch)
		return uc, r
	}
	do := func(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("start success", func(t *testing.T) {
		uc, r := setup(t)
		now := time.Now().UTC()
		uc.EXPECT().Start(gomock.Any(), "b-1").Return(entities.Batch{ID: "b-1", Status: entities.BatchStatusStarted, StartedAt: &now}, nil)

		w := do(r, http.MethodPatch, "/v1/batches/b-1/start")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "started" || body["started_at"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name   string
			method string
			path   string
			err    error
			code   int
		}{
			{"finish not started", http.MethodPatch, "/v1/batches/b-1/finish", usecase.ErrBatchNotStarted, http.StatusConflict},
			{"start twice", http.MethodPatch, "/v1/batches/b-1/start", usecase.ErrBatchNotPending, http.StatusConflict},
			{"get missing", http.MethodGet, "/v1/batches/b-1", usecase.ErrBatchNotFound, http.StatusNotFound},
			{"storage", http.MethodGet, "/v1/batches/b-1", errors.New("db"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, r := setup(t)
				switch tc.path {
				case "/v1/batches/b-1/finish":
					uc.EXPECT().Finish(gomock.Any(), "b-1").Return(entities.Batch{}, tc.err)
				case "/v1/batches/b-1/start":
					uc.EXPECT().Start(gomock.Any(), "b-1").Return(entities.Batch{}, tc.err)
				default:
					uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Batch{}, tc.err)
				}

				if w := do(r, tc.method, tc.path); w.Code != tc.code {
					t.Fatalf("expected %d, got %d", tc.code, w.Code)
				}
			})
		}
	})
}
