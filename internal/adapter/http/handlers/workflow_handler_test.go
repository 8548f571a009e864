package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"laundry_dispatch/internal/adapter/http/handlers/mocks"
	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase"
)

func TestWorkflowHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*mocks.MockIWorkflowUseCase, *gin.Engine) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)
		r := gin.New()
		r.GET("/v1/workflow/:order_id", h.GetWorkflow)
		r.POST("/v1/workflow/:order_id/advance", h.AdvanceWorkflow)
		r.POST("/v1/workflow/:order_id/cancel", h.CancelWorkflow)
		return uc, r
	}
	do := func(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("get renders stage names", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Get(gomock.Any(), "A").Return(entities.OrderWorkflowState{OrderID: "A", CurrentStage: entities.WorkflowStageDry}, nil)

		w := do(r, http.MethodGet, "/v1/workflow/A")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["stage"] != "dry" || body["stage_index"] != float64(4) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("advance", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Advance(gomock.Any(), "A").Return(entities.OrderWorkflowState{OrderID: "A", CurrentStage: entities.WorkflowStagePrepare, Completed: true}, nil)

		w := do(r, http.MethodPost, "/v1/workflow/A/advance")

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["completed"] != true || body["progress_percent"] != float64(100) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("terminal and missing orders", func(t *testing.T) {
		uc, r := setup(t)
		uc.EXPECT().Cancel(gomock.Any(), "A").Return(entities.OrderWorkflowState{}, usecase.ErrWorkflowTerminal)
		uc.EXPECT().Advance(gomock.Any(), "Z").Return(entities.OrderWorkflowState{}, usecase.ErrWorkflowNotFound)

		if w := do(r, http.MethodPost, "/v1/workflow/A/cancel"); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if w := do(r, http.MethodPost, "/v1/workflow/Z/advance"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
