package handlers

import (
	"bytes"
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

func TestDispatchHandler_Dispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIDispatchUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/dispatch/:stage", NewDispatchHandler(uc, nil).Dispatch)
		return r
	}
	post := func(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("unknown stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := post(newRouter(mocks.NewMockIDispatchUseCase(ctrl)), "/v1/dispatch/ironer", `{"items":[{"linen_type_id":"lt-001","weight_grams":1}]}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIDispatchUseCase(ctrl))

		for _, body := range []string{"{", `{"items":[]}`, `{"items":[{"weight_grams":1}]}`, `{"items":[{"linen_type_id":"lt-001","weight_grams":-5}]}`} {
			if w := post(r, "/v1/dispatch/wash", body); w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDispatchUseCase(ctrl)
		uc.EXPECT().Dispatch(gomock.Any(), entities.StageDryer, gomock.Len(1)).Return(entities.StageResult{}, usecase.ErrInvalidTriageLine)

		w := post(newRouter(uc), "/v1/dispatch/dry", `{"items":[{"linen_type_id":"lt-001","weight_grams":1}]}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDispatchUseCase(ctrl)
		uc.EXPECT().Dispatch(gomock.Any(), entities.StageWasher, []entities.LinenItem{{OrderID: "A", LinenTypeID: "lt-001", WeightGrams: 30000}}).Return(entities.StageResult{
			Stage:   entities.StageWasher,
			Batches: []entities.Batch{{ID: "b-1", MachineID: "w-large", TotalLoad: 30000, Items: []entities.LinenItem{{OrderID: "A", LinenTypeID: "lt-001", WeightGrams: 30000}}}},
		}, nil)

		w := post(newRouter(uc), "/v1/dispatch/wash", `{"items":[{"order_id":"A","linen_type_id":"lt-001","weight_grams":30000}]}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Batches []struct {
				MachineID string   `json:"machine_id"`
				OrderIDs  []string `json:"order_ids"`
			} `json:"batches"`
			TotalLoad int64 `json:"total_load"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Batches) != 1 || body.Batches[0].MachineID != "w-large" || body.TotalLoad != 30000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
