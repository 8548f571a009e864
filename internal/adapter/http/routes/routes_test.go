package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"laundry_dispatch/internal/adapter/http/handlers"
	"laundry_dispatch/internal/adapter/http/handlers/mocks"
	"laundry_dispatch/internal/domain/entities"
)

func testHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockIWorkflowUseCase) {
	workflow := mocks.NewMockIWorkflowUseCase(ctrl)
	batches := mocks.NewMockIBatchUseCase(ctrl)
	invoices := mocks.NewMockIInvoiceUseCase(ctrl)
	return Handlers{
		Dispatch: handlers.NewDispatchHandler(mocks.NewMockIDispatchUseCase(ctrl), nil),
		DayRun:   handlers.NewDayRunHandler(mocks.NewMockIDailyRunUseCase(ctrl), batches, nil),
		Batch:    handlers.NewBatchHandler(batches, nil),
		Workflow: handlers.NewWorkflowHandler(workflow, nil),
		Invoice:  handlers.NewInvoiceHandler(invoices, nil),
		Payment:  handlers.NewInvoicePaymentHandler(mocks.NewMockIInvoicePaymentUseCase(ctrl), false, nil),
	}, workflow
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, workflow := testHandlers(ctrl)
	router := NewRouter(h, nil)

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected ping response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("routes are mounted under v1", func(t *testing.T) {
		registered := map[string]bool{}
		for _, r := range router.Routes() {
			registered[r.Method+" "+r.Path] = true
		}
		for _, want := range []string{
			"POST /v1/dispatch/:stage",
			"POST /v1/day-runs",
			"GET /v1/day-runs/:date/batches",
			"GET /v1/day-runs/:date/invoices",
			"PATCH /v1/batches/:id/start",
			"PATCH /v1/batches/:id/finish",
			"GET /v1/workflow/:order_id",
			"POST /v1/workflow/:order_id/advance",
			"POST /v1/workflow/:order_id/cancel",
			"GET /v1/invoices/:order_id",
			"PATCH /v1/invoices/:order_id/cancel",
			"POST /v1/payments/:invoice_id",
			"GET /v1/payments/:invoice_id",
		} {
			if !registered[want] {
				t.Fatalf("route %s not registered", want)
			}
		}
	})

	t.Run("requests reach the handlers", func(t *testing.T) {
		workflow.EXPECT().Get(gomock.Any(), "A").Return(entities.OrderWorkflowState{OrderID: "A"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/workflow/A", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
