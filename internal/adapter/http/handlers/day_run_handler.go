package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "laundry_dispatch/internal/adapter/http/dto/request"
	response "laundry_dispatch/internal/adapter/http/dto/response"
	"laundry_dispatch/internal/usecase"
	"laundry_dispatch/pkg"
)

var (
	errInvalidDayRunPayload = pkg.NewDomainErrorSimple("INVALID_DAY_RUN_INPUT", "Invalid day run payload", http.StatusBadRequest)
)

// DayRunHandler runs a captured day and lists what a run stored.
type DayRunHandler struct {
	runs    usecase.IDailyRunUseCase
	batches usecase.IBatchUseCase
	logger  *zap.Logger
}

func NewDayRunHandler(runs usecase.IDailyRunUseCase, batches usecase.IBatchUseCase, logger *zap.Logger) *DayRunHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DayRunHandler{runs: runs, batches: batches, logger: logger}
}

// RunDay godoc
// @Summary      Run a production day
// @Tags         day-runs
// @Accept       json
// @Produce      json
// @Param        request  body      request.DayRunRequest  true  "Captured day"
// @Success      201      {object}  response.DayRunResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  response.NotTriagedResponse
// @Router       /day-runs [post]
func (h *DayRunHandler) RunDay(c *gin.Context) {
	var payload request.DayRunRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDayRunPayload.HTTPStatus, errInvalidDayRunPayload.ToHTTPError())
		return
	}

	state, err := h.runs.Prepare(payload.ToInput())
	if err != nil {
		h.logger.Warn("[dayrun][handler] prepare failed", zap.String("date", payload.Date), zap.Error(err))
		appErr := mapDayRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.runs.Run(c.Request.Context(), state)
	if err != nil {
		h.logger.Error("[dayrun][handler] run failed", zap.String("date", payload.Date), zap.Error(err))
		appErr := mapDayRunError(err)
		if errors.Is(err, usecase.ErrOrderNotTriaged) && len(state.SuggestedTriage) > 0 {
			c.JSON(appErr.HTTPStatus, response.NotTriagedResponse{
				HTTPError:       appErr.ToHTTPError(),
				SuggestedTriage: response.FromSuggestedTriage(state),
			})
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[dayrun][handler] run success",
		zap.String("date", out.Summary.RunDate),
		zap.Int("orders_processed", out.Summary.OrdersProcessed),
		zap.Int("blocked", len(out.Result.BlockedOrders)),
	)

	c.JSON(http.StatusCreated, response.FromDayRunOutcome(out))
}

// ListBatches godoc
// @Summary      Batches stored for a run date
// @Tags         day-runs
// @Produce      json
// @Param        date  path      string  true  "Run date (YYYY-MM-DD)"
// @Success      200   {array}   response.BatchResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /day-runs/{date}/batches [get]
func (h *DayRunHandler) ListBatches(c *gin.Context) {
	batches, err := h.batches.ListByRunDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		appErr := mapBatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatches(batches))
}

func mapDayRunError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRunDate), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotSelected):
		return pkg.NewDomainErrorSimple("ORDER_NOT_SELECTED", "Weighing or triage for an order outside the selection", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotWeighed), errors.Is(err, usecase.ErrIncompleteWeighing):
		return pkg.NewDomainErrorSimple("ORDER_NOT_WEIGHED", "Every selected order needs a complete weighing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotTriaged):
		return pkg.NewDomainErrorSimple("ORDER_NOT_TRIAGED", "Every selected order needs triage lines", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidTriageLine), errors.Is(err, usecase.ErrDuplicateTriageLine):
		return pkg.NewDomainErrorSimple("INVALID_TRIAGE", "Invalid triage line", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
