package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "laundry_dispatch/internal/adapter/http/dto/response"
	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase"
	"laundry_dispatch/pkg"
)

// BatchHandler exposes the operator actions on a stored batch.
type BatchHandler struct {
	usecase usecase.IBatchUseCase
	logger  *zap.Logger
}

func NewBatchHandler(uc usecase.IBatchUseCase, logger *zap.Logger) *BatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchHandler{usecase: uc, logger: logger}
}

func (h *BatchHandler) GetBatch(c *gin.Context) {
	h.respond(c, "get", h.usecase.GetByID)
}

// StartBatch godoc
// @Summary      Mark a batch as started
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch id"
// @Success      200  {object}  response.BatchResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /batches/{id}/start [patch]
func (h *BatchHandler) StartBatch(c *gin.Context) {
	h.respond(c, "start", h.usecase.Start)
}

// FinishBatch godoc
// @Summary      Mark a batch as finished
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "Batch id"
// @Success      200  {object}  response.BatchResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /batches/{id}/finish [patch]
func (h *BatchHandler) FinishBatch(c *gin.Context) {
	h.respond(c, "finish", h.usecase.Finish)
}

func (h *BatchHandler) respond(
	c *gin.Context,
	action string,
	fn func(ctx context.Context, id string) (entities.Batch, error),
) {
	id := c.Param("id")
	batch, err := fn(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("[batch][handler] "+action+" failed", zap.String("batch_id", id), zap.Error(err))
		appErr := mapBatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(batch))
}

func mapBatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBatchID), errors.Is(err, usecase.ErrInvalidRunDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotPending):
		return pkg.NewDomainErrorSimple("BATCH_ALREADY_STARTED", "Batch already started", http.StatusConflict)
	case errors.Is(err, usecase.ErrBatchNotStarted):
		return pkg.NewDomainErrorSimple("BATCH_NOT_STARTED", "Batch not started", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
