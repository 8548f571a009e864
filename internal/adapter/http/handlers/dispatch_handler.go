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
	errInvalidDispatchPayload = pkg.NewDomainErrorSimple("INVALID_DISPATCH_INPUT", "Invalid dispatch payload", http.StatusBadRequest)
)

// DispatchHandler runs one stage against the loaded plant without storing anything.
type DispatchHandler struct {
	usecase usecase.IDispatchUseCase
	logger  *zap.Logger
}

func NewDispatchHandler(uc usecase.IDispatchUseCase, logger *zap.Logger) *DispatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DispatchHandler{usecase: uc, logger: logger}
}

// Dispatch godoc
// @Summary      Dispatch an item pool on one stage
// @Tags         dispatch
// @Accept       json
// @Produce      json
// @Param        stage    path      string                   true  "wash, dry or finish"
// @Param        request  body      request.DispatchRequest  true  "Item pool"
// @Success      200      {object}  response.StageResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /dispatch/{stage} [post]
func (h *DispatchHandler) Dispatch(c *gin.Context) {
	stage, err := usecase.ParseStageType(c.Param("stage"))
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.DispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDispatchPayload.HTTPStatus, errInvalidDispatchPayload.ToHTTPError())
		return
	}
	items, err := payload.ToItems()
	if err != nil {
		c.JSON(errInvalidDispatchPayload.HTTPStatus, errInvalidDispatchPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Dispatch(c.Request.Context(), stage, items)
	if err != nil {
		h.logger.Warn("[dispatch][handler] dispatch failed", zap.String("stage", string(stage)), zap.Error(err))
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStageResult(result))
}

func mapDispatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStage):
		return pkg.NewDomainErrorSimple("INVALID_STAGE", "Stage must be wash, dry or finish", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTriageLine):
		return errInvalidDispatchPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
