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

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
	logger  *zap.Logger
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase, logger *zap.Logger) *WorkflowHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkflowHandler{usecase: uc, logger: logger}
}

// GetWorkflow godoc
// @Summary      Production stage of an order
// @Tags         workflow
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  response.WorkflowResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /workflow/{order_id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	h.respond(c, "get", h.usecase.Get)
}

// AdvanceWorkflow completes the current stage of the order.
func (h *WorkflowHandler) AdvanceWorkflow(c *gin.Context) {
	h.respond(c, "advance", h.usecase.Advance)
}

func (h *WorkflowHandler) CancelWorkflow(c *gin.Context) {
	h.respond(c, "cancel", h.usecase.Cancel)
}

func (h *WorkflowHandler) respond(
	c *gin.Context,
	action string,
	fn func(ctx context.Context, orderID string) (entities.OrderWorkflowState, error),
) {
	orderID := c.Param("order_id")
	state, err := fn(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Warn("[workflow][handler] "+action+" failed", zap.String("order_id", orderID), zap.Error(err))
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflow(state))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkflowNotFound):
		return pkg.NewDomainErrorSimple("WORKFLOW_NOT_FOUND", "Order is not in the production workflow", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkflowTerminal):
		return pkg.NewDomainErrorSimple("WORKFLOW_TERMINAL", "Order workflow already completed or cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
