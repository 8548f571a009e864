package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "laundry_dispatch/internal/adapter/http/dto/response"
	"laundry_dispatch/internal/usecase"
	"laundry_dispatch/pkg"
)

// InvoiceHandler reads and cancels order invoices. Invoices are addressed by order id.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, logger: logger}
}

// GetInvoice godoc
// @Summary      Invoice of an order
// @Tags         invoices
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  response.InvoiceResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /invoices/{order_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListByRunDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	out := make([]response.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, response.FromInvoice(inv))
	}
	c.JSON(http.StatusOK, out)
}

func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	orderID := c.Param("order_id")
	inv, err := h.usecase.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Warn("[invoice][handler] cancel failed", zap.String("invoice_id", orderID), zap.Error(err))
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[invoice][handler] cancel success", zap.String("invoice_id", inv.ID))
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidRunDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotIssued):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_ISSUED", "Invoice already paid or cancelled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
