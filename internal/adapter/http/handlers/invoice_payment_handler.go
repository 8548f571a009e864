package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "laundry_dispatch/internal/adapter/http/dto/request"
	response "laundry_dispatch/internal/adapter/http/dto/response"
	"laundry_dispatch/internal/usecase"
	"laundry_dispatch/pkg"
)

// InvoicePaymentHandler settles invoices through the payment provider.
type InvoicePaymentHandler struct {
	usecase  usecase.IInvoicePaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase, mockMode bool, logger *zap.Logger) *InvoicePaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoicePaymentHandler{usecase: uc, mockMode: mockMode, logger: logger}
}

// CreatePaymentByInvoiceID creates/approves a payment using invoice_id in path.
//
// @Summary      Settle an invoice through Mercado Pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        invoice_id  path      string                               true  "Invoice id (order id)"
// @Param        request     body      request.InvoicePaymentCreateRequest  false "Mercado Pago payload"
// @Success      200         {object}  response.InvoicePaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{invoice_id} [post]
func (h *InvoicePaymentHandler) CreatePaymentByInvoiceID(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	h.logger.Info("[payment][handler] create start", zap.String("invoice_id", invoiceID))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			h.logger.Warn("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.String("invoice_id", invoiceID), zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			h.logger.Warn("[payment][handler] invalid payload", zap.String("invoice_id", invoiceID), zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		h.logger.Warn("[payment][handler] create failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[payment][handler] create success",
		zap.String("invoice_id", invoiceID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// GetPaymentByInvoiceID returns the latest payment for an invoice.
func (h *InvoicePaymentHandler) GetPaymentByInvoiceID(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		h.logger.Warn("[payment][handler] get-by-invoice failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromInvoicePayment(latest))
}

// readMPPayload accepts either the request.InvoicePaymentCreateRequest envelope or a bare
// provider payload. An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req request.InvoicePaymentCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			wrapped := strings.TrimSpace(string(req.MPPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return req.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not issued", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
