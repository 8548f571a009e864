package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"
)

var (
	ErrInvoicePaymentNotFound         = errors.New("invoice payment not found")
	ErrInvalidPaymentInvoiceID        = errors.New("invalid invoice_id")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvoiceNotPayable              = errors.New("invoice not payable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings carries the gateway switches read from the environment.
//
// Mock skips the provider and approves immediately. The sandbox payer fields only apply
// when AccessToken is a TEST- token.
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IInvoicePaymentUseCase settles invoices through the payment provider.
//
//   - create an item in the payment table, approve it and mark the invoice paid

type IInvoicePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo     interfaces.IInvoicePaymentRepository
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	logger   *zap.Logger
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(
	repo interfaces.IInvoicePaymentRepository,
	invoices interfaces.IInvoiceRepository,
	gateway interfaces.IPaymentGateway,
	settings PaymentSettings,
	logger *zap.Logger,
) *InvoicePaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoicePaymentUseCase{repo: repo, invoices: invoices, gateway: gateway, settings: settings, logger: logger}
}

func (u *InvoicePaymentUseCase) CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	log := u.logger.With(zap.String("invoice_id", invoiceID), zap.Bool("mock", u.settings.Mock))
	log.Info("[payment][usecase] create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentInvoiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.Mock {
			log.Warn("[payment][usecase] invalid payload")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.settings.Mock {
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		log.Error("[payment][usecase] failed loading invoice", zap.Error(err))
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	if inv.Status != entities.InvoiceStatusIssued {
		log.Warn("[payment][usecase] invoice not payable", zap.String("status", string(inv.Status)))
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	// The invoice is the source of truth for the amount and the reconciliation reference.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.settings.Mock {
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.settings.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("[payment][usecase] missing payment_method_id")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing payer")
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Laundry order %s (%s)", inv.OrderID, inv.RunDate)
	}
	reqMap["transaction_amount"] = inv.Amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if u.settings.Mock {
		providerPaymentID, providerStatus, providerResp, err = mockApproval(reqMap)
		if err != nil {
			return entities.InvoicePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.InvoicePayment{}, mapGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.InvoicePayment{
		ID:           providerPaymentID,
		InvoiceID:    inv.ID,
		Amount:       inv.Amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.invoices.UpdateStatusByID(ctx, inv.ID, entities.InvoiceStatusPaid); err != nil {
			log.Error("[payment][usecase] invoice status update failed", zap.Error(err))
			return entities.InvoicePayment{}, err
		}
	}
	log.Info("[payment][usecase] create-and-approve success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

func mockApproval(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.settings.TestPayerEmail != "":
		payer["email"] = u.settings.TestPayerEmail
	case u.settings.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email; the sandbox
// rejects payer ids of test users.
func (u *InvoicePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.settings.sandbox() || u.settings.TestPayerUserID == "" || u.settings.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.settings.TestPayerUserID {
		return
	}
	payer["email"] = u.settings.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}
