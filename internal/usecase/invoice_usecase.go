package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvoiceAlreadyExists = errors.New("invoice already exists")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvoiceNotIssued     = errors.New("invoice is not in issued status")
	ErrInvalidRunDate       = errors.New("invalid run date")
)

// IInvoiceUseCase exposes order invoice operations.
//
//   - day run => Issue() for every finalizable order
//   - PATCH /v1/invoices/{order_id}/cancel => Cancel()
//   - approved payment => MarkPaid()

type IInvoiceUseCase interface {
	Issue(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByRunDate(ctx context.Context, runDate string) ([]entities.Invoice, error)
	MarkPaid(ctx context.Context, id string) (entities.Invoice, error)
	Cancel(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo   interfaces.IInvoiceRepository
	logger *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, logger *zap.Logger) *InvoiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceUseCase{repo: repo, logger: logger}
}

func (u *InvoiceUseCase) Issue(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.OrderID = strings.TrimSpace(inv.OrderID)
	if inv.OrderID == "" {
		return entities.Invoice{}, ErrInvalidOrderID
	}
	if inv.Amount.IsNegative() {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}
	if _, err := time.Parse(entities.RunDateLayout, inv.RunDate); err != nil {
		return entities.Invoice{}, ErrInvalidRunDate
	}

	// One invoice per order.
	if existing, err := u.repo.GetByID(ctx, inv.OrderID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		return entities.Invoice{}, ErrInvoiceAlreadyExists
	}

	now := time.Now().UTC()
	inv.ID = inv.OrderID
	inv.Status = entities.InvoiceStatusIssued
	inv.CreatedAt = now
	inv.UpdatedAt = now

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		u.logger.Error("[invoice][usecase] create failed", zap.String("order_id", inv.OrderID), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.logger.Info("[invoice][usecase] issued",
		zap.String("order_id", created.OrderID),
		zap.String("run_date", created.RunDate),
		zap.String("amount", created.Amount.StringFixed(2)),
	)
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) ListByRunDate(ctx context.Context, runDate string) ([]entities.Invoice, error) {
	runDate = strings.TrimSpace(runDate)
	if _, err := time.Parse(entities.RunDateLayout, runDate); err != nil {
		return nil, ErrInvalidRunDate
	}
	return u.repo.ListByRunDate(ctx, runDate)
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusPaid)
}

func (u *InvoiceUseCase) Cancel(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusCancelled)
}

// transition moves an issued invoice to status; paid and cancelled are final.
func (u *InvoiceUseCase) transition(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.Status != entities.InvoiceStatusIssued {
		return entities.Invoice{}, ErrInvoiceNotIssued
	}

	updated, err := u.repo.UpdateStatusByID(ctx, current.ID, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	u.logger.Info("[invoice][usecase] status changed",
		zap.String("order_id", updated.OrderID),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}
