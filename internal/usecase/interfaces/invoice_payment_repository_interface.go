package interfaces

import (
	"context"

	"laundry_dispatch/internal/domain/entities"
)

// IInvoicePaymentRepository abstracts DynamoDB persistence for InvoicePayment.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}
