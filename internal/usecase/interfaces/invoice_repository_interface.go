package interfaces

import (
	"context"

	"laundry_dispatch/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The day run must be able to:
//   - issue one invoice per finalizable order (id = order id)
//   - list the invoices of a run date
//   - move an invoice to paid or cancelled

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByRunDate(ctx context.Context, runDate string) ([]entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
