package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle of an order invoice.
//
// Domain notes:
//   - An invoice is issued at the end of the daily run for every finalizable order.
//   - Paid is set by the payment flow; cancelled by an operator action.
type InvoiceStatus string

const (
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// InvoiceLine is the billed amount for one triage line.
type InvoiceLine struct {
	LinenTypeID string          `json:"linen_type_id"`
	BillingMode BillingMode     `json:"billing_mode"`
	WeightGrams int64           `json:"weight_grams"`
	PieceCount  int             `json:"piece_count"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the order invoice persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (equals the order id, one invoice per order)
//   - GSI1 (run_date-index): run_date
type Invoice struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	RunDate   string          `json:"run_date"`
	Amount    decimal.Decimal `json:"amount"`
	Lines     []InvoiceLine   `json:"lines"`
	Status    InvoiceStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
