package response

import (
	"time"

	"laundry_dispatch/internal/domain/entities"
)

type InvoiceLineResponse struct {
	LinenTypeID string `json:"linen_type_id"`
	BillingMode string `json:"billing_mode"`
	WeightGrams int64  `json:"weight_grams"`
	PieceCount  int    `json:"piece_count"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

// InvoiceResponse renders amounts with two decimals.
type InvoiceResponse struct {
	InvoiceID string                `json:"invoice_id"`
	ID        string                `json:"id"`
	OrderID   string                `json:"order_id"`
	RunDate   string                `json:"run_date"`
	Amount    string                `json:"amount"`
	Lines     []InvoiceLineResponse `json:"lines"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			LinenTypeID: l.LinenTypeID,
			BillingMode: string(l.BillingMode),
			WeightGrams: l.WeightGrams,
			PieceCount:  l.PieceCount,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Amount:      l.Amount.StringFixed(2),
		})
	}
	return InvoiceResponse{
		InvoiceID: inv.ID,
		ID:        inv.ID,
		OrderID:   inv.OrderID,
		RunDate:   inv.RunDate,
		Amount:    inv.Amount.StringFixed(2),
		Lines:     lines,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}
