package usecase

import (
	"github.com/shopspring/decimal"

	"laundry_dispatch/internal/domain/entities"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// LineAmount prices one triage line: weight-billed types at (grams / 1000) × unit price,
// piece-billed types at pieces × unit price.
func LineAmount(t entities.LinenType, l entities.TriageLine) entities.InvoiceLine {
	price := decimal.NewFromFloat(t.UnitPrice)
	line := entities.InvoiceLine{
		LinenTypeID: l.LinenTypeID,
		BillingMode: t.BillingMode,
		WeightGrams: l.WeightGrams,
		PieceCount:  l.PieceCount,
		UnitPrice:   price,
	}
	switch t.BillingMode {
	case entities.BillingModePiece:
		line.Amount = price.Mul(decimal.NewFromInt(int64(l.PieceCount)))
	default:
		line.Amount = decimal.NewFromInt(l.WeightGrams).Div(gramsPerKilogram).Mul(price)
	}
	return line
}

// InvoiceLines prices every triage line of an order. Lines of unknown linen types are not
// billed.
func InvoiceLines(rec entities.TriageRecord, catalog *entities.LinenCatalog) ([]entities.InvoiceLine, decimal.Decimal) {
	lines := make([]entities.InvoiceLine, 0, len(rec.LineItems))
	total := decimal.Zero
	for _, l := range rec.LineItems {
		t, ok := catalog.Lookup(l.LinenTypeID)
		if !ok {
			continue
		}
		line := LineAmount(t, l)
		total = total.Add(line.Amount)
		lines = append(lines, line)
	}
	return lines, total.Round(2)
}
