package usecase

import (
	"testing"

	"github.com/shopspring/decimal"

	"laundry_dispatch/internal/domain/entities"
)

func TestInvoiceLines(t *testing.T) {
	catalog := testLinenCatalog()

	t.Run("weight and piece billing", func(t *testing.T) {
		rec := entities.TriageRecord{
			OrderID: "o-1",
			LineItems: []entities.TriageLine{
				{LinenTypeID: typeSheet, WeightGrams: 10_400, PieceCount: 14},
				{LinenTypeID: typeShirt, WeightGrams: 2_000, PieceCount: 12},
			},
		}

		lines, total := InvoiceLines(rec, catalog)

		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if !lines[0].Amount.Equal(decimal.RequireFromString("26")) {
			t.Fatalf("expected sheet amount 26, got %s", lines[0].Amount)
		}
		if lines[0].BillingMode != entities.BillingModeWeight {
			t.Fatalf("unexpected billing mode %s", lines[0].BillingMode)
		}
		if !lines[1].Amount.Equal(decimal.RequireFromString("14.4")) {
			t.Fatalf("expected shirt amount 14.4, got %s", lines[1].Amount)
		}
		if !total.Equal(decimal.RequireFromString("40.40")) {
			t.Fatalf("expected total 40.40, got %s", total)
		}
	})

	t.Run("unknown types are not billed", func(t *testing.T) {
		rec := entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: "lt-999", WeightGrams: 5_000}}}

		lines, total := InvoiceLines(rec, catalog)

		if len(lines) != 0 || !total.IsZero() {
			t.Fatalf("expected nothing billed, got %d lines total %s", len(lines), total)
		}
	})

	t.Run("rounds to cents", func(t *testing.T) {
		rec := entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: typeTowel, WeightGrams: 333}}}

		_, total := InvoiceLines(rec, catalog)

		if !total.Equal(decimal.RequireFromString("1.00")) {
			t.Fatalf("expected 1.00, got %s", total)
		}
	})
}
