package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase"
)

func TestFromInvoicePayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.InvoicePayment{
		ID:           "pay-1",
		InvoiceID:    "o-1",
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromInvoicePayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.InvoiceID != "o-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:      "o-1",
		OrderID: "o-1",
		Amount:  decimal.RequireFromString("40.4"),
		Status:  entities.InvoiceStatusIssued,
		Lines: []entities.InvoiceLine{{
			LinenTypeID: "lt-001",
			BillingMode: entities.BillingModeWeight,
			WeightGrams: 16_160,
			UnitPrice:   decimal.RequireFromString("2.5"),
			Amount:      decimal.RequireFromString("40.4"),
		}},
	}

	res := FromInvoice(inv)
	if res.Amount != "40.40" || res.Lines[0].UnitPrice != "2.50" || res.Lines[0].BillingMode != "weight" {
		t.Fatalf("unexpected invoice: %+v", res)
	}
	if res.InvoiceID != "o-1" || res.Status != "issued" {
		t.Fatalf("unexpected fields: %+v", res)
	}
}

func TestFromStageResult(t *testing.T) {
	r := entities.StageResult{
		Stage: entities.StageWasher,
		Batches: []entities.Batch{{
			ID:              "b-1",
			Stage:           entities.StageWasher,
			Category:        entities.LinenCategoryFlat,
			Items:           []entities.LinenItem{{OrderID: "A", LinenTypeID: "lt-001", WeightGrams: 20_000}, {OrderID: "B", LinenTypeID: "lt-001", WeightGrams: 4_000}},
			TotalLoad:       24_000,
			Capacity:        40_000,
			LoadUnit:        entities.LoadUnitGrams,
			UtilizationRate: 0.6,
			Status:          entities.BatchStatusPending,
		}},
		Unassigned: []entities.UnassignedItem{{Item: entities.LinenItem{LinenTypeID: "lt-009"}, Reason: entities.ReasonNoProgram}},
		Warnings:   []entities.DispatchWarning{{Kind: entities.WarningNoProgram, Category: entities.LinenCategoryOther, Message: "no program"}},
	}

	res := FromStageResult(r)
	if res.Stage != "washer" {
		t.Fatalf("unexpected stage %q", res.Stage)
	}
	if len(res.Batches) != 1 || res.Batches[0].Underutilized || res.Batches[0].LoadUnit != "g" {
		t.Fatalf("unexpected batches: %+v", res.Batches)
	}
	if got := res.Batches[0].OrderIDs; len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("unexpected order ids: %v", got)
	}
	if !res.Blocking || res.TotalLoad != 24_000 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.Unassigned[0].Reason != "no_program" || res.Warnings[0].Kind != "no_program" {
		t.Fatalf("unexpected diagnostics: %+v %+v", res.Unassigned, res.Warnings)
	}
}

func TestFromWorkflow(t *testing.T) {
	at := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	s := entities.OrderWorkflowState{
		OrderID:      "A",
		CurrentStage: entities.WorkflowStageWash,
		CompletedAt: map[entities.WorkflowStage]time.Time{
			entities.WorkflowStageCollect: at,
			entities.WorkflowStageWeigh:   at,
			entities.WorkflowStageVerify:  at,
		},
	}

	res := FromWorkflow(s)
	if res.Stage != "wash" || res.StageIndex != 3 || res.Cancelled || res.Completed {
		t.Fatalf("unexpected workflow: %+v", res)
	}
	if _, ok := res.CompletedAt["verify"]; !ok || len(res.CompletedAt) != 3 {
		t.Fatalf("unexpected completed_at: %+v", res.CompletedAt)
	}
	if res.ProgressPercent <= 42 || res.ProgressPercent >= 43 {
		t.Fatalf("unexpected progress %v", res.ProgressPercent)
	}
}

func TestFromDayRunOutcome(t *testing.T) {
	out := usecase.DayRunOutcome{
		Result: entities.DayRunResult{
			RunDate:       "2026-10-16",
			Invoices:      []entities.Invoice{{ID: "A", OrderID: "A", Amount: decimal.RequireFromString("105")}},
			BlockedOrders: []entities.BlockedOrder{{OrderID: "C", WeighedGrams: 10_000, TriageGrams: 10_600, DeviationPercent: 6}},
		},
		Summary: entities.DaySummary{RunDate: "2026-10-16", OrdersProcessed: 1, TotalWeightGrams: 40_000, TotalRevenue: decimal.RequireFromString("105")},
	}

	res := FromDayRunOutcome(out)
	if res.Summary.TotalRevenue != "105.00" || res.Summary.OrdersProcessed != 1 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
	if len(res.Invoices) != 1 || res.Invoices[0].Amount != "105.00" {
		t.Fatalf("unexpected invoices: %+v", res.Invoices)
	}
	if len(res.BlockedOrders) != 1 || res.BlockedOrders[0].DeviationPercent != 6 {
		t.Fatalf("unexpected blocked orders: %+v", res.BlockedOrders)
	}
	if res.Wash.Batches == nil || res.Wash.Unassigned == nil {
		t.Fatalf("empty stages should render as empty lists")
	}
}

func TestFromSuggestedTriage(t *testing.T) {
	state := entities.NewDailyRunState(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	state.SelectedOrderIDs = []string{"B", "A", "C"}
	state.SuggestedTriage["A"] = entities.TriageRecord{OrderID: "A", WeighedTotalGrams: 3_000,
		LineItems: []entities.TriageLine{{LinenTypeID: "lt-001", PieceCount: 4}}}
	state.SuggestedTriage["B"] = entities.TriageRecord{OrderID: "B", WeighedTotalGrams: 6_000,
		LineItems: []entities.TriageLine{{LinenTypeID: "lt-002", PieceCount: 12}}}

	res := FromSuggestedTriage(state)
	if len(res) != 2 || res[0].OrderID != "B" || res[1].OrderID != "A" {
		t.Fatalf("expected suggestions in selection order, got %+v", res)
	}
	if l := res[0].LineItems[0]; l.LinenTypeID != "lt-002" || l.PieceCount != 12 || res[0].WeighedTotalGrams != 6_000 {
		t.Fatalf("unexpected suggestion: %+v", res[0])
	}
}
