package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const RunDateLayout = "2006-01-02"

// DailyRunState is the transient state of one operating day. It is a value: every
// mutation returns a new state and the caller threads it between steps.
type DailyRunState struct {
	Date             time.Time               `json:"date"`
	SelectedOrderIDs []string                `json:"selected_order_ids"`
	Weighed          map[string]WeighedOrder `json:"weighed"`
	Triage           map[string]TriageRecord `json:"triage"`

	// SuggestedTriage holds lines pre-filled from collected items for orders that are
	// weighed but not triaged. They are never dispatched until recorded with RecordTriage.
	SuggestedTriage map[string]TriageRecord `json:"suggested_triage,omitempty"`
}

func NewDailyRunState(date time.Time) DailyRunState {
	return DailyRunState{
		Date:    date,
		Weighed: map[string]WeighedOrder{},
		Triage:  map[string]TriageRecord{},

		SuggestedTriage: map[string]TriageRecord{},
	}
}

func (s DailyRunState) RunDate() string {
	return s.Date.Format(RunDateLayout)
}

// Clone returns a deep copy so callers never share maps between states.
func (s DailyRunState) Clone() DailyRunState {
	out := DailyRunState{
		Date:             s.Date,
		SelectedOrderIDs: append([]string(nil), s.SelectedOrderIDs...),
		Weighed:          make(map[string]WeighedOrder, len(s.Weighed)),
		Triage:           make(map[string]TriageRecord, len(s.Triage)),
		SuggestedTriage:  make(map[string]TriageRecord, len(s.SuggestedTriage)),
	}
	for k, v := range s.Weighed {
		v.Items = append([]WeighedLot(nil), v.Items...)
		out.Weighed[k] = v
	}
	for k, v := range s.Triage {
		v.LineItems = append([]TriageLine(nil), v.LineItems...)
		out.Triage[k] = v
	}
	for k, v := range s.SuggestedTriage {
		v.LineItems = append([]TriageLine(nil), v.LineItems...)
		out.SuggestedTriage[k] = v
	}
	return out
}

// IsSelected reports whether orderID is part of the day's selection.
func (s DailyRunState) IsSelected(orderID string) bool {
	for _, id := range s.SelectedOrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// TriageRecords returns the recorded triage in selection order.
func (s DailyRunState) TriageRecords() []TriageRecord {
	out := make([]TriageRecord, 0, len(s.Triage))
	for _, id := range s.SelectedOrderIDs {
		if rec, ok := s.Triage[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// BlockedOrder is an order whose triage failed the weight tolerance check.
type BlockedOrder struct {
	OrderID          string  `json:"order_id"`
	WeighedGrams     int64   `json:"weighed_grams"`
	TriageGrams      int64   `json:"triage_grams"`
	DeviationPercent float64 `json:"deviation_percent"`
}

// DayRunResult is everything one RunDay call produces.
type DayRunResult struct {
	RunID                 string                     `json:"run_id,omitempty"`
	RunDate               string                     `json:"run_date"`
	Wash                  StageResult                `json:"wash"`
	Dry                   StageResult                `json:"dry"`
	Finish                StageResult                `json:"finish"`
	PerOrderInvoiceAmount map[string]decimal.Decimal `json:"per_order_invoice_amount"`
	Invoices              []Invoice                  `json:"invoices"`
	BlockedOrders         []BlockedOrder             `json:"blocked_orders"`
	DayTotalWeightGrams   int64                      `json:"day_total_weight_grams"`
	DayTotalRevenue       decimal.Decimal            `json:"day_total_revenue"`
}

// WashBatches, DryBatches and FinishBatches are shorthands for the stage outputs.
func (r DayRunResult) WashBatches() []Batch   { return r.Wash.Batches }
func (r DayRunResult) DryBatches() []Batch    { return r.Dry.Batches }
func (r DayRunResult) FinishBatches() []Batch { return r.Finish.Batches }

// UnassignedCount sums unassigned items across the three stages.
func (r DayRunResult) UnassignedCount() int {
	return len(r.Wash.Unassigned) + len(r.Dry.Unassigned) + len(r.Finish.Unassigned)
}

// DaySummary closes a day: figures for the operator before the transient state is reset.
type DaySummary struct {
	RunDate          string          `json:"run_date"`
	OrdersProcessed  int             `json:"orders_processed"`
	TotalWeightGrams int64           `json:"total_weight_grams"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
}

// DayInput captures a whole day at once, as submitted by the API or read from a day file.
// Without an explicit selection the orders collected on Date are selected. Weighed orders
// without triage get suggested lines from their collected items; a run still requires a
// recorded triage for each of them.
type DayInput struct {
	Date             string         `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Orders           []Order        `json:"orders,omitempty" yaml:"orders" validate:"dive"`
	SelectedOrderIDs []string       `json:"selected_order_ids" yaml:"selected_order_ids"`
	Weighings        []WeighedOrder `json:"weighings" yaml:"weighings" validate:"dive"`
	Triage           []TriageRecord `json:"triage" yaml:"triage" validate:"dive"`
}
