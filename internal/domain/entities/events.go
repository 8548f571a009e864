package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SubjectWorkflowAdvanced  = "laundry.workflow.advanced"
	SubjectWorkflowCancelled = "laundry.workflow.cancelled"
	SubjectDayRunCompleted   = "laundry.dayrun.completed"
)

// WorkflowEvent is published on every stage transition of an order.
type WorkflowEvent struct {
	OrderID         string    `json:"order_id"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Completed       bool      `json:"completed"`
	ProgressPercent float64   `json:"progress_percent"`
	At              time.Time `json:"at"`
}

// DayRunEvent is published once the batches and invoices of a run are stored.
type DayRunEvent struct {
	RunID            string          `json:"run_id"`
	RunDate          string          `json:"run_date"`
	OrdersProcessed  int             `json:"orders_processed"`
	BlockedOrderIDs  []string        `json:"blocked_order_ids"`
	Batches          int             `json:"batches"`
	Unassigned       int             `json:"unassigned"`
	TotalWeightGrams int64           `json:"total_weight_grams"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	At               time.Time       `json:"at"`
}
