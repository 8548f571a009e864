package entities

import "time"

// LoadUnit is the unit of Batch.TotalLoad and Batch.Capacity.
type LoadUnit string

const (
	LoadUnitGrams  LoadUnit = "g"
	LoadUnitPieces LoadUnit = "pcs"
)

// LowUtilizationThreshold flags batches for operator attention. It never triggers re-packing.
const LowUtilizationThreshold = 0.6

type BatchStatus string

const (
	BatchStatusPending  BatchStatus = "pending"
	BatchStatusStarted  BatchStatus = "started"
	BatchStatusFinished BatchStatus = "finished"
)

// Batch is one machine load produced by a stage dispatch.
//
// RunID ties the batch to the day run that planned it; a run date re-run twice holds
// batches of both runs.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (run_date-index): run_date
type Batch struct {
	ID                       string        `json:"id"`
	RunID                    string        `json:"run_id,omitempty"`
	RunDate                  string        `json:"run_date,omitempty"`
	Stage                    StageType     `json:"stage"`
	MachineID                string        `json:"machine_id"`
	MachineName              string        `json:"machine_name"`
	ProgramID                string        `json:"program_id"`
	ProgramName              string        `json:"program_name"`
	Category                 LinenCategory `json:"category"`
	Items                    []LinenItem   `json:"items"`
	TotalLoad                int64         `json:"total_load"`
	Capacity                 int64         `json:"capacity"`
	LoadUnit                 LoadUnit      `json:"load_unit"`
	UtilizationRate          float64       `json:"utilization_rate"`
	EstimatedDurationMinutes int           `json:"estimated_duration_minutes"`
	ResourceConsumption      float64       `json:"resource_consumption"`
	Status                   BatchStatus   `json:"status"`
	StartedAt                *time.Time    `json:"started_at,omitempty"`
	FinishedAt               *time.Time    `json:"finished_at,omitempty"`
}

func (b Batch) Underutilized() bool {
	return b.UtilizationRate < LowUtilizationThreshold
}

// OrderIDs lists the distinct orders contributing items, in first-seen order.
func (b Batch) OrderIDs() []string {
	seen := make(map[string]bool, len(b.Items))
	var ids []string
	for _, it := range b.Items {
		if it.OrderID == "" || seen[it.OrderID] {
			continue
		}
		seen[it.OrderID] = true
		ids = append(ids, it.OrderID)
	}
	return ids
}
