package entities

import "time"

// WorkflowStage is an index into the fixed production sequence.
type WorkflowStage int

const (
	WorkflowStageCollect WorkflowStage = iota
	WorkflowStageWeigh
	WorkflowStageVerify
	WorkflowStageWash
	WorkflowStageDry
	WorkflowStageFinish
	WorkflowStagePrepare
)

// WorkflowStageCancelled sits outside the ordered range.
const WorkflowStageCancelled WorkflowStage = -1

// WorkflowStageCount is the number of ordered stages (cancelled excluded).
const WorkflowStageCount = int(WorkflowStagePrepare) + 1

var workflowStageNames = [...]string{
	"collect",
	"weigh",
	"verify",
	"wash",
	"dry",
	"finish",
	"prepare",
}

func (s WorkflowStage) String() string {
	if s == WorkflowStageCancelled {
		return "cancelled"
	}
	if s < 0 || int(s) >= len(workflowStageNames) {
		return "unknown"
	}
	return workflowStageNames[s]
}

func (s WorkflowStage) IsValid() bool {
	return s == WorkflowStageCancelled || (s >= WorkflowStageCollect && s <= WorkflowStagePrepare)
}

// ParseWorkflowStage is the inverse of String.
func ParseWorkflowStage(name string) (WorkflowStage, bool) {
	if name == "cancelled" {
		return WorkflowStageCancelled, true
	}
	for i, n := range workflowStageNames {
		if n == name {
			return WorkflowStage(i), true
		}
	}
	return 0, false
}

// OrderWorkflowState is one order's position in the production sequence.
//
// CurrentStage is the stage the order is in; stages before it are complete.
// Completed is set once the prepare stage itself has been completed.
//
// Storage model (DynamoDB):
//   - PK: order_id
type OrderWorkflowState struct {
	OrderID      string                      `json:"order_id"`
	CurrentStage WorkflowStage               `json:"current_stage"`
	Completed    bool                        `json:"completed"`
	CompletedAt  map[WorkflowStage]time.Time `json:"completed_at"`
	CancelledAt  *time.Time                  `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (s OrderWorkflowState) Cancelled() bool {
	return s.CurrentStage == WorkflowStageCancelled
}

// Terminal reports prepare-complete or cancelled.
func (s OrderWorkflowState) Terminal() bool {
	return s.Cancelled() || s.Completed
}

// ProgressPercent is currentStageIndex / totalStages * 100; a completed order is at 100
// and a cancelled one at 0.
func (s OrderWorkflowState) ProgressPercent() float64 {
	switch {
	case s.Cancelled():
		return 0
	case s.Completed:
		return 100
	}
	return float64(s.CurrentStage) / float64(WorkflowStageCount) * 100
}
