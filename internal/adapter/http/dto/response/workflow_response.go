package response

import (
	"time"

	"laundry_dispatch/internal/domain/entities"
)

// WorkflowResponse names stages instead of exposing their index.
type WorkflowResponse struct {
	OrderID         string               `json:"order_id"`
	Stage           string               `json:"stage"`
	StageIndex      int                  `json:"stage_index"`
	ProgressPercent float64              `json:"progress_percent"`
	Completed       bool                 `json:"completed"`
	Cancelled       bool                 `json:"cancelled"`
	CompletedAt     map[string]time.Time `json:"completed_at"`
	CancelledAt     *time.Time           `json:"cancelled_at,omitempty"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func FromWorkflow(s entities.OrderWorkflowState) WorkflowResponse {
	completed := make(map[string]time.Time, len(s.CompletedAt))
	for stage, at := range s.CompletedAt {
		completed[stage.String()] = at
	}
	return WorkflowResponse{
		OrderID:         s.OrderID,
		Stage:           s.CurrentStage.String(),
		StageIndex:      int(s.CurrentStage),
		ProgressPercent: s.ProgressPercent(),
		Completed:       s.Completed,
		Cancelled:       s.Cancelled(),
		CompletedAt:     completed,
		CancelledAt:     s.CancelledAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
