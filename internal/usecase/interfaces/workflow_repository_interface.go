package interfaces

import (
	"context"

	"laundry_dispatch/internal/domain/entities"
)

// IWorkflowStateRepository stores one OrderWorkflowState per order.
//
// Get returns a zero state (empty OrderID) when the order never entered the workflow.
type IWorkflowStateRepository interface {
	Get(ctx context.Context, orderID string) (entities.OrderWorkflowState, error)
	Save(ctx context.Context, state entities.OrderWorkflowState) error
}
