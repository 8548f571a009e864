package interfaces

import (
	"context"
	"time"

	"laundry_dispatch/internal/domain/entities"
)

// IBatchRepository persists the batches planned by a day run and their operator status.
//
// GetByID returns a zero Batch (empty ID) when the batch does not exist. UpdateStatus moves
// a batch from status `from` to `to` and returns a zero Batch when the batch does not exist
// or is no longer in status `from`.
type IBatchRepository interface {
	SaveAll(ctx context.Context, batches []entities.Batch) error
	GetByID(ctx context.Context, id string) (entities.Batch, error)
	ListByRunDate(ctx context.Context, runDate string) ([]entities.Batch, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.BatchStatus, at time.Time) (entities.Batch, error)
}
