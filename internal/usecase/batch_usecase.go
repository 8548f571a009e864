package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"
)

var (
	ErrBatchNotFound   = errors.New("batch not found")
	ErrInvalidBatchID  = errors.New("invalid batch id")
	ErrBatchNotPending = errors.New("batch already started")
	ErrBatchNotStarted = errors.New("batch not started")
)

// IBatchUseCase exposes the operator actions on planned batches.
//
// Finishing the last batch of a stage that holds items of an order moves the order's
// workflow to the next stage.
type IBatchUseCase interface {
	ListByRunDate(ctx context.Context, runDate string) ([]entities.Batch, error)
	GetByID(ctx context.Context, id string) (entities.Batch, error)
	Start(ctx context.Context, id string) (entities.Batch, error)
	Finish(ctx context.Context, id string) (entities.Batch, error)
}

type BatchUseCase struct {
	repo     interfaces.IBatchRepository
	workflow IWorkflowUseCase
	logger   *zap.Logger
	now      func() time.Time
}

var _ IBatchUseCase = (*BatchUseCase)(nil)

func NewBatchUseCase(repo interfaces.IBatchRepository, workflow IWorkflowUseCase, logger *zap.Logger) *BatchUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchUseCase{
		repo:     repo,
		workflow: workflow,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *BatchUseCase) ListByRunDate(ctx context.Context, runDate string) ([]entities.Batch, error) {
	runDate = strings.TrimSpace(runDate)
	if _, err := time.Parse(entities.RunDateLayout, runDate); err != nil {
		return nil, ErrInvalidRunDate
	}
	return u.repo.ListByRunDate(ctx, runDate)
}

func (u *BatchUseCase) GetByID(ctx context.Context, id string) (entities.Batch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Batch{}, ErrInvalidBatchID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.ID == "" {
		return entities.Batch{}, ErrBatchNotFound
	}
	return b, nil
}

func (u *BatchUseCase) Start(ctx context.Context, id string) (entities.Batch, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.Status != entities.BatchStatusPending {
		return entities.Batch{}, ErrBatchNotPending
	}
	updated, err := u.repo.UpdateStatus(ctx, b.ID, entities.BatchStatusPending, entities.BatchStatusStarted, u.now())
	if err != nil {
		return entities.Batch{}, err
	}
	if updated.ID == "" {
		// started by someone else since it was read
		return entities.Batch{}, ErrBatchNotPending
	}
	u.logger.Info("[batch][usecase] started", zap.String("batch_id", updated.ID), zap.String("machine_id", updated.MachineID))
	return updated, nil
}

func (u *BatchUseCase) Finish(ctx context.Context, id string) (entities.Batch, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Batch{}, err
	}
	if b.Status != entities.BatchStatusStarted {
		return entities.Batch{}, ErrBatchNotStarted
	}
	updated, err := u.repo.UpdateStatus(ctx, b.ID, entities.BatchStatusStarted, entities.BatchStatusFinished, u.now())
	if err != nil {
		return entities.Batch{}, err
	}
	if updated.ID == "" {
		return entities.Batch{}, ErrBatchNotStarted
	}
	u.logger.Info("[batch][usecase] finished", zap.String("batch_id", updated.ID), zap.String("machine_id", updated.MachineID))

	if err := u.advanceOrders(ctx, updated); err != nil {
		return entities.Batch{}, err
	}
	return updated, nil
}

// advanceOrders moves every order of the batch whose stage batches of the same run are all
// finished.
func (u *BatchUseCase) advanceOrders(ctx context.Context, finished entities.Batch) error {
	target, ok := workflowStageAfter(finished.Stage)
	if !ok || u.workflow == nil {
		return nil
	}
	siblings, err := u.repo.ListByRunDate(ctx, finished.RunDate)
	if err != nil {
		return err
	}

	for _, orderID := range finished.OrderIDs() {
		if !stageDoneForOrder(siblings, finished, orderID) {
			continue
		}
		_, err := u.workflow.AdvanceTo(ctx, orderID, target)
		switch {
		case err == nil:
		case errors.Is(err, ErrWorkflowNotFound), errors.Is(err, ErrWorkflowTerminal):
			u.logger.Warn("[batch][usecase] order workflow not advanced",
				zap.String("order_id", orderID),
				zap.String("batch_id", finished.ID),
				zap.Error(err),
			)
		default:
			return err
		}
	}
	return nil
}

func stageDoneForOrder(batches []entities.Batch, finished entities.Batch, orderID string) bool {
	for _, b := range batches {
		if b.Stage != finished.Stage || b.ID == finished.ID || b.RunID != finished.RunID {
			continue
		}
		if b.Status == entities.BatchStatusFinished {
			continue
		}
		for _, id := range b.OrderIDs() {
			if id == orderID {
				return false
			}
		}
	}
	return true
}

// workflowStageAfter maps a production stage to the workflow stage an order enters once
// all its loads of that stage are done.
func workflowStageAfter(stage entities.StageType) (entities.WorkflowStage, bool) {
	switch stage {
	case entities.StageWasher:
		return entities.WorkflowStageDry, true
	case entities.StageDryer:
		return entities.WorkflowStageFinish, true
	case entities.StageFinisher:
		return entities.WorkflowStagePrepare, true
	}
	return 0, false
}
