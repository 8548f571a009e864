package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"
)

var (
	ErrWorkflowNotFound = errors.New("order workflow not found")
	ErrWorkflowTerminal = errors.New("order workflow already completed or cancelled")
	ErrInvalidStage     = errors.New("invalid stage")
)

// IWorkflowUseCase tracks every order through collect → weigh → verify → wash → dry →
// finish → prepare. Transitions only move forward; cancellation is allowed from any
// non-terminal stage.
type IWorkflowUseCase interface {
	Enter(ctx context.Context, orderID string) (entities.OrderWorkflowState, error)
	Advance(ctx context.Context, orderID string) (entities.OrderWorkflowState, error)
	AdvanceTo(ctx context.Context, orderID string, target entities.WorkflowStage) (entities.OrderWorkflowState, error)
	Cancel(ctx context.Context, orderID string) (entities.OrderWorkflowState, error)
	Get(ctx context.Context, orderID string) (entities.OrderWorkflowState, error)
	CurrentStage(ctx context.Context, orderID string) (entities.WorkflowStage, error)
	ProgressPercent(ctx context.Context, orderID string) (float64, error)
}

type WorkflowUseCase struct {
	repo      interfaces.IWorkflowStateRepository
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

// NewWorkflowUseCase accepts a nil publisher (no events) and a nil logger.
func NewWorkflowUseCase(repo interfaces.IWorkflowStateRepository, publisher interfaces.IEventPublisher, logger *zap.Logger) *WorkflowUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkflowUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Enter puts an order at the collect stage. An order already tracked is returned unchanged.
func (u *WorkflowUseCase) Enter(ctx context.Context, orderID string) (entities.OrderWorkflowState, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderWorkflowState{}, ErrInvalidOrderID
	}
	existing, err := u.repo.Get(ctx, orderID)
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	if existing.OrderID != "" {
		return existing, nil
	}

	now := u.now()
	s := entities.OrderWorkflowState{
		OrderID:      orderID,
		CurrentStage: entities.WorkflowStageCollect,
		CompletedAt:  map[entities.WorkflowStage]time.Time{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.OrderWorkflowState{}, err
	}
	u.logger.Info("[workflow][usecase] order entered", zap.String("order_id", orderID))
	return s, nil
}

// Advance completes the current stage. Completing prepare marks the order completed.
func (u *WorkflowUseCase) Advance(ctx context.Context, orderID string) (entities.OrderWorkflowState, error) {
	s, err := u.Get(ctx, orderID)
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	from := s.CurrentStage
	next, err := advanceState(s, u.now())
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	if err := u.repo.Save(ctx, next); err != nil {
		return entities.OrderWorkflowState{}, err
	}
	u.logger.Info("[workflow][usecase] order advanced",
		zap.String("order_id", next.OrderID),
		zap.Stringer("from", from),
		zap.Stringer("to", next.CurrentStage),
		zap.Bool("completed", next.Completed),
	)
	u.publishTransition(ctx, entities.SubjectWorkflowAdvanced, from, next)
	return next, nil
}

// AdvanceTo completes stages until target is the current stage. Targets at or behind the
// current stage leave the order untouched.
func (u *WorkflowUseCase) AdvanceTo(ctx context.Context, orderID string, target entities.WorkflowStage) (entities.OrderWorkflowState, error) {
	if target < entities.WorkflowStageCollect || target > entities.WorkflowStagePrepare {
		return entities.OrderWorkflowState{}, ErrInvalidStage
	}
	s, err := u.Get(ctx, orderID)
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	if s.Terminal() {
		return entities.OrderWorkflowState{}, ErrWorkflowTerminal
	}
	if s.CurrentStage >= target {
		return s, nil
	}

	from := s.CurrentStage
	now := u.now()
	for s.CurrentStage < target {
		if s, err = advanceState(s, now); err != nil {
			return entities.OrderWorkflowState{}, err
		}
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.OrderWorkflowState{}, err
	}
	u.logger.Info("[workflow][usecase] order advanced",
		zap.String("order_id", s.OrderID),
		zap.Stringer("from", from),
		zap.Stringer("to", s.CurrentStage),
	)
	u.publishTransition(ctx, entities.SubjectWorkflowAdvanced, from, s)
	return s, nil
}

func (u *WorkflowUseCase) Cancel(ctx context.Context, orderID string) (entities.OrderWorkflowState, error) {
	s, err := u.Get(ctx, orderID)
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	if s.Terminal() {
		return entities.OrderWorkflowState{}, ErrWorkflowTerminal
	}
	from := s.CurrentStage
	now := u.now()
	s.CurrentStage = entities.WorkflowStageCancelled
	s.CancelledAt = &now
	s.UpdatedAt = now
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.OrderWorkflowState{}, err
	}
	u.logger.Info("[workflow][usecase] order cancelled", zap.String("order_id", s.OrderID), zap.Stringer("from", from))
	u.publishTransition(ctx, entities.SubjectWorkflowCancelled, from, s)
	return s, nil
}

func (u *WorkflowUseCase) Get(ctx context.Context, orderID string) (entities.OrderWorkflowState, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderWorkflowState{}, ErrInvalidOrderID
	}
	s, err := u.repo.Get(ctx, orderID)
	if err != nil {
		return entities.OrderWorkflowState{}, err
	}
	if s.OrderID == "" {
		return entities.OrderWorkflowState{}, ErrWorkflowNotFound
	}
	if s.CompletedAt == nil {
		s.CompletedAt = map[entities.WorkflowStage]time.Time{}
	}
	return s, nil
}

func (u *WorkflowUseCase) CurrentStage(ctx context.Context, orderID string) (entities.WorkflowStage, error) {
	s, err := u.Get(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return s.CurrentStage, nil
}

func (u *WorkflowUseCase) ProgressPercent(ctx context.Context, orderID string) (float64, error) {
	s, err := u.Get(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return s.ProgressPercent(), nil
}

func (u *WorkflowUseCase) publishTransition(ctx context.Context, subject string, from entities.WorkflowStage, s entities.OrderWorkflowState) {
	if u.publisher == nil {
		return
	}
	payload, err := json.Marshal(entities.WorkflowEvent{
		OrderID:         s.OrderID,
		From:            from.String(),
		To:              s.CurrentStage.String(),
		Completed:       s.Completed,
		ProgressPercent: s.ProgressPercent(),
		At:              s.UpdatedAt,
	})
	if err != nil {
		u.logger.Warn("[workflow][usecase] event encode failed", zap.String("order_id", s.OrderID), zap.Error(err))
		return
	}
	if err := u.publisher.Publish(ctx, subject, payload); err != nil {
		u.logger.Warn("[workflow][usecase] event publish failed",
			zap.String("subject", subject),
			zap.String("order_id", s.OrderID),
			zap.Error(err),
		)
	}
}

// advanceState records the completion of the current stage and moves to the next one.
func advanceState(s entities.OrderWorkflowState, now time.Time) (entities.OrderWorkflowState, error) {
	if s.Terminal() {
		return s, ErrWorkflowTerminal
	}
	completed := make(map[entities.WorkflowStage]time.Time, len(s.CompletedAt)+1)
	for k, v := range s.CompletedAt {
		completed[k] = v
	}
	completed[s.CurrentStage] = now
	s.CompletedAt = completed
	if s.CurrentStage == entities.WorkflowStagePrepare {
		s.Completed = true
	} else {
		s.CurrentStage++
	}
	s.UpdatedAt = now
	return s, nil
}
