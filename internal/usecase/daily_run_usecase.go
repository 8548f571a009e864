package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laundry_dispatch/internal/domain/entities"
	"laundry_dispatch/internal/usecase/interfaces"
)

// DayRunOutcome is what the service returns for a run: the planner result, the closing
// summary and the emptied state the caller continues with.
type DayRunOutcome struct {
	Result  entities.DayRunResult  `json:"result"`
	Summary entities.DaySummary    `json:"summary"`
	State   entities.DailyRunState `json:"state"`
}

// IDailyRunUseCase runs a day and records its consequences: batches, invoices, workflow
// positions and the completion event.
type IDailyRunUseCase interface {
	Prepare(in entities.DayInput) (entities.DailyRunState, error)
	Run(ctx context.Context, state entities.DailyRunState) (DayRunOutcome, error)
}

type DailyRunUseCase struct {
	planner   *DayPlanner
	batches   interfaces.IBatchRepository
	invoices  IInvoiceUseCase
	workflow  IWorkflowUseCase
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
	runIDs    func() string
}

var _ IDailyRunUseCase = (*DailyRunUseCase)(nil)

func NewDailyRunUseCase(
	planner *DayPlanner,
	batches interfaces.IBatchRepository,
	invoices IInvoiceUseCase,
	workflow IWorkflowUseCase,
	publisher interfaces.IEventPublisher,
	logger *zap.Logger,
) *DailyRunUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyRunUseCase{
		planner:   planner,
		batches:   batches,
		invoices:  invoices,
		workflow:  workflow,
		publisher: publisher,
		logger:    logger,
		runIDs:    uuid.NewString,
	}
}

// Prepare builds the run state of a captured day.
func (u *DailyRunUseCase) Prepare(in entities.DayInput) (entities.DailyRunState, error) {
	return u.planner.Prepare(in)
}

func (u *DailyRunUseCase) Run(ctx context.Context, state entities.DailyRunState) (DayRunOutcome, error) {
	log := u.logger.With(zap.String("run_date", state.RunDate()))
	log.Info("[dayrun][usecase] run start", zap.Int("orders", len(state.SelectedOrderIDs)))

	result, err := u.planner.Run(state)
	if err != nil {
		log.Warn("[dayrun][usecase] run rejected", zap.Error(err))
		return DayRunOutcome{}, err
	}
	result.RunID = u.runIDs()
	log = log.With(zap.String("run_id", result.RunID))
	for _, stage := range []*entities.StageResult{&result.Wash, &result.Dry, &result.Finish} {
		for i := range stage.Batches {
			stage.Batches[i].RunID = result.RunID
		}
	}

	var batches []entities.Batch
	batches = append(batches, result.Wash.Batches...)
	batches = append(batches, result.Dry.Batches...)
	batches = append(batches, result.Finish.Batches...)
	if len(batches) > 0 {
		if err := u.batches.SaveAll(ctx, batches); err != nil {
			log.Error("[dayrun][usecase] batch save failed", zap.Error(err))
			return DayRunOutcome{}, err
		}
	}

	for i, inv := range result.Invoices {
		issued, err := u.invoices.Issue(ctx, inv)
		if errors.Is(err, ErrInvoiceAlreadyExists) {
			log.Warn("[dayrun][usecase] invoice already issued", zap.String("order_id", inv.OrderID))
			continue
		}
		if err != nil {
			log.Error("[dayrun][usecase] invoice issue failed", zap.String("order_id", inv.OrderID), zap.Error(err))
			return DayRunOutcome{}, err
		}
		result.Invoices[i] = issued
	}

	if err := u.moveWorkflows(ctx, result); err != nil {
		return DayRunOutcome{}, err
	}

	summary := u.planner.Summarize(result)
	u.publishCompleted(ctx, result, summary, len(batches))
	log.Info("[dayrun][usecase] run done",
		zap.Int("batches", len(batches)),
		zap.Int("unassigned", result.UnassignedCount()),
		zap.Int("blocked", len(result.BlockedOrders)),
		zap.Int64("total_weight_grams", result.DayTotalWeightGrams),
		zap.String("total_revenue", result.DayTotalRevenue.StringFixed(2)),
	)

	return DayRunOutcome{
		Result:  result,
		Summary: summary,
		State:   u.planner.Reset(state),
	}, nil
}

type workflowTarget struct {
	orderID string
	stage   entities.WorkflowStage
}

// moveWorkflows puts dispatched orders at the wash stage and blocked ones at verify.
func (u *DailyRunUseCase) moveWorkflows(ctx context.Context, result entities.DayRunResult) error {
	if u.workflow == nil {
		return nil
	}
	targets := make([]workflowTarget, 0, len(result.Invoices)+len(result.BlockedOrders))
	for _, inv := range result.Invoices {
		targets = append(targets, workflowTarget{orderID: inv.OrderID, stage: entities.WorkflowStageWash})
	}
	for _, b := range result.BlockedOrders {
		targets = append(targets, workflowTarget{orderID: b.OrderID, stage: entities.WorkflowStageVerify})
	}

	for _, t := range targets {
		if _, err := u.workflow.Enter(ctx, t.orderID); err != nil {
			return err
		}
		_, err := u.workflow.AdvanceTo(ctx, t.orderID, t.stage)
		if errors.Is(err, ErrWorkflowTerminal) {
			u.logger.Warn("[dayrun][usecase] order workflow is terminal", zap.String("order_id", t.orderID))
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (u *DailyRunUseCase) publishCompleted(ctx context.Context, result entities.DayRunResult, summary entities.DaySummary, batches int) {
	if u.publisher == nil {
		return
	}
	blocked := make([]string, 0, len(result.BlockedOrders))
	for _, b := range result.BlockedOrders {
		blocked = append(blocked, b.OrderID)
	}
	payload, err := json.Marshal(entities.DayRunEvent{
		RunID:            result.RunID,
		RunDate:          summary.RunDate,
		OrdersProcessed:  summary.OrdersProcessed,
		BlockedOrderIDs:  blocked,
		Batches:          batches,
		Unassigned:       result.UnassignedCount(),
		TotalWeightGrams: summary.TotalWeightGrams,
		TotalRevenue:     summary.TotalRevenue,
		At:               time.Now().UTC(),
	})
	if err != nil {
		u.logger.Warn("[dayrun][usecase] event encode failed", zap.Error(err))
		return
	}
	if err := u.publisher.Publish(ctx, entities.SubjectDayRunCompleted, payload); err != nil {
		u.logger.Warn("[dayrun][usecase] event publish failed", zap.Error(err))
	}
}
