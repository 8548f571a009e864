package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"laundry_dispatch/internal/domain/entities"
)

// IDispatchUseCase runs one stage dispatch against the loaded plant configuration,
// without touching storage.
type IDispatchUseCase interface {
	Dispatch(ctx context.Context, stage entities.StageType, items []entities.LinenItem) (entities.StageResult, error)
}

type DispatchUseCase struct {
	planner *DayPlanner
	logger  *zap.Logger
}

var _ IDispatchUseCase = (*DispatchUseCase)(nil)

func NewDispatchUseCase(planner *DayPlanner, logger *zap.Logger) *DispatchUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DispatchUseCase{planner: planner, logger: logger}
}

// ParseStageType accepts machine stage names (washer, dryer, finisher) and their short
// forms (wash, dry, finish).
func ParseStageType(s string) (entities.StageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wash", "washer":
		return entities.StageWasher, nil
	case "dry", "dryer":
		return entities.StageDryer, nil
	case "finish", "finisher":
		return entities.StageFinisher, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStage, s)
}

// Dispatch completes the items from the linen catalog (category, name, estimated weight)
// and runs the stage dispatcher.
func (u *DispatchUseCase) Dispatch(ctx context.Context, stage entities.StageType, items []entities.LinenItem) (entities.StageResult, error) {
	if !stage.IsValid() {
		return entities.StageResult{}, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}
	catalog := u.planner.Plant().Linen
	pool := make([]entities.LinenItem, len(items))
	for i, it := range items {
		if it.WeightGrams < 0 || it.PieceCount < 0 {
			return entities.StageResult{}, fmt.Errorf("%w: item %d has a negative quantity", ErrInvalidTriageLine, i)
		}
		if !it.Category.IsValid() {
			it.Category = catalog.CategoryOf(it.LinenTypeID)
		}
		if it.LinenTypeName == "" {
			if t, ok := catalog.Lookup(it.LinenTypeID); ok {
				it.LinenTypeName = t.Name
			}
		}
		if it.WeightGrams == 0 && it.PieceCount > 0 {
			it.WeightGrams = catalog.EstimateWeightGrams(it.LinenTypeID, it.PieceCount)
			it.EstimatedWeight = true
		}
		pool[i] = it
	}

	res, err := u.planner.DispatchStage(stage, pool)
	if err != nil {
		return entities.StageResult{}, err
	}
	u.logger.Info("[dispatch][usecase] stage dispatched",
		zap.String("stage", string(stage)),
		zap.Int("items", len(pool)),
		zap.Int("batches", len(res.Batches)),
		zap.Int("unassigned", len(res.Unassigned)),
		zap.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}
