package usecase

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"laundry_dispatch/internal/domain/entities"
)

// LoadFunc returns the load an item puts on a machine, in the stage's load unit.
type LoadFunc func(entities.LinenItem) int64

// CapacityFunc converts a machine's nominal capacity to the stage's load unit.
type CapacityFunc func(entities.Machine) int64

// StageConfig parameterizes the dispatcher for one production stage.
type StageConfig struct {
	Stage       entities.StageType
	Unit        entities.LoadUnit
	Load        LoadFunc
	Capacity    CapacityFunc
	BatchPrefix string
}

// WeightLoad measures an item by weight in grams.
func WeightLoad(it entities.LinenItem) int64 {
	return max(it.WeightGrams, 0)
}

// PieceLoad measures an item by piece count.
func PieceLoad(it entities.LinenItem) int64 {
	return int64(max(it.PieceCount, 0))
}

// KilogramCapacity converts a capacity in kilograms to grams.
func KilogramCapacity(m entities.Machine) int64 {
	return int64(math.Round(m.Capacity * 1000))
}

// PieceCapacity truncates a capacity in pieces.
func PieceCapacity(m entities.Machine) int64 {
	return int64(math.Floor(m.Capacity))
}

var (
	WashStage = StageConfig{
		Stage:       entities.StageWasher,
		Unit:        entities.LoadUnitGrams,
		Load:        WeightLoad,
		Capacity:    KilogramCapacity,
		BatchPrefix: "wash",
	}
	DryStage = StageConfig{
		Stage:       entities.StageDryer,
		Unit:        entities.LoadUnitGrams,
		Load:        WeightLoad,
		Capacity:    KilogramCapacity,
		BatchPrefix: "dry",
	}
	FinishStage = StageConfig{
		Stage:       entities.StageFinisher,
		Unit:        entities.LoadUnitPieces,
		Load:        PieceLoad,
		Capacity:    PieceCapacity,
		BatchPrefix: "finish",
	}
)

// StageDispatcher partitions an item pool into machine loads for one stage.
//
// The fill is a greedy first-fit-decreasing over machines: largest eligible machine first,
// one forward pass over the remaining items per machine, items are never split. It is
// deterministic for identical inputs and keeps no state between calls except the batch
// id sequence, which restarts on every Dispatch.
type StageDispatcher struct {
	cfg   StageConfig
	newID func(prefix string, seq int) string
}

type DispatcherOption func(*StageDispatcher)

// WithBatchIDs replaces the default "<prefix>-<n>" batch ids.
func WithBatchIDs(fn func(prefix string, seq int) string) DispatcherOption {
	return func(d *StageDispatcher) {
		if fn != nil {
			d.newID = fn
		}
	}
}

func NewStageDispatcher(cfg StageConfig, opts ...DispatcherOption) *StageDispatcher {
	if cfg.Load == nil {
		cfg.Load = WeightLoad
	}
	if cfg.Capacity == nil {
		cfg.Capacity = KilogramCapacity
	}
	if cfg.BatchPrefix == "" {
		cfg.BatchPrefix = string(cfg.Stage)
	}
	d := &StageDispatcher{
		cfg: cfg,
		newID: func(prefix string, seq int) string {
			return fmt.Sprintf("%s-%d", prefix, seq)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *StageDispatcher) Stage() entities.StageType {
	return d.cfg.Stage
}

type categoryGroup struct {
	category entities.LinenCategory
	items    []entities.LinenItem
}

// Dispatch assigns items to machines. Items that cannot be placed are returned in
// StageResult.Unassigned; configuration gaps are reported as warnings. Programs of
// another stage are ignored.
func (d *StageDispatcher) Dispatch(items []entities.LinenItem, machines []entities.Machine, programs []entities.Program) entities.StageResult {
	result := entities.StageResult{
		Stage:      d.cfg.Stage,
		Batches:    []entities.Batch{},
		Unassigned: []entities.UnassignedItem{},
		Warnings:   []entities.DispatchWarning{},
	}
	stagePrograms := d.stagePrograms(programs)
	seq := 0

	for _, g := range groupByCategory(items) {
		program, matched, ok := selectProgram(stagePrograms, g.category)
		if !ok {
			result.Warnings = append(result.Warnings, entities.DispatchWarning{
				Kind:     entities.WarningNoProgram,
				Stage:    d.cfg.Stage,
				Category: g.category,
				Message:  fmt.Sprintf("no %s program configured", d.cfg.Stage),
			})
			result.Unassigned = appendUnassigned(result.Unassigned, g.items, entities.ReasonNoProgram)
			continue
		}
		if !matched {
			result.Warnings = append(result.Warnings, entities.DispatchWarning{
				Kind:      entities.WarningProgramFallback,
				Stage:     d.cfg.Stage,
				Category:  g.category,
				ProgramID: program.ID,
				Message:   fmt.Sprintf("no %s program suits category %q, using %q", d.cfg.Stage, g.category, program.ID),
			})
		}

		eligible := d.eligibleMachines(machines, program.ID)
		if len(eligible) == 0 {
			result.Warnings = append(result.Warnings, entities.DispatchWarning{
				Kind:      entities.WarningNoEligibleMachine,
				Stage:     d.cfg.Stage,
				Category:  g.category,
				ProgramID: program.ID,
				Message:   fmt.Sprintf("no active %s compatible with program %q", d.cfg.Stage, program.ID),
			})
			result.Unassigned = appendUnassigned(result.Unassigned, g.items, entities.ReasonNoEligibleMachine)
			continue
		}

		remaining := g.items
		for _, m := range eligible {
			if len(remaining) == 0 {
				break
			}
			capacity := d.cfg.Capacity(m)

			var loaded, rest []entities.LinenItem
			var load int64
			for _, it := range remaining {
				l := d.cfg.Load(it)
				if load+l <= capacity {
					loaded = append(loaded, it)
					load += l
					continue
				}
				rest = append(rest, it)
			}
			if len(loaded) == 0 {
				// Machines are sorted by capacity, nothing left can fit in a smaller one.
				break
			}

			seq++
			result.Batches = append(result.Batches, entities.Batch{
				ID:                       d.newID(d.cfg.BatchPrefix, seq),
				Stage:                    d.cfg.Stage,
				MachineID:                m.ID,
				MachineName:              m.DisplayName(),
				ProgramID:                program.ID,
				ProgramName:              program.Name,
				Category:                 g.category,
				Items:                    loaded,
				TotalLoad:                load,
				Capacity:                 capacity,
				LoadUnit:                 d.cfg.Unit,
				UtilizationRate:          float64(load) / float64(capacity),
				EstimatedDurationMinutes: program.DurationMinutes,
				ResourceConsumption:      program.ResourceConsumption,
				Status:                   entities.BatchStatusPending,
			})
			remaining = rest
		}
		result.Unassigned = appendUnassigned(result.Unassigned, remaining, entities.ReasonCapacityExhausted)
	}

	return result
}

func (d *StageDispatcher) stagePrograms(programs []entities.Program) []entities.Program {
	out := make([]entities.Program, 0, len(programs))
	for _, p := range programs {
		if p.Stage == "" || p.Stage == d.cfg.Stage {
			out = append(out, p)
		}
	}
	return out
}

// eligibleMachines keeps active machines of the stage compatible with the program,
// largest capacity first; ties keep input order.
func (d *StageDispatcher) eligibleMachines(machines []entities.Machine, programID string) []entities.Machine {
	var out []entities.Machine
	for _, m := range machines {
		if m.Type != d.cfg.Stage || !m.IsActive() || !m.Supports(programID) {
			continue
		}
		if d.cfg.Capacity(m) <= 0 {
			continue
		}
		out = append(out, m)
	}
	slices.SortStableFunc(out, func(a, b entities.Machine) int {
		return cmp.Compare(d.cfg.Capacity(b), d.cfg.Capacity(a))
	})
	return out
}

// selectProgram returns the first program suiting the category. When none does it
// falls back to the first program and matched is false. ok is false only when the
// catalog is empty.
func selectProgram(programs []entities.Program, category entities.LinenCategory) (p entities.Program, matched bool, ok bool) {
	if len(programs) == 0 {
		return entities.Program{}, false, false
	}
	for _, p := range programs {
		if p.Suits(category) {
			return p, true, true
		}
	}
	return programs[0], false, true
}

// groupByCategory keeps categories in first-appearance order and items in input order.
func groupByCategory(items []entities.LinenItem) []categoryGroup {
	var groups []categoryGroup
	index := map[entities.LinenCategory]int{}
	for _, it := range items {
		if !it.Category.IsValid() {
			it.Category = entities.DefaultLinenCategory
		}
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, categoryGroup{category: it.Category})
		}
		groups[i].items = append(groups[i].items, it)
	}
	return groups
}

func appendUnassigned(dst []entities.UnassignedItem, items []entities.LinenItem, reason entities.UnassignedReason) []entities.UnassignedItem {
	for _, it := range items {
		dst = append(dst, entities.UnassignedItem{Item: it, Reason: reason})
	}
	return dst
}
