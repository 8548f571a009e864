package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"laundry_dispatch/internal/domain/entities"
)

// DayPlanner runs one operating day: order selection, weighing and triage bookkeeping,
// the wash → dry → finish dispatch chain and invoice amounts.
//
// It performs no I/O. DailyRunUseCase persists and publishes what it returns.
type DayPlanner struct {
	plant     entities.Plant
	tolerance float64

	wash   *StageDispatcher
	dry    *StageDispatcher
	finish *StageDispatcher
}

type PlannerOption func(*plannerOptions)

type plannerOptions struct {
	tolerance  float64
	dispatcher []DispatcherOption
}

// WithTolerance overrides DefaultTolerancePercent. Negative values are ignored.
func WithTolerance(percent float64) PlannerOption {
	return func(o *plannerOptions) {
		if percent >= 0 {
			o.tolerance = percent
		}
	}
}

// WithDispatcherOptions is applied to the three stage dispatchers.
func WithDispatcherOptions(opts ...DispatcherOption) PlannerOption {
	return func(o *plannerOptions) {
		o.dispatcher = append(o.dispatcher, opts...)
	}
}

func NewDayPlanner(plant entities.Plant, opts ...PlannerOption) *DayPlanner {
	o := plannerOptions{tolerance: DefaultTolerancePercent}
	for _, opt := range opts {
		opt(&o)
	}
	if plant.Linen == nil {
		plant.Linen = entities.NewLinenCatalog(nil, nil, "")
	}
	return &DayPlanner{
		plant:     plant,
		tolerance: o.tolerance,
		wash:      NewStageDispatcher(WashStage, o.dispatcher...),
		dry:       NewStageDispatcher(DryStage, o.dispatcher...),
		finish:    NewStageDispatcher(FinishStage, o.dispatcher...),
	}
}

func (p *DayPlanner) Plant() entities.Plant { return p.plant }

func (p *DayPlanner) TolerancePercent() float64 { return p.tolerance }

// Dispatcher returns the dispatcher of a stage, nil for an unknown stage.
func (p *DayPlanner) Dispatcher(stage entities.StageType) *StageDispatcher {
	switch stage {
	case entities.StageWasher:
		return p.wash
	case entities.StageDryer:
		return p.dry
	case entities.StageFinisher:
		return p.finish
	}
	return nil
}

// DispatchStage runs a single stage against the plant configuration.
func (p *DayPlanner) DispatchStage(stage entities.StageType, items []entities.LinenItem) (entities.StageResult, error) {
	d := p.Dispatcher(stage)
	if d == nil {
		return entities.StageResult{}, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}
	return d.Dispatch(items, p.plant.MachinesFor(stage), p.plant.ProgramsFor(stage)), nil
}

// SelectOrders returns the ids of the orders collected on day, in input order.
func (p *DayPlanner) SelectOrders(orders []entities.Order, day time.Time) []string {
	var ids []string
	for _, o := range orders {
		if o.CollectedOn(day) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Select replaces the selection of the day. Weighing and triage of orders that are no
// longer selected are dropped.
func (p *DayPlanner) Select(state entities.DailyRunState, orderIDs []string) (entities.DailyRunState, error) {
	next := state.Clone()
	next.SelectedOrderIDs = nil
	seen := map[string]bool{}
	for _, id := range orderIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return state, ErrInvalidOrderID
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		next.SelectedOrderIDs = append(next.SelectedOrderIDs, id)
	}
	for id := range next.Weighed {
		if !seen[id] {
			delete(next.Weighed, id)
		}
	}
	for id := range next.Triage {
		if !seen[id] {
			delete(next.Triage, id)
		}
	}
	for id := range next.SuggestedTriage {
		if !seen[id] {
			delete(next.SuggestedTriage, id)
		}
	}
	return next, nil
}

// RecordWeighing stores the official weight of a selected order. Every weighed type needs a
// positive weight; the total is recomputed from the lots.
func (p *DayPlanner) RecordWeighing(state entities.DailyRunState, w entities.WeighedOrder) (entities.DailyRunState, error) {
	if !state.IsSelected(w.OrderID) {
		return state, fmt.Errorf("%w: %s", ErrOrderNotSelected, w.OrderID)
	}
	if len(w.Items) == 0 {
		return state, fmt.Errorf("%w: order %s", ErrIncompleteWeighing, w.OrderID)
	}
	var total int64
	for _, lot := range w.Items {
		if lot.WeightGrams <= 0 {
			return state, fmt.Errorf("%w: order %s type %s", ErrIncompleteWeighing, w.OrderID, lot.LinenType)
		}
		total += lot.WeightGrams
	}
	w.TotalGrams = total

	next := state.Clone()
	w.Items = append([]entities.WeighedLot(nil), w.Items...)
	next.Weighed[w.OrderID] = w
	if rec, ok := next.Triage[w.OrderID]; ok {
		rec.WeighedTotalGrams = total
		next.Triage[w.OrderID] = rec
	}
	return next, nil
}

// RecordTriage stores the triage of a weighed order; the official weight comes from the
// weighing step.
func (p *DayPlanner) RecordTriage(state entities.DailyRunState, rec entities.TriageRecord) (entities.DailyRunState, error) {
	if !state.IsSelected(rec.OrderID) {
		return state, fmt.Errorf("%w: %s", ErrOrderNotSelected, rec.OrderID)
	}
	w, ok := state.Weighed[rec.OrderID]
	if !ok {
		return state, fmt.Errorf("%w: %s", ErrOrderNotWeighed, rec.OrderID)
	}
	if err := ValidateTriageLines(rec); err != nil {
		return state, err
	}
	rec.WeighedTotalGrams = w.TotalGrams
	rec.LineItems = append([]entities.TriageLine(nil), rec.LineItems...)

	next := state.Clone()
	next.Triage[rec.OrderID] = rec
	delete(next.SuggestedTriage, rec.OrderID)
	return next, nil
}

// PrefillTriage builds the starting triage of an order from its collected line items.
func (p *DayPlanner) PrefillTriage(state entities.DailyRunState, order entities.Order) entities.TriageRecord {
	return PrefillTriage(order, p.plant.Linen, state.Weighed[order.ID].TotalGrams)
}

// Prepare replays a whole day through Select, RecordWeighing and RecordTriage. Weighed
// orders left without triage only get a SuggestedTriage entry.
func (p *DayPlanner) Prepare(in entities.DayInput) (entities.DailyRunState, error) {
	date, err := time.Parse(entities.RunDateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return entities.DailyRunState{}, fmt.Errorf("%w: %q", ErrInvalidRunDate, in.Date)
	}
	selected := in.SelectedOrderIDs
	if len(selected) == 0 {
		selected = p.SelectOrders(in.Orders, date)
	}

	state, err := p.Select(entities.NewDailyRunState(date), selected)
	if err != nil {
		return entities.DailyRunState{}, err
	}
	for _, w := range in.Weighings {
		if state, err = p.RecordWeighing(state, w); err != nil {
			return entities.DailyRunState{}, err
		}
	}
	for _, rec := range in.Triage {
		if state, err = p.RecordTriage(state, rec); err != nil {
			return entities.DailyRunState{}, err
		}
	}
	for _, o := range in.Orders {
		if _, done := state.Triage[o.ID]; done || !state.IsSelected(o.ID) {
			continue
		}
		if _, weighed := state.Weighed[o.ID]; !weighed {
			continue
		}
		rec := p.PrefillTriage(state, o)
		if len(rec.LineItems) == 0 {
			continue
		}
		if state.SuggestedTriage == nil {
			state.SuggestedTriage = map[string]entities.TriageRecord{}
		}
		state.SuggestedTriage[o.ID] = rec
	}
	return state, nil
}

// Run is RunDay over the state's selection and recorded triage.
func (p *DayPlanner) Run(state entities.DailyRunState) (entities.DayRunResult, error) {
	res, err := p.RunDay(state.SelectedOrderIDs, state.TriageRecords())
	if err != nil {
		return entities.DayRunResult{}, err
	}
	res.RunDate = state.RunDate()
	for _, stage := range []*entities.StageResult{&res.Wash, &res.Dry, &res.Finish} {
		for i := range stage.Batches {
			stage.Batches[i].RunDate = res.RunDate
		}
	}
	for i := range res.Invoices {
		res.Invoices[i].RunDate = res.RunDate
	}
	return res, nil
}

// RunDay dispatches the triaged items of the selected orders through wash, dry and finish
// and prices every finalizable order.
//
// A selected order without triage lines, or without an official weight, aborts the run
// before anything is dispatched. An order whose triage is outside tolerance is blocked: it is
// reported in BlockedOrders and neither dispatched nor invoiced.
func (p *DayPlanner) RunDay(selectedOrderIDs []string, records []entities.TriageRecord) (entities.DayRunResult, error) {
	byOrder := make(map[string]entities.TriageRecord, len(records))
	for _, r := range records {
		byOrder[r.OrderID] = r
	}

	var ready []entities.TriageRecord
	seen := map[string]bool{}
	for _, id := range selectedOrderIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		rec, ok := byOrder[id]
		if !ok {
			return entities.DayRunResult{}, fmt.Errorf("%w: %s", ErrOrderNotTriaged, id)
		}
		if err := ValidateTriageLines(rec); err != nil {
			return entities.DayRunResult{}, err
		}
		ready = append(ready, rec)
	}

	result := entities.DayRunResult{
		PerOrderInvoiceAmount: map[string]decimal.Decimal{},
		Invoices:              []entities.Invoice{},
		BlockedOrders:         []entities.BlockedOrder{},
		DayTotalRevenue:       decimal.Zero,
	}

	var finalizable []entities.TriageRecord
	for _, rec := range ready {
		_, err := CheckTolerance(rec, p.plant.Linen, p.tolerance)
		var tolErr *ToleranceError
		switch {
		case err == nil:
			finalizable = append(finalizable, rec)
		case errors.As(err, &tolErr):
			result.BlockedOrders = append(result.BlockedOrders, tolErr.Blocked())
		default:
			return entities.DayRunResult{}, err
		}
	}

	var pool []entities.LinenItem
	for _, rec := range finalizable {
		pool = append(pool, ItemsFromTriage(rec, p.plant.Linen)...)
	}

	result.Wash = p.wash.Dispatch(pool, p.plant.MachinesFor(entities.StageWasher), p.plant.ProgramsFor(entities.StageWasher))
	result.Dry = p.dry.Dispatch(result.Wash.Items(), p.plant.MachinesFor(entities.StageDryer), p.plant.ProgramsFor(entities.StageDryer))
	result.Finish = p.finish.Dispatch(result.Dry.Items(), p.plant.MachinesFor(entities.StageFinisher), p.plant.ProgramsFor(entities.StageFinisher))

	for _, rec := range finalizable {
		lines, amount := InvoiceLines(rec, p.plant.Linen)
		result.PerOrderInvoiceAmount[rec.OrderID] = amount
		result.Invoices = append(result.Invoices, entities.Invoice{
			ID:      rec.OrderID,
			OrderID: rec.OrderID,
			Amount:  amount,
			Lines:   lines,
			Status:  entities.InvoiceStatusIssued,
		})
		result.DayTotalRevenue = result.DayTotalRevenue.Add(amount)
		result.DayTotalWeightGrams += rec.WeighedTotalGrams
	}

	return result, nil
}

// Summarize closes the day with the figures shown to the operator.
func (p *DayPlanner) Summarize(result entities.DayRunResult) entities.DaySummary {
	return entities.DaySummary{
		RunDate:          result.RunDate,
		OrdersProcessed:  len(result.Invoices),
		TotalWeightGrams: result.DayTotalWeightGrams,
		TotalRevenue:     result.DayTotalRevenue,
	}
}

// Reset returns an empty state for the same day.
func (p *DayPlanner) Reset(state entities.DailyRunState) entities.DailyRunState {
	return entities.NewDailyRunState(state.Date)
}
