package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry_dispatch/internal/domain/entities"
)

// Three orders: A (flat, weight-billed), B (shirts, piece-billed, no weight) and
// C whose triage is 6% over its weighing.
func dayRecords() []entities.TriageRecord {
	return []entities.TriageRecord{
		{
			OrderID:           "A",
			WeighedTotalGrams: 40_000,
			LineItems: []entities.TriageLine{
				{LinenTypeID: typeSheet, WeightGrams: 30_000, PieceCount: 40},
				{LinenTypeID: typeTowel, WeightGrams: 10_000, PieceCount: 25},
			},
		},
		{
			OrderID:           "B",
			WeighedTotalGrams: 6_000,
			LineItems:         []entities.TriageLine{{LinenTypeID: typeShirt, PieceCount: 12}},
		},
		{
			OrderID:           "C",
			WeighedTotalGrams: 10_000,
			LineItems:         []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 10_600, PieceCount: 12}},
		},
	}
}

func TestDayPlanner_RunDay(t *testing.T) {
	t.Run("chains wash, dry and finish and prices finalizable orders", func(t *testing.T) {
		p := NewDayPlanner(testPlant())

		res, err := p.RunDay([]string{"A", "B", "C"}, dayRecords())
		require.NoError(t, err)

		// wash: flat group then shaped group, both on the 80 kg washer
		require.Len(t, res.WashBatches(), 2)
		assert.Equal(t, "w-large", res.Wash.Batches[0].MachineID)
		assert.Equal(t, entities.LinenCategoryFlat, res.Wash.Batches[0].Category)
		assert.Equal(t, int64(40_000), res.Wash.Batches[0].TotalLoad)
		assert.Equal(t, progWashSh, res.Wash.Batches[1].ProgramID)
		assert.Equal(t, int64(6_000), res.Wash.Batches[1].TotalLoad)

		// conservation across the chain
		assert.Equal(t, int64(46_000), res.Wash.TotalLoad())
		assert.Equal(t, res.Wash.TotalLoad(), res.Dry.TotalLoad())
		require.Len(t, res.FinishBatches(), 2)
		assert.Equal(t, "cal-1", res.Finish.Batches[0].MachineID)
		assert.Equal(t, int64(65), res.Finish.Batches[0].TotalLoad)
		assert.Equal(t, "press-1", res.Finish.Batches[1].MachineID)
		assert.Equal(t, int64(12), res.Finish.Batches[1].TotalLoad)
		assert.Zero(t, res.UnassignedCount())

		// C is blocked and neither dispatched nor invoiced
		require.Len(t, res.BlockedOrders, 1)
		assert.Equal(t, "C", res.BlockedOrders[0].OrderID)
		assert.InDelta(t, 6.0, res.BlockedOrders[0].DeviationPercent, 1e-9)
		for _, b := range append(res.WashBatches(), res.DryBatches()...) {
			assert.NotContains(t, b.OrderIDs(), "C")
		}
		_, invoiced := res.PerOrderInvoiceAmount["C"]
		assert.False(t, invoiced)

		assert.True(t, decimal.RequireFromString("105").Equal(res.PerOrderInvoiceAmount["A"]), "A = %s", res.PerOrderInvoiceAmount["A"])
		assert.True(t, decimal.RequireFromString("14.4").Equal(res.PerOrderInvoiceAmount["B"]), "B = %s", res.PerOrderInvoiceAmount["B"])
		assert.True(t, decimal.RequireFromString("119.4").Equal(res.DayTotalRevenue), "total = %s", res.DayTotalRevenue)
		assert.Equal(t, int64(46_000), res.DayTotalWeightGrams)

		require.Len(t, res.Invoices, 2)
		assert.Equal(t, "A", res.Invoices[0].ID)
		assert.Equal(t, entities.InvoiceStatusIssued, res.Invoices[0].Status)
		assert.Len(t, res.Invoices[0].Lines, 2)
	})

	t.Run("missing triage aborts the run", func(t *testing.T) {
		p := NewDayPlanner(testPlant())

		_, err := p.RunDay([]string{"A", "X"}, dayRecords())

		if !errors.Is(err, ErrOrderNotTriaged) {
			t.Fatalf("expected ErrOrderNotTriaged, got %v", err)
		}
	})

	t.Run("triage without lines aborts the run", func(t *testing.T) {
		p := NewDayPlanner(testPlant())

		_, err := p.RunDay([]string{"A"}, []entities.TriageRecord{{OrderID: "A", WeighedTotalGrams: 1}})

		if !errors.Is(err, ErrOrderNotTriaged) {
			t.Fatalf("expected ErrOrderNotTriaged, got %v", err)
		}
	})

	t.Run("unweighed order aborts the run", func(t *testing.T) {
		p := NewDayPlanner(testPlant())
		rec := dayRecords()[0]
		rec.WeighedTotalGrams = 0

		_, err := p.RunDay([]string{"A"}, []entities.TriageRecord{rec})

		if !errors.Is(err, ErrOrderNotWeighed) {
			t.Fatalf("expected ErrOrderNotWeighed, got %v", err)
		}
	})

	t.Run("wider tolerance lets C through", func(t *testing.T) {
		p := NewDayPlanner(testPlant(), WithTolerance(10))

		res, err := p.RunDay([]string{"C"}, dayRecords())
		require.NoError(t, err)

		assert.Empty(t, res.BlockedOrders)
		assert.Contains(t, res.PerOrderInvoiceAmount, "C")
	})

	t.Run("empty selection", func(t *testing.T) {
		res, err := NewDayPlanner(testPlant()).RunDay(nil, nil)
		require.NoError(t, err)

		assert.Empty(t, res.WashBatches())
		assert.Empty(t, res.Invoices)
		assert.True(t, res.DayTotalRevenue.IsZero())
	})

	t.Run("unassigned wash items do not reach dry", func(t *testing.T) {
		plant := testPlant()
		plant.Machines = []entities.Machine{
			machine("w-small", entities.StageWasher, 40, progWash),
			machine("d-1", entities.StageDryer, 120, progDry),
		}
		rec := entities.TriageRecord{
			OrderID:           "A",
			WeighedTotalGrams: 90_000,
			LineItems: []entities.TriageLine{
				{LinenTypeID: typeSheet, WeightGrams: 50_000},
				{LinenTypeID: typeTowel, WeightGrams: 40_000},
			},
		}

		res, err := NewDayPlanner(plant).RunDay([]string{"A"}, []entities.TriageRecord{rec})
		require.NoError(t, err)

		require.Len(t, res.Wash.Unassigned, 1)
		assert.Equal(t, typeSheet, res.Wash.Unassigned[0].Item.LinenTypeID)
		assert.Equal(t, int64(40_000), res.Dry.TotalLoad())
		// finishing has no machine left in this plant
		assert.Len(t, res.Finish.Unassigned, 1)
		assert.Equal(t, entities.WarningNoEligibleMachine, res.Finish.Warnings[0].Kind)
		assert.Contains(t, res.PerOrderInvoiceAmount, "A")
	})
}

func TestDayPlanner_DailyRunState(t *testing.T) {
	p := NewDayPlanner(testPlant())

	t.Run("select, weigh, triage, run and reset", func(t *testing.T) {
		state := entities.NewDailyRunState(runDay)

		state, err := p.Select(state, []string{"A", " B ", "A"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, state.SelectedOrderIDs)

		state, err = p.RecordWeighing(state, entities.WeighedOrder{OrderID: "A", Items: []entities.WeighedLot{
			{LinenType: "drap", Quantity: 40, WeightGrams: 30_000},
			{LinenType: "serviette", Quantity: 25, WeightGrams: 10_000},
		}})
		require.NoError(t, err)
		assert.Equal(t, int64(40_000), state.Weighed["A"].TotalGrams)

		state, err = p.RecordWeighing(state, entities.WeighedOrder{OrderID: "B", Items: []entities.WeighedLot{{LinenType: "chemise", Quantity: 12, WeightGrams: 6_000}}})
		require.NoError(t, err)

		recA := dayRecords()[0]
		recA.WeighedTotalGrams = 0
		state, err = p.RecordTriage(state, recA)
		require.NoError(t, err)
		assert.Equal(t, int64(40_000), state.Triage["A"].WeighedTotalGrams)

		state, err = p.RecordTriage(state, dayRecords()[1])
		require.NoError(t, err)

		res, err := p.Run(state)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-16", res.RunDate)
		for _, b := range res.WashBatches() {
			assert.Equal(t, "2026-10-16", b.RunDate)
		}
		assert.Equal(t, "2026-10-16", res.Invoices[0].RunDate)

		summary := p.Summarize(res)
		assert.Equal(t, 2, summary.OrdersProcessed)
		assert.Equal(t, int64(46_000), summary.TotalWeightGrams)

		reset := p.Reset(state)
		assert.Empty(t, reset.SelectedOrderIDs)
		assert.Empty(t, reset.Triage)
		assert.Equal(t, runDay, reset.Date)
		// the previous state is untouched
		assert.Len(t, state.Triage, 2)
	})

	t.Run("steps out of order", func(t *testing.T) {
		state, err := p.Select(entities.NewDailyRunState(runDay), []string{"A"})
		require.NoError(t, err)

		_, err = p.RecordTriage(state, dayRecords()[0])
		assert.ErrorIs(t, err, ErrOrderNotWeighed)

		_, err = p.RecordWeighing(state, entities.WeighedOrder{OrderID: "Z", Items: []entities.WeighedLot{{LinenType: "drap", WeightGrams: 1}}})
		assert.ErrorIs(t, err, ErrOrderNotSelected)

		_, err = p.RecordWeighing(state, entities.WeighedOrder{OrderID: "A", Items: []entities.WeighedLot{{LinenType: "drap", WeightGrams: 0}}})
		assert.ErrorIs(t, err, ErrIncompleteWeighing)

		_, err = p.Select(state, []string{""})
		assert.ErrorIs(t, err, ErrInvalidOrderID)
	})

	t.Run("reselecting drops orders no longer selected", func(t *testing.T) {
		state, _ := p.Select(entities.NewDailyRunState(runDay), []string{"A", "B"})
		state, err := p.RecordWeighing(state, entities.WeighedOrder{OrderID: "B", Items: []entities.WeighedLot{{LinenType: "chemise", WeightGrams: 6_000}}})
		require.NoError(t, err)

		state, err = p.Select(state, []string{"A"})
		require.NoError(t, err)

		assert.NotContains(t, state.Weighed, "B")
	})
}

func TestDayPlanner_SelectOrders(t *testing.T) {
	p := NewDayPlanner(testPlant())
	orders := []entities.Order{
		{ID: "today", Status: entities.OrderStatusCollected, CollectionDate: runDay.Add(9 * time.Hour)},
		{ID: "yesterday", Status: entities.OrderStatusCollected, CollectionDate: runDay.Add(-2 * time.Hour)},
		{ID: "pending", Status: entities.OrderStatusPending, CollectionDate: runDay},
		{ID: "late", Status: entities.OrderStatusCollected, CollectionDate: runDay.Add(23*time.Hour + 59*time.Minute)},
	}

	assert.Equal(t, []string{"today", "late"}, p.SelectOrders(orders, runDay))
}

func TestDayPlanner_DispatchStage(t *testing.T) {
	p := NewDayPlanner(testPlant())

	_, err := p.DispatchStage("ironer", nil)
	assert.ErrorIs(t, err, ErrInvalidStage)

	res, err := p.DispatchStage(entities.StageDryer, []entities.LinenItem{flatItem("o-1", 30)})
	require.NoError(t, err)
	require.Len(t, res.Batches, 1)
	assert.Equal(t, "d-1", res.Batches[0].MachineID)
}

func TestDayPlanner_Prepare(t *testing.T) {
	p := NewDayPlanner(testPlant())
	collected := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	t.Run("selects collected orders and suggests missing triage", func(t *testing.T) {
		in := entities.DayInput{
			Date: "2026-10-16",
			Orders: []entities.Order{
				{ID: "A", Status: entities.OrderStatusCollected, CollectionDate: collected},
				{ID: "B", Status: entities.OrderStatusCollected, CollectionDate: collected,
					ServiceLineItems: []entities.ServiceLineItem{{Type: "chemise", Quantity: 12}}},
				{ID: "D", Status: entities.OrderStatusCollected, CollectionDate: collected.AddDate(0, 0, -1)},
			},
			Weighings: []entities.WeighedOrder{
				{OrderID: "A", Items: []entities.WeighedLot{{LinenType: "drap", WeightGrams: 40_000}}},
				{OrderID: "B", Items: []entities.WeighedLot{{LinenType: "chemise", WeightGrams: 6_000}}},
			},
			Triage: []entities.TriageRecord{dayRecords()[0]},
		}

		state, err := p.Prepare(in)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, state.SelectedOrderIDs)
		assert.Equal(t, "2026-10-16", state.RunDate())
		assert.NotContains(t, state.Triage, "B")
		require.Contains(t, state.SuggestedTriage, "B")
		assert.Equal(t, int64(6_000), state.SuggestedTriage["B"].WeighedTotalGrams)
		assert.Equal(t, []entities.TriageLine{{LinenTypeID: typeShirt, PieceCount: 12}}, state.SuggestedTriage["B"].LineItems)

		_, err = p.Run(state)
		assert.ErrorIs(t, err, ErrOrderNotTriaged)
	})

	t.Run("recording the suggestion makes the order runnable", func(t *testing.T) {
		state, err := p.Prepare(entities.DayInput{
			Date: "2026-10-16",
			Orders: []entities.Order{
				{ID: "B", Status: entities.OrderStatusCollected, CollectionDate: collected,
					ServiceLineItems: []entities.ServiceLineItem{{Type: "chemise", Quantity: 12}}},
			},
			Weighings: []entities.WeighedOrder{
				{OrderID: "B", Items: []entities.WeighedLot{{LinenType: "chemise", WeightGrams: 6_000}}},
			},
		})
		require.NoError(t, err)

		state, err = p.RecordTriage(state, state.SuggestedTriage["B"])
		require.NoError(t, err)
		assert.Empty(t, state.SuggestedTriage)

		res, err := p.Run(state)
		require.NoError(t, err)
		require.Len(t, res.Invoices, 1)
		assert.Equal(t, "14.40", res.Invoices[0].Amount.StringFixed(2))
	})

	t.Run("explicit selection wins", func(t *testing.T) {
		state, err := p.Prepare(entities.DayInput{Date: "2026-10-16", SelectedOrderIDs: []string{"Z"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Z"}, state.SelectedOrderIDs)
	})

	t.Run("invalid date and unselected weighing", func(t *testing.T) {
		_, err := p.Prepare(entities.DayInput{Date: "16/10/2026"})
		assert.ErrorIs(t, err, ErrInvalidRunDate)

		_, err = p.Prepare(entities.DayInput{
			Date:             "2026-10-16",
			SelectedOrderIDs: []string{"A"},
			Weighings:        []entities.WeighedOrder{{OrderID: "B", Items: []entities.WeighedLot{{LinenType: "drap", WeightGrams: 1}}}},
		})
		assert.ErrorIs(t, err, ErrOrderNotSelected)
	})
}
