package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry_dispatch/internal/domain/entities"
)

func TestCheckTolerance(t *testing.T) {
	catalog := testLinenCatalog()

	cases := []struct {
		name      string
		lines     []entities.TriageLine
		wantDev   float64
		wantBlock bool
	}{
		{name: "exact", lines: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 10_000}}, wantDev: 0},
		{name: "4 percent over passes", lines: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 10_400}}, wantDev: 4},
		{name: "6 percent over blocks", lines: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 10_600}}, wantDev: 6, wantBlock: true},
		{name: "5 percent under passes", lines: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 9_500}}, wantDev: -5},
		{name: "6 percent under blocks", lines: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 9_400}}, wantDev: -6, wantBlock: true},
		{
			name: "piece lines count at catalog average",
			lines: []entities.TriageLine{
				{LinenTypeID: typeSheet, WeightGrams: 7_000},
				{LinenTypeID: typeApron, PieceCount: 10},
			},
			wantDev: 0,
		},
		{name: "5.4 percent over blocks", lines: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 10_540}}, wantDev: 5.4, wantBlock: true},
		{
			name: "a weighed piece line counts its own weight",
			lines: []entities.TriageLine{
				{LinenTypeID: typeSheet, WeightGrams: 7_000},
				{LinenTypeID: typeApron, PieceCount: 10, WeightGrams: 3_600},
			},
			wantDev:   6,
			wantBlock: true,
		},
		{
			name:      "unknown types are not counted",
			lines:     []entities.TriageLine{{LinenTypeID: "lt-999", WeightGrams: 10_000}},
			wantDev:   -100,
			wantBlock: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := entities.TriageRecord{OrderID: "o-1", WeighedTotalGrams: 10_000, LineItems: tc.lines}
			dev, err := CheckTolerance(rec, catalog, DefaultTolerancePercent)

			assert.InDelta(t, tc.wantDev, dev, 1e-9)
			if !tc.wantBlock {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrToleranceViolation)
			var tolErr *ToleranceError
			require.True(t, errors.As(err, &tolErr))
			blocked := tolErr.Blocked()
			assert.Equal(t, "o-1", blocked.OrderID)
			assert.Equal(t, int64(10_000), blocked.WeighedGrams)
		})
	}

	t.Run("not weighed", func(t *testing.T) {
		rec := entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 10}}}
		_, err := CheckTolerance(rec, catalog, DefaultTolerancePercent)
		if !errors.Is(err, ErrOrderNotWeighed) {
			t.Fatalf("expected ErrOrderNotWeighed, got %v", err)
		}
	})

	t.Run("negative tolerance", func(t *testing.T) {
		_, err := CheckTolerance(entities.TriageRecord{OrderID: "o-1", WeighedTotalGrams: 1}, catalog, -1)
		if !errors.Is(err, ErrInvalidTolerance) {
			t.Fatalf("expected ErrInvalidTolerance, got %v", err)
		}
	})
}

func TestValidateTriageLines(t *testing.T) {
	cases := []struct {
		name string
		rec  entities.TriageRecord
		want error
	}{
		{name: "ok", rec: entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 1}, {LinenTypeID: typeShirt, PieceCount: 2}}}},
		{name: "blank order", rec: entities.TriageRecord{OrderID: " "}, want: ErrInvalidOrderID},
		{name: "no lines", rec: entities.TriageRecord{OrderID: "o-1"}, want: ErrOrderNotTriaged},
		{name: "no type", rec: entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{WeightGrams: 1}}}, want: ErrInvalidTriageLine},
		{name: "empty line", rec: entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: typeSheet}}}, want: ErrInvalidTriageLine},
		{name: "negative", rec: entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: -1, PieceCount: 1}}}, want: ErrInvalidTriageLine},
		{name: "duplicate type", rec: entities.TriageRecord{OrderID: "o-1", LineItems: []entities.TriageLine{{LinenTypeID: typeSheet, WeightGrams: 1}, {LinenTypeID: typeSheet, WeightGrams: 2}}}, want: ErrDuplicateTriageLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTriageLines(tc.rec)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestItemsFromTriage(t *testing.T) {
	rec := entities.TriageRecord{
		OrderID: "o-1",
		LineItems: []entities.TriageLine{
			{LinenTypeID: typeSheet, WeightGrams: 3_000, PieceCount: 4},
			{LinenTypeID: typeShirt, PieceCount: 3},
			{LinenTypeID: typeTowel, PieceCount: 5},
			{LinenTypeID: "lt-999", PieceCount: 2},
		},
	}

	items := ItemsFromTriage(rec, testLinenCatalog())

	require.Len(t, items, 4)
	assert.Equal(t, entities.LinenItem{OrderID: "o-1", LinenTypeID: typeSheet, LinenTypeName: "Sheet", Category: entities.LinenCategoryFlat, PieceCount: 4, WeightGrams: 3_000}, items[0])
	assert.Equal(t, int64(1_500), items[1].WeightGrams)
	assert.True(t, items[1].EstimatedWeight)
	assert.Equal(t, entities.LinenCategoryShaped, items[1].Category)
	assert.Equal(t, int64(2_000), items[2].WeightGrams)
	assert.Equal(t, entities.DefaultLinenCategory, items[3].Category)
	assert.Equal(t, int64(1_000), items[3].WeightGrams)
}

func TestPrefillTriage(t *testing.T) {
	order := entities.Order{
		ID: "o-1",
		ServiceLineItems: []entities.ServiceLineItem{
			{Type: "drap", Quantity: 3},
			{Type: " DRAP ", Quantity: 2},
			{Type: "serviette", Quantity: 4},
			{Type: "nappe brodée", Quantity: 1},
			{Type: "chemise", Quantity: 0},
		},
	}

	rec := PrefillTriage(order, testLinenCatalog(), 12_000)

	assert.Equal(t, "o-1", rec.OrderID)
	assert.Equal(t, int64(12_000), rec.WeighedTotalGrams)
	assert.Equal(t, []entities.TriageLine{
		{LinenTypeID: typeSheet, PieceCount: 6},
		{LinenTypeID: typeTowel, PieceCount: 4},
	}, rec.LineItems)
}
