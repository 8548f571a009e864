package usecase

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"laundry_dispatch/internal/domain/entities"
)

// DefaultTolerancePercent is the accepted gap between the weighed total and the triage sum.
const DefaultTolerancePercent = 5.0

var (
	ErrOrderNotTriaged     = errors.New("order not triaged")
	ErrOrderNotWeighed     = errors.New("order not weighed")
	ErrOrderNotSelected    = errors.New("order not selected for the run")
	ErrIncompleteWeighing  = errors.New("every weighed type needs a positive weight")
	ErrInvalidTriageLine   = errors.New("invalid triage line")
	ErrToleranceViolation  = errors.New("triage weight outside tolerance")
	ErrInvalidTolerance    = errors.New("invalid tolerance percent")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrDuplicateTriageLine = errors.New("duplicate linen type in triage")
)

// ToleranceError carries the figures of a failed reconciliation. It matches ErrToleranceViolation.
type ToleranceError struct {
	OrderID          string
	WeighedGrams     int64
	TriageGrams      int64
	DeviationPercent float64
	TolerancePercent float64
}

func (e *ToleranceError) Error() string {
	return fmt.Sprintf("order %s: triage %d g vs weighed %d g (%.2f%%, tolerance %.2f%%)",
		e.OrderID, e.TriageGrams, e.WeighedGrams, e.DeviationPercent, e.TolerancePercent)
}

func (e *ToleranceError) Unwrap() error { return ErrToleranceViolation }

// Blocked converts the error into the run result entry.
func (e *ToleranceError) Blocked() entities.BlockedOrder {
	return entities.BlockedOrder{
		OrderID:          e.OrderID,
		WeighedGrams:     e.WeighedGrams,
		TriageGrams:      e.TriageGrams,
		DeviationPercent: e.DeviationPercent,
	}
}

// TriageWeightGrams is the weight a triage accounts for: line weights of weight-billed
// types plus piece-billed lines, weighed or estimated from the catalog average. Lines of
// unknown types are not counted.
func TriageWeightGrams(rec entities.TriageRecord, catalog *entities.LinenCatalog) int64 {
	var sum int64
	for _, l := range rec.LineItems {
		t, ok := catalog.Lookup(l.LinenTypeID)
		if !ok {
			continue
		}
		if t.BillingMode == entities.BillingModePiece && l.WeightGrams == 0 {
			sum += catalog.EstimateWeightGrams(l.LinenTypeID, l.PieceCount)
			continue
		}
		sum += l.WeightGrams
	}
	return sum
}

// DeviationPercent is (triageSum - weighed) / weighed * 100. A zero weighed total yields 0.
func DeviationPercent(triageGrams, weighedGrams int64) float64 {
	if weighedGrams <= 0 {
		return 0
	}
	return float64(triageGrams-weighedGrams) * 100 / float64(weighedGrams)
}

// ValidateTriageLines checks the record shape. Every line names a linen type, has a positive
// weight or piece count, and no type appears twice.
func ValidateTriageLines(rec entities.TriageRecord) error {
	if strings.TrimSpace(rec.OrderID) == "" {
		return ErrInvalidOrderID
	}
	if len(rec.LineItems) == 0 {
		return fmt.Errorf("%w: order %s", ErrOrderNotTriaged, rec.OrderID)
	}
	seen := make(map[string]bool, len(rec.LineItems))
	for i, l := range rec.LineItems {
		if strings.TrimSpace(l.LinenTypeID) == "" {
			return fmt.Errorf("%w: order %s line %d has no linen type", ErrInvalidTriageLine, rec.OrderID, i)
		}
		if l.WeightGrams < 0 || l.PieceCount < 0 {
			return fmt.Errorf("%w: order %s line %d has a negative quantity", ErrInvalidTriageLine, rec.OrderID, i)
		}
		if l.WeightGrams == 0 && l.PieceCount == 0 {
			return fmt.Errorf("%w: order %s line %d is empty", ErrInvalidTriageLine, rec.OrderID, i)
		}
		if seen[l.LinenTypeID] {
			return fmt.Errorf("%w: order %s type %s", ErrDuplicateTriageLine, rec.OrderID, l.LinenTypeID)
		}
		seen[l.LinenTypeID] = true
	}
	return nil
}

// CheckTolerance reconciles the triage weight with the official weight. It returns a
// *ToleranceError when |deviation| exceeds tolerancePercent.
func CheckTolerance(rec entities.TriageRecord, catalog *entities.LinenCatalog, tolerancePercent float64) (float64, error) {
	if tolerancePercent < 0 || math.IsNaN(tolerancePercent) {
		return 0, ErrInvalidTolerance
	}
	if rec.WeighedTotalGrams <= 0 {
		return 0, fmt.Errorf("%w: order %s", ErrOrderNotWeighed, rec.OrderID)
	}
	sum := TriageWeightGrams(rec, catalog)
	dev := DeviationPercent(sum, rec.WeighedTotalGrams)
	if math.Abs(dev) > tolerancePercent {
		return dev, &ToleranceError{
			OrderID:          rec.OrderID,
			WeighedGrams:     rec.WeighedTotalGrams,
			TriageGrams:      sum,
			DeviationPercent: dev,
			TolerancePercent: tolerancePercent,
		}
	}
	return dev, nil
}

// ItemsFromTriage flattens triage lines into linen items. Lines without a weight get an
// estimate from the catalog average piece weight.
func ItemsFromTriage(rec entities.TriageRecord, catalog *entities.LinenCatalog) []entities.LinenItem {
	items := make([]entities.LinenItem, 0, len(rec.LineItems))
	for _, l := range rec.LineItems {
		it := entities.LinenItem{
			OrderID:     rec.OrderID,
			LinenTypeID: l.LinenTypeID,
			Category:    catalog.CategoryOf(l.LinenTypeID),
			PieceCount:  l.PieceCount,
			WeightGrams: l.WeightGrams,
		}
		if t, ok := catalog.Lookup(l.LinenTypeID); ok {
			it.LinenTypeName = t.Name
		}
		if it.WeightGrams == 0 && it.PieceCount > 0 {
			it.WeightGrams = catalog.EstimateWeightGrams(l.LinenTypeID, l.PieceCount)
			it.EstimatedWeight = true
		}
		items = append(items, it)
	}
	return items
}

// PrefillTriage resolves the collected service line items through the catalog aliases into
// triage lines with pieces only; the operator then fills in the weights. Names resolving to
// the same type are merged.
func PrefillTriage(order entities.Order, catalog *entities.LinenCatalog, weighedGrams int64) entities.TriageRecord {
	rec := entities.TriageRecord{OrderID: order.ID, WeighedTotalGrams: weighedGrams}
	index := map[string]int{}
	for _, sli := range order.ServiceLineItems {
		id, _ := catalog.ResolveAlias(sli.Type)
		if id == "" || sli.Quantity <= 0 {
			continue
		}
		if i, ok := index[id]; ok {
			rec.LineItems[i].PieceCount += sli.Quantity
			continue
		}
		index[id] = len(rec.LineItems)
		rec.LineItems = append(rec.LineItems, entities.TriageLine{LinenTypeID: id, PieceCount: sli.Quantity})
	}
	return rec
}
