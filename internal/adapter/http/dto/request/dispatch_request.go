package request

import (
	"errors"
	"strings"

	"laundry_dispatch/internal/domain/entities"
)

var (
	ErrEmptyItemPool = errors.New("dispatch needs at least one item")
)

type DispatchItemRequest struct {
	OrderID     string `json:"order_id"`
	LinenTypeID string `json:"linen_type_id" binding:"required"`
	Category    string `json:"category"`
	PieceCount  int    `json:"piece_count" binding:"gte=0"`
	WeightGrams int64  `json:"weight_grams" binding:"gte=0"`
}

// DispatchRequest is the item pool of a stateless stage dispatch. Missing categories and
// weights are completed from the catalog.
type DispatchRequest struct {
	Items []DispatchItemRequest `json:"items" binding:"required,dive"`
}

func (r DispatchRequest) ToItems() ([]entities.LinenItem, error) {
	if len(r.Items) == 0 {
		return nil, ErrEmptyItemPool
	}
	items := make([]entities.LinenItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LinenItem{
			OrderID:     strings.TrimSpace(it.OrderID),
			LinenTypeID: strings.TrimSpace(it.LinenTypeID),
			Category:    entities.LinenCategory(strings.ToLower(strings.TrimSpace(it.Category))),
			PieceCount:  it.PieceCount,
			WeightGrams: it.WeightGrams,
		})
	}
	return items, nil
}
