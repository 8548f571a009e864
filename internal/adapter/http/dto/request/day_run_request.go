package request

import (
	"strings"
	"time"

	"laundry_dispatch/internal/domain/entities"
)

type ServiceLineItemRequest struct {
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

type OrderRequest struct {
	ID               string                   `json:"id" binding:"required"`
	OrderNumber      string                   `json:"order_number"`
	ClientName       string                   `json:"client_name"`
	Status           string                   `json:"status" binding:"required"`
	CollectionDate   time.Time                `json:"collection_date"`
	ServiceLineItems []ServiceLineItemRequest `json:"service_line_items" binding:"dive"`
}

type WeighedLotRequest struct {
	LinenType   string `json:"linen_type" binding:"required"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
	WeightGrams int64  `json:"weight_grams" binding:"gte=0"`
}

type WeighingRequest struct {
	OrderID string              `json:"order_id" binding:"required"`
	Items   []WeighedLotRequest `json:"items" binding:"required,dive"`
}

type TriageLineRequest struct {
	LinenTypeID string `json:"linen_type_id" binding:"required"`
	WeightGrams int64  `json:"weight_grams" binding:"gte=0"`
	PieceCount  int    `json:"piece_count" binding:"gte=0"`
}

type TriageRequest struct {
	OrderID   string              `json:"order_id" binding:"required"`
	LineItems []TriageLineRequest `json:"line_items" binding:"dive"`
}

// DayRunRequest is the captured day: the orders of the day, the operator selection and the
// weighing and triage records.
type DayRunRequest struct {
	Date             string            `json:"date" binding:"required,datetime=2006-01-02"`
	Orders           []OrderRequest    `json:"orders" binding:"dive"`
	SelectedOrderIDs []string          `json:"selected_order_ids"`
	Weighings        []WeighingRequest `json:"weighings" binding:"dive"`
	Triage           []TriageRequest   `json:"triage" binding:"dive"`
}

func (r DayRunRequest) ToInput() entities.DayInput {
	in := entities.DayInput{
		Date:             strings.TrimSpace(r.Date),
		SelectedOrderIDs: r.SelectedOrderIDs,
	}
	for _, o := range r.Orders {
		order := entities.Order{
			ID:             strings.TrimSpace(o.ID),
			OrderNumber:    o.OrderNumber,
			ClientName:     o.ClientName,
			Status:         entities.OrderStatus(strings.ToLower(strings.TrimSpace(o.Status))),
			CollectionDate: o.CollectionDate,
		}
		for _, sli := range o.ServiceLineItems {
			order.ServiceLineItems = append(order.ServiceLineItems, entities.ServiceLineItem{Type: sli.Type, Quantity: sli.Quantity})
		}
		in.Orders = append(in.Orders, order)
	}
	for _, w := range r.Weighings {
		weighed := entities.WeighedOrder{OrderID: strings.TrimSpace(w.OrderID)}
		for _, lot := range w.Items {
			weighed.Items = append(weighed.Items, entities.WeighedLot{LinenType: lot.LinenType, Quantity: lot.Quantity, WeightGrams: lot.WeightGrams})
		}
		in.Weighings = append(in.Weighings, weighed)
	}
	for _, t := range r.Triage {
		rec := entities.TriageRecord{OrderID: strings.TrimSpace(t.OrderID)}
		for _, l := range t.LineItems {
			rec.LineItems = append(rec.LineItems, entities.TriageLine{
				LinenTypeID: strings.TrimSpace(l.LinenTypeID),
				WeightGrams: l.WeightGrams,
				PieceCount:  l.PieceCount,
			})
		}
		in.Triage = append(in.Triage, rec)
	}
	return in
}
