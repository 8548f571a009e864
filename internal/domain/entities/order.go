package entities

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusCollected  OrderStatus = "collected"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ServiceLineItem is what the driver captured at collection: a free-text type and a count.
type ServiceLineItem struct {
	Type     string `json:"type" yaml:"type" validate:"required"`
	Quantity int    `json:"quantity" yaml:"quantity" validate:"gte=0"`
}

type Order struct {
	ID               string            `json:"id" yaml:"id" validate:"required"`
	OrderNumber      string            `json:"order_number" yaml:"order_number"`
	ClientName       string            `json:"client_name" yaml:"client_name"`
	Status           OrderStatus       `json:"status" yaml:"status" validate:"required"`
	CollectionDate   time.Time         `json:"collection_date" yaml:"collection_date"`
	ServiceLineItems []ServiceLineItem `json:"service_line_items" yaml:"service_line_items" validate:"dive"`
}

// CollectedOn reports whether the order was collected on the calendar day of day.
func (o Order) CollectedOn(day time.Time) bool {
	if o.Status != OrderStatusCollected {
		return false
	}
	y1, m1, d1 := o.CollectionDate.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
