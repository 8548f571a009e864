package entities

// WeighedOrder is the result of the weighing step: the official weight of an order.
type WeighedOrder struct {
	OrderID    string       `json:"order_id" yaml:"order_id" validate:"required"`
	Items      []WeighedLot `json:"items" yaml:"items" validate:"dive"`
	TotalGrams int64        `json:"total_grams" yaml:"total_grams"`
}

// WeighedLot is one weighed type as captured on the scale.
type WeighedLot struct {
	LinenType   string `json:"linen_type" yaml:"linen_type" validate:"required"`
	Quantity    int    `json:"quantity" yaml:"quantity" validate:"gte=0"`
	WeightGrams int64  `json:"weight_grams" yaml:"weight_grams" validate:"gte=0"`
}

// TriageLine is one billable linen type quantity of an order.
type TriageLine struct {
	LinenTypeID string `json:"linen_type_id" yaml:"linen_type_id" validate:"required"`
	WeightGrams int64  `json:"weight_grams" yaml:"weight_grams" validate:"gte=0"`
	PieceCount  int    `json:"piece_count" yaml:"piece_count" validate:"gte=0"`
}

// TriageRecord breaks an order's official weight into billable linen type quantities.
type TriageRecord struct {
	OrderID           string       `json:"order_id" yaml:"order_id" validate:"required"`
	WeighedTotalGrams int64        `json:"weighed_total_grams" yaml:"weighed_total_grams" validate:"gte=0"`
	LineItems         []TriageLine `json:"line_items" yaml:"line_items" validate:"dive"`
}
