package entities

// LinenCategory groups linen types that share wash/dry/finish programs.
type LinenCategory string

const (
	LinenCategoryFlat   LinenCategory = "flat"
	LinenCategoryShaped LinenCategory = "shaped"
	LinenCategoryOther  LinenCategory = "other"
)

// DefaultLinenCategory is used for items whose linen type is unknown or has no category.
const DefaultLinenCategory = LinenCategoryFlat

func (c LinenCategory) IsValid() bool {
	switch c {
	case LinenCategoryFlat, LinenCategoryShaped, LinenCategoryOther:
		return true
	}
	return false
}

// BillingMode tells how a linen type is invoiced.
type BillingMode string

const (
	BillingModeWeight BillingMode = "weight"
	BillingModePiece  BillingMode = "piece"
)

// DefaultPieceWeightGrams estimates one piece when neither a weighing nor a catalog average exists.
const DefaultPieceWeightGrams int64 = 500

// LinenType is one entry of the linen catalog.
//
// UnitPrice is per kilogram for weight-billed types and per piece otherwise.
type LinenType struct {
	ID                 string        `json:"id" yaml:"id" validate:"required"`
	Code               string        `json:"code" yaml:"code"`
	Name               string        `json:"name" yaml:"name" validate:"required"`
	Category           LinenCategory `json:"category" yaml:"category" validate:"required,oneof=flat shaped other"`
	BillingMode        BillingMode   `json:"billing_mode" yaml:"billing_mode" validate:"required,oneof=weight piece"`
	UnitPrice          float64       `json:"unit_price" yaml:"unit_price" validate:"gte=0"`
	AverageWeightGrams int64         `json:"average_weight_grams" yaml:"average_weight_grams" validate:"gte=0"`
}

// LinenItem is a quantity of one linen type moving through the production pipeline.
type LinenItem struct {
	OrderID       string        `json:"order_id,omitempty" yaml:"order_id"`
	LinenTypeID   string        `json:"linen_type_id" yaml:"linen_type_id" validate:"required"`
	LinenTypeName string        `json:"linen_type_name,omitempty" yaml:"linen_type_name"`
	Category      LinenCategory `json:"category" yaml:"category"`
	PieceCount    int           `json:"piece_count" yaml:"piece_count" validate:"gte=0"`
	WeightGrams   int64         `json:"weight_grams" yaml:"weight_grams" validate:"gte=0"`
	// EstimatedWeight is set when WeightGrams was derived from the piece count.
	EstimatedWeight bool `json:"estimated_weight,omitempty" yaml:"estimated_weight"`
}
