package model

import "github.com/shopspring/decimal"

type ItemStatus string

const (
	ItemActive     ItemStatus = "active"
	ItemInactive   ItemStatus = "inactive"
	ItemOutOfStock ItemStatus = "out-of-stock"
)

// Item is one stocked product. Qty is the available stock; Status is set
// independently and is not derived from Qty.
type Item struct {
	ID     int             `json:"id"`
	Name   string          `json:"name" validate:"required"`
	Image  string          `json:"image" validate:"omitempty,imageuri"` // data-URI from the upload widget
	Price  decimal.Decimal `json:"price" validate:"gte=0"`
	Size   string          `json:"size" validate:"required"`
	Qty    int             `json:"qty" validate:"gte=0"`
	Status ItemStatus      `json:"status" validate:"required,oneof=active inactive out-of-stock"`
}
