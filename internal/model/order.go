package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine pairs an item with a quantity. It is a value type: lines only
// exist inside a cart or an order, never on their own.
type OrderLine struct {
	ItemID   int `json:"item_id" validate:"required"`
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// Order is a placed order. TotalAmount is the sum of price*quantity at
// placement time and is never recomputed afterwards; later price edits leave
// past orders untouched.
type Order struct {
	ID          string          `json:"id"`
	OrderDate   time.Time       `json:"order_date"`
	CustomerID  int             `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Lines       []OrderLine     `json:"order_items"`
}

// OrderLabel formats the sequential label for orders placed through the cart.
func OrderLabel(seq int) string {
	return fmt.Sprintf("ORD-%04d", seq)
}
