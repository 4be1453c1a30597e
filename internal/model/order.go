package model

import "time"

// Order aggregates line items for a customer.
// Total is a running sum in minor units, maintained in the same database
// transaction as each item insert.
type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderItem is one line of an order. UnitPrice is in minor units.
type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// LineTotal returns the contribution of this item to the order total.
func (i OrderItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}
