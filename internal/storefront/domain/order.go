package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID           int64
	IdentityID   int64
	Total        Cents
	Status       OrderStatus
	CustomerInfo string // JSON document as submitted
	Items        []OrderItem
	Customer     *Identity // populated on admin listing
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     Cents // unit price at time of purchase
	Product   *Product
}

// OrderLine is one requested line of a new order.
type OrderLine struct {
	ProductID int64
	Quantity  int
}
