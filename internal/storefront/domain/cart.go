package domain

import "time"

type CartItem struct {
	ID         int64
	IdentityID int64
	ProductID  int64
	Quantity   int
	Product    *Product // populated on listing
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Favorite struct {
	ID         int64
	IdentityID int64
	ProductID  int64
	Product    *Product
	CreatedAt  time.Time
}
