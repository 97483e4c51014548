package domain

import "time"

// Order is an immutable snapshot of a cart at submission time. Lines and
// total are frozen at creation and never recomputed, even if catalog
// prices change afterwards.
type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	Username   string      `json:"username"`
	TotalCents int64       `json:"totalCents"`
	CreatedAt  time.Time   `json:"createdAt"`
	Lines      []OrderLine `json:"items"`
}

// OrderLine carries the item fields as they were when the order was placed.
type OrderLine struct {
	ItemID         int64  `json:"itemId"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
}
