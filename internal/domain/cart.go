package domain

import "time"

// Cart holds a user's pending items. TotalCents always equals the sum of
// the line totals; repositories recompute it inside the same transaction
// as any line mutation.
type Cart struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username,omitempty"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
	Lines      []CartLine `json:"items"`
}

// CartLine is one item in a cart. Quantity models repeated entries;
// UnitPriceCents is the item's current catalog price.
type CartLine struct {
	ItemID         int64  `json:"itemId"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	TotalCents     int64  `json:"totalCents"`
}
