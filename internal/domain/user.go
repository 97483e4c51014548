package domain

import "time"

// User is a registered account. Every user owns exactly one cart,
// created together with the account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CartID       int64     `json:"cartId"`
	CreatedAt    time.Time `json:"createdAt"`
}
