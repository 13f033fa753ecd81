package models

import "time"

// CartItem holds one row per (user, book). Repeat adds increment Quantity
// through the upsert in the cart repository, backed by the composite
// unique index below.
type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"user_id"`
	BookID uint `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
