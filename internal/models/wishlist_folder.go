package models

import "time"

// WishlistFolder groups a user's wishlist items. At most one folder per
// user carries IsDefault=true; the partial unique index enforcing that is
// created in db.Migrate since gorm tags cannot express it.
type WishlistFolder struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	IsDefault bool   `gorm:"not null;default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
}
