package models

import "time"

// WishlistItem carries no uniqueness constraint on (user, folder, book):
// adding the same book twice creates two rows.
type WishlistItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;index" json:"user_id"`
	FolderID uint `gorm:"not null;index" json:"folder_id"`
	BookID   uint `gorm:"not null;index" json:"book_id"`

	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}
