package models

import "time"

type Review struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	BookID uint `gorm:"not null;index" json:"book_id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Detail string  `gorm:"size:2000" json:"detail"`
	Rating float64 `json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
