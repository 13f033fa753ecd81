package models

import (
	"time"

	"github.com/shelfstack/bookstore-api/internal/domain/identity"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string        `gorm:"size:100;not null" json:"name"`
	Email        string        `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	Phone        string        `gorm:"size:20" json:"phone"`
	Role         identity.Role `gorm:"size:20;default:'User'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
