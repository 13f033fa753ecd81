package dto

import (
	"github.com/shelfstack/bookstore-api/internal/domain/identity"
	"github.com/shelfstack/bookstore-api/internal/models"
)

// UserDTO is the account shape returned by the API. The password hash
// never leaves the models package through here.
type UserDTO struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Phone string        `json:"phone"`
	Role  identity.Role `json:"role"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
