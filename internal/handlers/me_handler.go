package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/auth"
	"github.com/shelfstack/bookstore-api/internal/domain/identity"
	"github.com/shelfstack/bookstore-api/internal/dto"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/httpresp"
	"github.com/shelfstack/bookstore-api/internal/middleware"
	"github.com/shelfstack/bookstore-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

type ChangePasswordRequest struct {
	LastPassword    string `json:"last_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

func (h *MeHandler) Profile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load the account.")
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(&user)})
}

// UpdateProfile patches the caller's own record. Acting on any other
// user id is forbidden regardless of role.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	if uint(targetID) != actingID {
		httperr.Forbidden(c, "forbidden", "You can only update your own profile.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	var user models.User
	if err := h.db.First(&user, actingID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load the account.")
		return
	}

	if req.Email != nil && *req.Email != user.Email {
		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id <> ?", *req.Email, user.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "email_conflict", "This email belongs to another account.")
			return
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update the account.")
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(&user)})
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Could not load the account.")
		return
	}

	if !auth.CheckPassword(req.LastPassword, user.PasswordHash) {
		httperr.BadRequest(c, "incorrect_password", "The current password is wrong.")
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		httperr.BadRequest(c, "password_mismatch", "The passwords do not match.")
		return
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	if err := h.db.Model(&user).Update("password_hash", hashed).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not update the password.")
		return
	}

	httpresp.OK(c, gin.H{"message": "password updated"})
}

// ViewUsers lists role=User accounts for admins.
func (h *MeHandler) ViewUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("role = ?", identity.RoleUser).
		Order("id ASC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list accounts.")
		return
	}

	httpresp.List(c, users)
}
