package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/auth"
	"github.com/shelfstack/bookstore-api/internal/config"
	"github.com/shelfstack/bookstore-api/internal/domain/identity"
	"github.com/shelfstack/bookstore-api/internal/dto"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/models"
	"github.com/shelfstack/bookstore-api/internal/resetstore"
	"github.com/shelfstack/bookstore-api/internal/token"
	"github.com/shelfstack/bookstore-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *token.Service
	resets resetstore.Store
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, tokens *token.Service, resets resetstore.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:     db,
		tokens: tokens,
		resets: resets,
		config: cfg,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

// Signup registers a role=User account. The admin entry point is the same
// flow with the role swapped.
func (h *AuthHandler) Signup(c *gin.Context) {
	h.signup(c, identity.RoleUser)
}

func (h *AuthHandler) AdminSignup(c *gin.Context) {
	h.signup(c, identity.RoleAdmin)
}

func (h *AuthHandler) signup(c *gin.Context, role identity.Role) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid signup payload.")
		return
	}

	if h.config.EmailDomainCheck && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	// Exact-match duplicate check; email case is preserved as registered.
	var count int64
	h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "This email is already registered.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": dto.NewUserDTO(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid login payload.")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Email or password is wrong.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not verify credentials.")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is wrong.")
		return
	}

	signed, err := h.tokens.Issue(user.ID, user.Role, token.LoginTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate a session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.NewUserDTO(&user),
		"token": signed,
	})
}

// ForgotPassword issues a short-lived reset token. The email match is
// case-insensitive, unlike signup's duplicate check.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	var user models.User
	if err := h.db.Where("LOWER(email) = LOWER(?)", req.Email).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "No account with this email.")
		return
	}

	signed, jti, err := h.tokens.IssueReset(user.ID, token.ResetTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate a reset token.")
		return
	}

	if err := h.resets.Save(c.Request.Context(), jti, token.ResetTTL); err != nil {
		httperr.Internal(c, "internal_error", "Could not register the reset token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reset_token": signed})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	claims, err := h.tokens.Verify(req.ResetToken)
	if err != nil || claims.JTI == "" {
		httperr.Unauthorized(c, "invalid_or_expired_token", "The reset token is invalid or expired.")
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		httperr.BadRequest(c, "password_mismatch", "The passwords do not match.")
		return
	}

	// One redeem per token. A replay finds the jti already consumed.
	consumed, err := h.resets.Consume(c.Request.Context(), claims.JTI)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not validate the reset token.")
		return
	}
	if !consumed {
		httperr.Unauthorized(c, "invalid_or_expired_token", "The reset token is invalid or expired.")
		return
	}

	var user models.User
	if err := h.db.First(&user, claims.SubjectID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "The account no longer exists.")
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

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

