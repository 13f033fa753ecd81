package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/domain/identity"
	"github.com/shelfstack/bookstore-api/internal/models"
	"github.com/shelfstack/bookstore-api/internal/token"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware resolves the bearer token to a principal. The subject is
// re-read from the database on every request: a token whose account was
// removed stops working immediately. Invalid and expired tokens both come
// back as a plain 401, no detail leaked.
func AuthMiddleware(svc *token.Service, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := svc.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		var user models.User
		if err := db.First(&user, claims.SubjectID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// RequireRole gates a route group on the closed role enum.
func RequireRole(want identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.MustGet(ContextUserRole).(identity.Role)
		if !ok || identity.RequireRole(role, want) != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
