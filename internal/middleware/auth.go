package middleware

import (
	"net/http"
	"strings"

	"nexivo_backend/internal/auth"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware validates the Bearer token and stashes the identity in
// the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header missing or invalid")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// AdminMiddleware allows only admin tokens through. Runs after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortForbidden(c, "Access denied")
			return
		}
		role, _ := roleVal.(string)
		if models.UserRole(role) != models.UserRoleAdmin {
			abortForbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, empty when the route is
// public.
func GetUserID(c *gin.Context) string {
	id, _ := c.Get(ContextUserIDKey)
	s, _ := id.(string)
	return s
}

func GetRole(c *gin.Context) string {
	role, _ := c.Get(ContextRoleKey)
	s, _ := role.(string)
	return s
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.NewUnauthorizedError(message),
	})
}

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
		Error: apperrors.NewForbiddenError(message),
	})
}
