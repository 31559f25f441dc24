package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medclinic-client/internal/models"
	"medclinic-client/internal/utils"
)

const (
	userIDKey     = "userID"
	userRoleKey   = "userRole"
	userActiveKey = "userActive"
)

func abort(c *gin.Context, status int, detail string) {
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		// Set user information in context for downstream handlers
		c.Set(userIDKey, claims.UserID())
		c.Set(userRoleKey, claims.Role)
		c.Set(userActiveKey, claims.Active())

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware for role-based authorization.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(detail string, allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			abort(c, http.StatusInternalServerError, "User role not found in context. AuthMiddleware might be missing.")
			return
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, detail)
	}
}

// GetUserIDFromContext returns the authenticated user's ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := userID.(string)
	return idStr, ok
}

// GetUserRoleFromContext returns the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (models.Role, bool) {
	userRole, exists := c.Get(userRoleKey)
	if !exists {
		return "", false
	}
	role, ok := userRole.(models.Role)
	return role, ok
}
