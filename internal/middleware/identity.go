package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	// GuestCookieName carries the stable guest token that keys the
	// recommendation engine for anonymous visitors.
	GuestCookieName = "cp_session"

	guestCookieMaxAge = 60 * 60 * 24 * 180 // 180 days
)

// Identity resolves the caller's identity for personalization. Logged-in
// users arrive with X-User-ID injected by the gateway after JWT validation;
// anonymous visitors get a stable guest token in a cookie so their searches
// and views still accumulate into preferences.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(UserIDKey, userID)
		} else if token, err := c.Cookie(GuestCookieName); err == nil && token != "" {
			c.Set(UserIDKey, token)
		} else {
			token := uuid.New().String()
			c.SetCookie(GuestCookieName, token, guestCookieMaxAge, "/", "", false, true)
			c.Set(UserIDKey, token)
		}

		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set(UserRoleKey, strings.ToUpper(role))
		}

		c.Next()
	}
}

// GetUserID returns the caller's user id or guest token.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRole returns the caller's role, empty when anonymous.
func GetUserRole(c *gin.Context) string {
	if role, exists := c.Get(UserRoleKey); exists {
		if s, ok := role.(string); ok {
			return s
		}
	}
	return ""
}

// RequireRole rejects callers that do not hold one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetUserRole(c)

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error":          "insufficient permissions",
			"roles_required": roles,
		})
		c.Abort()
	}
}
