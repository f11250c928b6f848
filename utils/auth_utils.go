package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/kmch-aqps/ovr-portal/models"
)

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user placed on the context by the
// session middleware, or nil for anonymous requests.
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if u, ok := user.(*models.User); ok {
		return u
	}
	return nil
}

// SetUser attaches the authenticated user to the request context.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(string(UserContextKey), user)
}
