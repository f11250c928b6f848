package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kmch-aqps/ovr-portal/models"
	"github.com/kmch-aqps/ovr-portal/utils"
)

// SessionUserKey is the session entry holding the authenticated user's ID.
const SessionUserKey = "user_id"

// RequireLogin gates protected routes. Anonymous requests are redirected
// to the login page instead of running the handler. A session whose
// user_id no longer resolves against the store is treated as anonymous
// and cleared.
func RequireLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionUserKey).(uint)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			session.Delete(SessionUserKey)
			session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		utils.SetUser(c, &user)
		c.Next()
	}
}
