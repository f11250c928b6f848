package utils

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash is a one-shot status message shown on the next rendered page.
// Level maps onto the templates' alert classes ("success" or "danger").
type Flash struct {
	Level   string
	Message string
}

func init() {
	// The cookie store serializes flash values with gob.
	gob.Register(Flash{})
}

// AddFlash queues a flash message on the current session.
func AddFlash(c *gin.Context, level, message string) {
	session := sessions.Default(c)
	session.AddFlash(Flash{Level: level, Message: message})
	session.Save()
}

// TakeFlashes drains and returns all queued flash messages.
func TakeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save()
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
