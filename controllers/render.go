package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kmch-aqps/ovr-portal/utils"
)

// render draws an HTML template with any queued flash messages merged
// into the template data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = utils.TakeFlashes(c)
	c.HTML(status, name, data)
}
