package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kmch-aqps/ovr-portal/models"
	"github.com/kmch-aqps/ovr-portal/utils"
)

// ReportSender delivers a submitted report to the notification inbox.
type ReportSender interface {
	SendReport(models.Report) error
}

type ReportController struct {
	Sender ReportSender
}

func NewReportController(sender ReportSender) *ReportController {
	return &ReportController{Sender: sender}
}

func (rc *ReportController) ShowForm(c *gin.Context) {
	render(c, http.StatusOK, "submit.html", gin.H{"user": utils.GetUser(c)})
}

// Submit binds the report form and hands it to the sender. The handler
// waits for the transport: success and failure both land back on "/",
// distinguished only by the flash message.
func (rc *ReportController) Submit(c *gin.Context) {
	var report models.Report
	if err := c.ShouldBind(&report); err != nil {
		utils.AddFlash(c, "danger", "Could not read the submitted form")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := rc.Sender.SendReport(report); err != nil {
		utils.AddFlash(c, "danger", fmt.Sprintf("An error occurred while sending the email: %v", err))
	} else {
		utils.AddFlash(c, "success", "Report submitted and email sent successfully!")
	}

	c.Redirect(http.StatusFound, "/")
}
