package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kmch-aqps/ovr-portal/controllers"
	"github.com/kmch-aqps/ovr-portal/middleware"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, sender controllers.ReportSender) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	reportController := controllers.NewReportController(sender)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	// Public routes
	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireLogin(db))
	{
		protected.GET("/submit", reportController.ShowForm)
		protected.POST("/submit", reportController.Submit)
	}
}
