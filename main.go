package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kmch-aqps/ovr-portal/config"
	"github.com/kmch-aqps/ovr-portal/routes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	// Initialize database and mail transport
	db := config.InitDB(cfg)
	mailer := config.NewMailer(cfg)

	// Create a new Gin router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Cookie sessions signed with the process secret
	store := cookie.NewStore(cfg.SessionSecret)
	r.Use(sessions.Sessions("ovr_session", store))

	// Initialize routes
	routes.SetupRoutes(r, db, mailer)

	// Start the server
	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
