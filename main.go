package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"parlorhub/config"
	"parlorhub/controllers"
	"parlorhub/models"
	"parlorhub/routes"
	"parlorhub/services"
	"parlorhub/storage"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Service{},
		&models.GalleryItem{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.ParlorSettings{},
		&models.NotificationLog{},
	)
}

func main() {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	controllers.Assets = storage.New(uploadDir, baseURL)

	reminders := services.NewReminderService(config.DB)
	if reminders.Enabled() {
		reminders.StartScheduler()
	} else {
		log.Println("Twilio not configured, reminder scheduler disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
