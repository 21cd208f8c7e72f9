package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"parlorhub/config"
	"parlorhub/controllers"
	"parlorhub/repositories"
	"parlorhub/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// The store-side policy gate: every mutation group below re-resolves
	// the admin grant on each request.
	adminOnly := utils.AdminRequired(func(userID string) bool {
		return repositories.NewRoleRepository(config.DB).IsAdmin(userID)
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/admin-login", controllers.AdminLogin)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)
	}

	api := r.Group("/api")
	{
		// Public storefront reads and submissions
		api.GET("/services", controllers.GetServices)
		api.GET("/gallery", controllers.GetGallery)
		api.GET("/settings", controllers.GetSettings)
		api.POST("/appointments", controllers.CreateAppointment)
		api.POST("/contact", controllers.CreateContactMessage)

		// Admin-gated management
		admin := api.Group("")
		admin.Use(utils.AuthMiddleware(), adminOnly)
		{
			admin.POST("/services", controllers.CreateService)
			admin.PUT("/services/:id", controllers.UpdateService)
			admin.DELETE("/services/:id", controllers.DeleteService)

			admin.POST("/gallery", controllers.CreateGalleryItem)
			admin.PUT("/gallery/:id", controllers.UpdateGalleryItem)
			admin.DELETE("/gallery/:id", controllers.DeleteGalleryItem)

			admin.GET("/appointments", controllers.GetAppointments)
			admin.PUT("/appointments/:id", controllers.UpdateAppointment)
			admin.DELETE("/appointments/:id", controllers.DeleteAppointment)

			admin.GET("/contact", controllers.GetContactMessages)
			admin.PUT("/contact/:id/read", controllers.MarkContactMessageRead)
			admin.DELETE("/contact/:id", controllers.DeleteContactMessage)

			admin.PUT("/settings", controllers.UpdateSettings)

			admin.GET("/dashboard", controllers.GetDashboardOverview)

			admin.POST("/uploads/:bucket", controllers.UploadAsset)
		}
	}

	// Uploaded assets are served straight off disk.
	if controllers.Assets != nil {
		r.Static("/uploads", controllers.Assets.Root())
	}

	return r
}
