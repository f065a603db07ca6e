package routes

import (
	"github.com/espranza/server/internal/container"
	"github.com/espranza/server/internal/handlers"
	"github.com/espranza/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "OK",
			"service": "espranza-api",
		})
	})

	api := r.Group("/api")
	{
		// Public routes. Upload stays open: the registration form sends
		// ID cards and payment screenshots before any admin is involved.
		api.POST("/upload", handlers.UploadFile(container.Cloudinary))
		api.POST("/register", handlers.CreateRegistration(container.RegistrationService))
		api.GET("/events", handlers.ListEvents(container.EventService))
		api.GET("/content", handlers.GetContent(container.ContentService))
		api.GET("/team", handlers.ListTeamMembers(container.TeamService))

		api.POST("/admin/login", handlers.AdminLogin(container.AuthService))
	}

	adminAuth := middleware.AdminAuth([]byte(container.Config.AdminJWTSecret), container.Logger)

	adminRoutes := api.Group("/admin")
	adminRoutes.Use(adminAuth)
	{
		adminRoutes.GET("/registrations", handlers.ListRegistrations(container.RegistrationService))
		adminRoutes.POST("/verify-registration", handlers.VerifyRegistration(container.RegistrationService))
	}

	// The replace endpoints are only ever called by the admin panel, so
	// they sit behind the same gate.
	api.POST("/events/update", adminAuth, handlers.UpdateEvents(container.EventService))
	api.POST("/content/update", adminAuth, handlers.UpdateContent(container.ContentService))
	api.POST("/team/update", adminAuth, handlers.UpdateTeamMembers(container.TeamService))

	return r
}
