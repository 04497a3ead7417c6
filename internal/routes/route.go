package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/camartes/api/internal/container"
	"github.com/camartes/api/internal/handlers"
	"github.com/camartes/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// The API is consumed by a mobile client with no fixed origin.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "CAMARTES Photography Ecosystem API",
			})
		})

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/send-signup-otp", handlers.SendSignupOtp(container.AuthService))
			authRoutes.POST("/signup", handlers.Signup(container.AuthService))
			authRoutes.POST("/send-otp", handlers.SendLoginOtp(container.AuthService))
			authRoutes.POST("/login", handlers.Login(container.AuthService))
		}

		profileRoutes := api.Group("/profile")
		{
			profileRoutes.POST("/initial-selection", handlers.SaveInitialSelection(container.ProfileService))
			profileRoutes.GET("/:userId", handlers.GetProfile(container.ProfileService))
		}
	}

	return r
}
