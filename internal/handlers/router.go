package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ramanuj-ai/ramanuj-site/internal/auth"
	"github.com/ramanuj-ai/ramanuj-site/internal/services"
	"github.com/ramanuj-ai/ramanuj-site/internal/uploads"
)

// NewRouter wires every route of the backend onto a gin engine.
func NewRouter(db *gorm.DB, sessions *auth.Manager, store *uploads.Store, frontendURL string, log *zap.Logger) *gin.Engine {
	jobService := services.NewJobService(db)
	contactService := services.NewContactService(db)
	applicationService := services.NewApplicationService(db)
	userService := services.NewUserService(db)

	jobHandler := NewJobHandler(jobService, log)
	contactHandler := NewContactHandler(contactService, log)
	applicationHandler := NewApplicationHandler(jobService, applicationService, store, log)
	authHandler := NewAuthHandler(userService, sessions, log)
	adminHandler := NewAdminHandler(jobService, contactService, applicationService, log)

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{frontendURL}
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	r.GET("/health", HealthCheck)
	r.Static("/uploads", store.Dir)

	api := r.Group("/api")
	{
		api.GET("/jobs", jobHandler.List)
		api.POST("/contacts", contactHandler.Create)
		api.POST("/applications", applicationHandler.Create)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/login", authHandler.LoginPage)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	admin := r.Group("/admin", sessions.RequireAdmin())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/jobs", adminHandler.ListJobs)
		admin.POST("/jobs", adminHandler.CreateJob)
		admin.DELETE("/jobs/:id", adminHandler.DeleteJob)
		admin.GET("/contacts", adminHandler.ListContacts)
		admin.GET("/applications", adminHandler.ListApplications)
	}

	return r
}
