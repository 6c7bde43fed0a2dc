package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/citypulse/app-announcements/internal/api/handlers"
	"github.com/citypulse/app-announcements/internal/config"
	middlewares "github.com/citypulse/app-announcements/internal/middleware"
	"github.com/citypulse/app-announcements/internal/services"
	"github.com/citypulse/app-announcements/internal/store"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())
	r.Use(middlewares.Identity())

	announcementStore := store.NewAnnouncementStore()
	announcementService := services.NewAnnouncementService(announcementStore)
	recommendationService := services.NewRecommendationService(announcementService, cfg.SearchHistoryLimit)

	if cfg.SeedDemoData {
		announcementService.SeedDefaultData()
		log.Printf("Seeded %d demo announcements", announcementService.Count())
	}

	storageService, err := services.NewStorageService(cfg.UploadDir, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}
	issueService := services.NewIssueService(services.NewReferenceService(), storageService)

	announcementHandler := handlers.NewAnnouncementHandler(announcementService, recommendationService)
	recommendationHandler := handlers.NewRecommendationHandler(announcementService, recommendationService)
	issueHandler := handlers.NewIssueHandler(issueService, cfg.GatewayBaseURL)
	healthHandler := handlers.NewHealthHandler(announcementService)

	api := r.Group("/api/v1")
	{
		api.GET("/announcements", announcementHandler.List)
		api.GET("/announcements/recent", announcementHandler.Recent)
		api.GET("/announcements/latest", announcementHandler.Latest)
		api.GET("/announcements/upcoming", announcementHandler.Upcoming)
		api.GET("/announcements/featured", announcementHandler.Featured)
		api.GET("/announcements/:id", announcementHandler.Get)
		api.GET("/announcements/:id/related", recommendationHandler.Related)
		api.POST("/announcements", middlewares.RequireRole("ADMIN"), announcementHandler.Create)

		api.GET("/categories", announcementHandler.Categories)
		api.GET("/dates", announcementHandler.Dates)

		api.POST("/track/search", recommendationHandler.TrackSearch)
		api.POST("/track/view/:id", recommendationHandler.TrackView)
		api.GET("/recommendations", recommendationHandler.Recommendations)
		api.GET("/trending", recommendationHandler.Trending)
		api.GET("/me/preferences", recommendationHandler.Preferences)
		api.GET("/me/history", recommendationHandler.History)

		api.POST("/issues", issueHandler.Create)
		api.GET("/issues/:reference", issueHandler.Get)
		api.GET("/locations/suggest", issueHandler.SuggestLocations)
	}

	r.GET("/health", healthHandler.Health)
	r.Static("/uploads", cfg.UploadDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
