package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artworks-backend/internal/shared/middleware"
	"artworks-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupArtworkRoutes(v1, c)
	}

	return router
}

// ========================================
// ARTWORK ROUTES
// ========================================
func setupArtworkRoutes(v1 *gin.RouterGroup, c *container.Container) {
	artworks := v1.Group("/artworks")
	{
		artworks.GET("", c.ArtworkHandler.Search)
		artworks.GET("/favorites", c.ArtworkHandler.ListFavorites)
		artworks.GET("/subject", c.ArtworkHandler.SearchBySubject)
		artworks.GET("/weight", c.ArtworkHandler.SearchByWeight)
		artworks.GET("/color", c.ArtworkHandler.ColorSearch)
		artworks.GET("/:id", c.ArtworkHandler.GetDetail)
		artworks.GET("/:id/zoom", c.ArtworkHandler.GetZoom)
		artworks.POST("/:id/favorite", c.ArtworkHandler.ToggleFavorite)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
