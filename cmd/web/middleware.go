package main

import (
	"time"

	"prestige-properties/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// configure all middleware for the router
func (a *App) setupMiddleware() {
	a.Router.Use(a.setupCORS())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.RequestLogger("/static/", "/favicon.ico", "/health", "/metrics"))
	a.Router.Use(middleware.SecureHeaders(a.Config.Session.Secure))
	a.Router.Use(middleware.ErrorHandler(a.Pages.RenderError))
	a.Router.Use(gin.Recovery())
}

// configure CORS middleware
func (a *App) setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if a.Config.IsProduction() && len(a.Config.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowAllOrigins = false
		corsConfig.AllowOrigins = a.Config.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
