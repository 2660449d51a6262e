package main

import (
	"fmt"

	"prestige-properties/internal/handlers"
	"prestige-properties/internal/i18n"
	"prestige-properties/internal/middleware"
	"prestige-properties/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// parse the embedded page templates
func (a *App) setupTemplates() error {
	tmpl, err := views.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	a.Router.SetHTMLTemplate(tmpl)
	return nil
}

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupSiteRoutes()
}

// setupStaticRoutes configures assets and the metrics endpoint
func (a *App) setupStaticRoutes() {
	static := views.Static()
	a.Router.StaticFS("/static", static)
	a.Router.StaticFileFS("/favicon.ico", "logo.png", static)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", a.HealthHandler.Health)
}

// setupSiteRoutes registers the pages once per locale: unprefixed for the default
// locale and under /{code} for the others.
func (a *App) setupSiteRoutes() {
	site := a.Router.Group("", middleware.SessionMiddleware(a.CookieStore, a.SessionState))

	for _, l := range i18n.Supported {
		prefix := ""
		if !l.IsDefault() {
			prefix = "/" + l.Code
		}
		a.registerLocaleRoutes(site.Group(prefix, middleware.LocaleMiddleware(l)))
	}

	site.POST("/scroll", handlers.SaveScroll)

	a.Router.NoRoute(a.Pages.NotFound)
}

func (a *App) registerLocaleRoutes(g *gin.RouterGroup) {
	limit := middleware.RateLimitMiddleware(a.RateLimiter)

	g.GET("", a.HomeHandler.Home)
	g.GET("/properties", a.PropertyHandler.List)
	g.GET("/properties/:slug", a.PropertyHandler.Detail)
	g.POST("/properties/:slug/gallery/:action", a.PropertyHandler.Gallery)
	g.POST("/properties/:slug/inquiry", limit, a.PropertyHandler.Inquiry)
	g.POST("/contact", limit, a.ContactHandler.Submit)
}
