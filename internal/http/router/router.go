// Package router assembles the gin engine: middleware, health check and
// module route registration.
package router

import (
	"context"
	"net/http"

	"leadintake/internal/leads"
	"leadintake/platform/config"
	"leadintake/platform/httpkit"
	"leadintake/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RouterConfig combines the config interfaces needed by the router.
type RouterConfig interface {
	config.HTTPConfig
	config.InternalAuthConfig
	config.AppConfig
}

// New builds the HTTP engine with all routes mounted.
func New(cfg RouterConfig, log *logger.Logger, health HealthChecker, leadsModule *leads.Module) *gin.Engine {
	if cfg.GetEnv() != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(corsMiddleware(cfg))

	engine.GET("/health", func(c *gin.Context) {
		if err := health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "app": cfg.GetAppName()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "app": cfg.GetAppName()})
	})

	// The public surface is open to the internet; keep submissions rate
	// limited per client IP, with the rate and burst as config tunables.
	publicLimiter := httpkit.NewIPRateLimiter(rate.Limit(cfg.GetPublicRateLimit()), cfg.GetPublicRateBurst(), log)
	public := engine.Group("/public")
	public.Use(publicLimiter.RateLimit())

	internal := engine.Group("/api/internal")
	internal.Use(httpkit.InternalAuth(cfg))

	leadsModule.RegisterRoutes(public, internal)

	return engine
}

func corsMiddleware(cfg config.HTTPConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if cfg.GetCORSAllowAll() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.GetCORSOrigins()
	}
	return cors.New(corsConfig)
}
