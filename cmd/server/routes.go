package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/glamai/server/api/rest/health"
	"github.com/glamai/server/api/rest/looks"
	"github.com/glamai/server/api/rest/styles"
	"github.com/glamai/server/api/rest/transform"
	"github.com/glamai/server/api/rest/usage"
	apierrors "github.com/glamai/server/internal/errors"
	"github.com/glamai/server/internal/logger"
)

// per-IP request ceiling, a coarse outer guard in front of the per-user
// governor
const ipRateLimit = "120-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(ipRateLimitMiddleware(ipRateLimit))

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		transform.RegisterRoutes(v1, server.pipeline, server.usageStore, server.governor, server.tracker)
		usage.RegisterRoutes(v1, server.usageStore, server.governor, server.tracker)
		styles.RegisterRoutes(v1, server.services.Gemini)
		looks.RegisterRoutes(v1, server.lookRepo)
	}
}

func ipRateLimitMiddleware(format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		logger.Fatal("invalid ip rate limit", "limit", format, "error", err)
	}

	return mgin.NewMiddleware(
		limiter.New(memorystore.NewStore(), rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			apierrors.PolicyDenied(c, apierrors.CodeTooManyRequests, "request rate limit exceeded, slow down")
		}),
	)
}
