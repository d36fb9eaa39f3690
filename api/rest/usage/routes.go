package usage

import (
	"github.com/gin-gonic/gin"

	"github.com/glamai/server/internal/auth"
	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/usage"
)

func RegisterRoutes(router *gin.RouterGroup, store usage.Store, governor *usage.Governor, tracker *cooldown.Tracker) {
	router.GET("/usage", auth.AuthMiddleware(), GetUsageHandler(store, governor, tracker))
	router.GET("/usage/resources", ListResourcesHandler)
}
