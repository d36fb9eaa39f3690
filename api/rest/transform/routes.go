package transform

import (
	"github.com/gin-gonic/gin"

	"github.com/glamai/server/internal/auth"
	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/pipeline"
	"github.com/glamai/server/internal/usage"
)

func RegisterRoutes(router *gin.RouterGroup, p *pipeline.Pipeline, store usage.Store, governor *usage.Governor, tracker *cooldown.Tracker) {
	group := router.Group("/transform")
	group.Use(auth.AuthMiddleware())
	{
		group.POST("", TransformHandler(p, store, governor, tracker))
		group.POST("/recolor", RecolorHandler(p))
		group.POST("/enhance", EnhanceHandler(p))
	}
}
