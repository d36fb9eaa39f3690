package looks

import (
	"github.com/gin-gonic/gin"

	"github.com/glamai/server/glamai/looks"
	"github.com/glamai/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, repo *looks.Repository) {
	group := router.Group("/looks")
	group.Use(auth.AuthMiddleware())
	{
		group.GET("", ListLooksHandler(repo))
		group.POST("", SaveLookHandler(repo))
		group.GET("/:id", GetLookHandler(repo))
		group.DELETE("/:id", DeleteLookHandler(repo))
	}
}
