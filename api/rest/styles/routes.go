package styles

import (
	"github.com/gin-gonic/gin"

	"github.com/glamai/server/internal/auth"
)

func RegisterRoutes(router *gin.RouterGroup, analyzer Analyzer) {
	// the catalog is public; optional auth attributes error logs when a
	// signed-in client sends its token anyway
	public := router.Group("", auth.OptionalAuthMiddleware())
	public.GET("/styles", ListStylesHandler)
	public.GET("/styles/colors", ListColorsHandler)
	public.GET("/styles/:name/context", GetCulturalContextHandler)

	// recommendations hit the model, so they require a signed-in user
	router.POST("/styles/recommendations", auth.AuthMiddleware(), RecommendHandler(analyzer))
}
