package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/grabgifts/seo-analyst/internal/api/handlers"
	middlewares "github.com/grabgifts/seo-analyst/internal/middleware"
)

func SetupRouter(analysisHandler *handlers.AnalysisHandler, healthHandler *handlers.HealthHandler) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())

	api := r.Group("/api/v1")
	{
		api.POST("/research", analysisHandler.Research)
		api.POST("/gaps", analysisHandler.Gaps)
		api.GET("/audit", analysisHandler.Audit)
		api.POST("/strategy-update", analysisHandler.StrategyUpdate)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
