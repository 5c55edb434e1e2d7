package app

import (
	"speech_coach_backend/docs"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/middleware"
	"speech_coach_backend/internal/util"
	"speech_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)
	api.GET("/achievements", c.progress.GetAchievements)

	// 以下接口依赖匿名会话
	sessioned := api.Group("")
	sessioned.Use(middleware.SessionMiddleware(cfg.Session), middleware.RequireSession())
	{
		sessioned.GET("/prompt", c.practice.GetPrompt)
		sessioned.POST("/feedback", c.practice.SubmitFeedback)
		sessioned.POST("/learn-word", c.practice.LearnWord)
		sessioned.GET("/progress", c.progress.GetProgress)
		sessioned.GET("/vocabulary", c.progress.GetVocabulary)
	}

	router.NoRoute(util.NotFound)
}
