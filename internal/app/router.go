package app

import (
	"github.com/Shamanthsheni/SmartCareerAI/docs"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 用户
		api.POST("/users", c.user.CreateUser)
		api.GET("/user/:id", c.user.GetUser)
		api.PATCH("/user/:id", c.user.UpdateUser)

		// 测评
		api.POST("/quiz-analysis", c.quiz.SubmitAnalysis)
		api.GET("/quiz-questions", c.quiz.ListQuestions)

		// 职业推荐
		api.GET("/career-recommendations/:userId", c.recommendation.ListByUser)
		api.POST("/generate-recommendations", c.recommendation.Generate)

		// AI问答
		api.POST("/chat-message", c.chat.SendMessage)
		api.GET("/chat-messages/:userId", c.chat.History)

		// 院校目录
		api.GET("/colleges", c.college.List)
		api.GET("/colleges/:id", c.college.Get)

		// 管理端统计
		api.GET("/admin/analytics", c.analytics.Dashboard)
	}
}
