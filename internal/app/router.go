package app

import (
	"quizhub_backend/docs"
	"quizhub_backend/internal/config"
	"quizhub_backend/internal/middleware"

	"quizhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/logout", c.auth.Logout)
		}

		// 答题端无需登录
		public.GET("/quizzes", c.quiz.List)
		public.GET("/quizzes/:id", c.quiz.Get)
		public.POST("/quizzes/:id/submit", c.quiz.Submit)
	}

	// 需要授权的路由
	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/auth/me", c.auth.Me)

		authorized.GET("/quizzes/admin/my-quizzes", c.quiz.MyQuizzes)
		authorized.POST("/quizzes", c.quiz.Create)
		authorized.PUT("/quizzes/:id", c.quiz.Update)
		authorized.DELETE("/quizzes/:id", c.quiz.Delete)
	}
}
