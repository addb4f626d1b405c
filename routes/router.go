// file: routes/router.go
package routes

import (
	"AWDCTF/controllers"
	"AWDCTF/middlewares"
	"AWDCTF/models"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// --- AWD 插件路由 ---
	// 外部 agent 直接携带题目 token 调用，不走会话鉴权，也不做 CSRF 校验
	awd := r.Group("/plugins/awd")
	{
		awd.GET("/api/scoreboard/:chal_name", controllers.AWDScoreboard)
		awd.GET("/api/update", controllers.AWDUpdate)
		awd.POST("/api/update", controllers.AWDUpdate)
		awd.Static("/assets", "./assets")
	}

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/login", controllers.Login)
		}

		// --- 题目模块路由 ---
		challengeRoutes := apiV1.Group("/challenges")
		{
			// 公开接口
			challengeRoutes.GET("", controllers.ListChallenges)
			challengeRoutes.GET("/:id", controllers.GetChallengeDetail)

			// 管理员接口
			challengeRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateChallenge)
			challengeRoutes.PUT("/:id/state", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateChallengeState)
			challengeRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteChallenge)
		}

		// --- 队伍分数读取路由（可选带管理员 Token 绕过冻结） ---
		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(middlewares.JWTTryAuthMiddleware())
		{
			teamRoutes.GET("/:id/score", controllers.GetTeamScore)
			teamRoutes.GET("/:id/awards", controllers.GetTeamAwards)
		}

		contestRoutes := apiV1.Group("/contest")
		{
			contestRoutes.GET("/status", controllers.GetContestStatus)
		}

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.PUT("/contest", controllers.UpsertContest)
			adminRoutes.PUT("/config/:key", controllers.SetConfigValue)
		}
	}

	return r
}
