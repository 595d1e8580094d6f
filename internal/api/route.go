package api

import (
	"ReflectAI/internal/api/middleware"
	"ReflectAI/internal/pkg/logger"
	"ReflectAI/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, cache service.Cache) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(cache))
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateProfile)
			}
		}

		journalGroup := apiGroup.Group("/journal")
		{
			// ws 握手带不了 Authorization 头，鉴权在 handler 内完成
			journalGroup.GET("/feed", group.WsHandler.Feed)

			authGroup := journalGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(cache))
			{
				authGroup.POST("/entries", group.EntryHandler.CreateEntry)
				authGroup.GET("/entries", group.EntryHandler.ListEntries)
				authGroup.GET("/entries/by-date", group.EntryHandler.GetEntriesByDate)
				authGroup.GET("/entries/exists", group.EntryHandler.HasEntryForDate)
				authGroup.GET("/entries/dates", group.EntryHandler.GetEntryDatesForRange)
				authGroup.GET("/entries/:id", group.EntryHandler.GetEntry)
				authGroup.PUT("/entries/:id", group.EntryHandler.UpdateEntry)
				authGroup.DELETE("/entries/:id", group.EntryHandler.DeleteEntry)
			}
		}

		moodGroup := apiGroup.Group("/moods")
		moodGroup.Use(middleware.AuthMiddleware(cache))
		{
			moodGroup.GET("/counts", group.MoodHandler.GetMoodCounts)
			moodGroup.POST("/recount", group.MoodHandler.Recount)
		}

		analysisGroup := apiGroup.Group("/analysis")
		analysisGroup.Use(middleware.AuthMiddleware(cache))
		{
			analysisGroup.POST("/:entry_id", group.AnalysisHandler.AnalyzeEntry)
			analysisGroup.GET("/:entry_id", group.AnalysisHandler.GetAnalysis)
		}

		diagGroup := apiGroup.Group("/diag")
		diagGroup.Use(middleware.AuthMiddleware(cache))
		{
			diagGroup.GET("/llm", group.DiagHandler.ProbeLLM)
		}
	}

	return r
}
