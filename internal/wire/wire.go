package wire

import (
	"ReflectAI/internal/api"
	"ReflectAI/internal/api/handler"
	"ReflectAI/internal/job"
	"ReflectAI/internal/pkg/cron"
	"ReflectAI/internal/pkg/llm"
	"ReflectAI/internal/pkg/redis"
	"ReflectAI/internal/repository"
	"ReflectAI/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, rdb *redis.Client, llmClient *llm.Client) (*ApplicationContainer, error) {
	entryRepo := repository.NewEntryRepo(db)
	userRepo := repository.NewUserRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)

	userService := service.NewUserService(userRepo, rdb)
	moodService := service.NewMoodService(entryRepo, userRepo, rdb)
	entryService := service.NewEntryService(entryRepo, analysisRepo, moodService, rdb)
	analysisService := service.NewAnalysisService(entryRepo, analysisRepo, llmClient)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		EntryHandler:    handler.NewEntryHandler(entryService),
		MoodHandler:     handler.NewMoodHandler(moodService),
		AnalysisHandler: handler.NewAnalysisHandler(analysisService),
		DiagHandler:     handler.NewDiagHandler(llmClient),
		WsHandler:       handler.NewWsHandler(entryService, rdb),
	}

	router := api.SetupRouter(handlers, rdb)

	moodRecountJob := job.NewMoodRecountJob(moodService, rdb)
	cronMgr := cron.NewCronManager(moodRecountJob)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
