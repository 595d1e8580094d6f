package job

import (
	"ReflectAI/internal/pkg/consts"
	"ReflectAI/internal/pkg/logger"
	"ReflectAI/internal/pkg/redis"
	"ReflectAI/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// MoodRecountJob 心情计数补偿任务：写路径重算失败的用户会被标进脏集合，
// 这里定期把脏集合清空重算一遍。重算是幂等的，重复执行无副作用
type MoodRecountJob struct {
	moodSvc service.MoodService
	rdb     *redis.Client
}

func NewMoodRecountJob(moodSvc service.MoodService, rdb *redis.Client) *MoodRecountJob {
	return &MoodRecountJob{
		moodSvc: moodSvc,
		rdb:     rdb,
	}
}

func (s *MoodRecountJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 先把脏集合挪到处理中的键，期间新标脏的用户留给下一轮
	processingKey := consts.MoodDirtyKey + ":processing"
	if err := s.rdb.Rename(ctx, consts.MoodDirtyKey, processingKey); err != nil {
		return
	}

	userIDs, err := s.rdb.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "err", err)
		return
	}

	for _, userID := range userIDs {
		if err := s.moodSvc.RecountUser(ctx, userID); err != nil {
			log.ErrorContext(ctx, "recount mood counts error", "user_id", userID, "err", err)
			_ = s.rdb.AddToSet(ctx, consts.MoodDirtyKey, userID)
		}
	}

	if err := s.rdb.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete dirty set error", "err", err)
	}

	log.InfoContext(ctx, "mood recount reconciliation done", "users", len(userIDs))
}
