package service

import (
	"ReflectAI/internal/model"
	"ReflectAI/internal/pkg/consts"
	"ReflectAI/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const moodCountsCacheTTL = 10 * time.Minute

type MoodService interface {
	RecountUser(ctx context.Context, userID string) error
	GetMoodCounts(ctx context.Context, userID string) (*model.MoodCounts, error)
}

type moodServiceImpl struct {
	entryRepo repository.EntryRepo
	userRepo  repository.UserRepo
	cache     Cache
}

func NewMoodService(entryRepo repository.EntryRepo, userRepo repository.UserRepo, cache Cache) MoodService {
	return &moodServiceImpl{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		cache:     cache,
	}
}

// RecountUser 全量重算用户的心情计数并整体覆盖写回。
// 从同一条目集重算永远得到同一结果，因而可以在任何时点安全重试
func (s *moodServiceImpl) RecountUser(ctx context.Context, userID string) error {
	lockKey := consts.MoodRecountLock + userID
	lockOwner := uuid.NewString()
	lock, err := s.cache.TryLock(ctx, lockKey, lockOwner, time.Minute, 3)
	if err != nil {
		return err
	}
	if !lock {
		return UnExpectedError
	}
	defer s.cache.UnLock(ctx, lockKey, lockOwner)

	entries, err := s.entryRepo.GetByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "重算心情计数时拉取条目失败")
	}

	counts := ComputeMoodCounts(entries)

	if err := s.userRepo.SetMoodCounts(ctx, userID, counts); err != nil {
		return errors.Wrap(err, "写回心情计数失败")
	}

	_ = s.cache.DeleteKey(ctx, consts.MoodCountsKey+userID)
	return nil
}

// GetMoodCounts 读取心情计数，redis 缓存优先
func (s *moodServiceImpl) GetMoodCounts(ctx context.Context, userID string) (*model.MoodCounts, error) {
	key := consts.MoodCountsKey + userID

	cached, err := s.cache.GetValue(ctx, key)
	if err == nil && cached != "" {
		var counts model.MoodCounts
		if err := json.Unmarshal([]byte(cached), &counts); err == nil {
			return &counts, nil
		}
	}

	counts, err := s.userRepo.GetMoodCounts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "读取心情计数失败")
	}

	if payload, err := json.Marshal(counts); err == nil {
		_ = s.cache.SetWithExpiration(ctx, key, string(payload), moodCountsCacheTTL)
	}

	return counts, nil
}

// ComputeMoodCounts 按日期去重统计：同一天多条时以时间戳最新的一条为准，
// 非法心情值不计入任何计数器
func ComputeMoodCounts(entries []*model.JournalEntry) *model.MoodCounts {
	latestByDate := make(map[string]*model.JournalEntry, len(entries))
	for _, entry := range entries {
		current, ok := latestByDate[entry.Date]
		if !ok || entry.Timestamp > current.Timestamp {
			latestByDate[entry.Date] = entry
		}
	}

	counts := &model.MoodCounts{}
	for _, entry := range latestByDate {
		switch entry.Mood {
		case model.MoodHappy:
			counts.Happy++
		case model.MoodNeutral:
			counts.Neutral++
		case model.MoodSad:
			counts.Sad++
		}
	}
	return counts
}
