package service

import (
	"ReflectAI/internal/api/dto"
	"ReflectAI/internal/model"
	"ReflectAI/internal/pkg/consts"
	"ReflectAI/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

type EntryService interface {
	CreateEntry(ctx context.Context, userID string, req *dto.EntryUpsertDTO) (string, error)
	UpdateEntry(ctx context.Context, userID string, entryID string, req *dto.EntryUpsertDTO) error
	DeleteEntry(ctx context.Context, userID string, entryID string) error
	GetEntry(ctx context.Context, userID string, entryID string) (*dto.EntryDTO, error)
	ListEntries(ctx context.Context, userID string) []*dto.EntryDTO
	GetEntriesByDate(ctx context.Context, userID string, date string) []*dto.EntryDTO
	HasEntryForDate(ctx context.Context, userID string, date string) bool
	GetEntryDatesForRange(ctx context.Context, userID string, start string, end string) map[string]bool
}

type entryServiceImpl struct {
	entryRepo    repository.EntryRepo
	analysisRepo repository.AnalysisRepo
	moodSvc      MoodService
	cache        Cache
}

func NewEntryService(
	entryRepo repository.EntryRepo,
	analysisRepo repository.AnalysisRepo,
	moodSvc MoodService,
	cache Cache,
) EntryService {
	return &entryServiceImpl{
		entryRepo:    entryRepo,
		analysisRepo: analysisRepo,
		moodSvc:      moodSvc,
		cache:        cache,
	}
}

// CreateEntry 写入新条目并触发心情重算。重算在写入确认之后执行，
// 重算失败不回滚也不影响本次返回
func (s *entryServiceImpl) CreateEntry(ctx context.Context, userID string, req *dto.EntryUpsertDTO) (string, error) {
	if userID == "" {
		return "", ErrNoCurrentUser
	}

	entry := &model.JournalEntry{}
	if err := copier.Copy(entry, req); err != nil {
		return "", err
	}
	entry.ID = uuid.NewString()
	entry.UserID = userID
	entry.AIAnalysis = consts.AnalysisPlaceholder
	entry.Timestamp = time.Now().UnixMilli()

	if err := s.entryRepo.Insert(ctx, entry); err != nil {
		return "", errors.Wrap(err, "写入日记失败")
	}

	s.afterMutation(ctx, userID)
	return entry.ID, nil
}

// UpdateEntry 以同一 ID 整体覆盖。更新可能改变心情，因此同样触发重算以避免漂移
func (s *entryServiceImpl) UpdateEntry(ctx context.Context, userID string, entryID string, req *dto.EntryUpsertDTO) error {
	if userID == "" {
		return ErrNoCurrentUser
	}
	if entryID == "" {
		return ErrEntryIDEmpty
	}

	existing, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return errors.Wrap(err, "读取日记失败")
	}
	if existing == nil {
		return ErrEntryNotFound
	}
	if existing.UserID != userID {
		return ErrEntryNotOwned
	}

	existing.Title = req.Title
	existing.Content = req.Content
	existing.Mood = req.Mood
	existing.Date = req.Date
	existing.Timestamp = time.Now().UnixMilli()

	if err := s.entryRepo.Update(ctx, existing); err != nil {
		return errors.Wrap(err, "更新日记失败")
	}

	s.afterMutation(ctx, userID)
	return nil
}

// DeleteEntry 删除条目并级联删除其分析记录，随后触发重算。
// 条目删除成功后级联失败只记日志并标脏，不能让已生效的删除报错回去
func (s *entryServiceImpl) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	if userID == "" {
		return ErrNoCurrentUser
	}
	if entryID == "" {
		return ErrEntryIDEmpty
	}

	existing, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return errors.Wrap(err, "读取日记失败")
	}
	if existing == nil {
		return ErrEntryNotFound
	}
	if existing.UserID != userID {
		return ErrEntryNotOwned
	}

	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return errors.Wrap(err, "删除日记失败")
	}
	if err := s.analysisRepo.Delete(ctx, entryID); err != nil {
		log.ErrorContext(ctx, "级联删除分析记录失败，已标脏等待补偿", "entry_id", entryID, "err", err)
		_ = s.cache.AddToSet(ctx, consts.MoodDirtyKey, userID)
	}

	s.afterMutation(ctx, userID)
	return nil
}

// GetEntry 点查，他人条目视作不存在
func (s *entryServiceImpl) GetEntry(ctx context.Context, userID string, entryID string) (*dto.EntryDTO, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, errors.Wrap(err, "读取日记失败")
	}
	if entry == nil || entry.UserID != userID {
		return nil, nil
	}
	return toEntryDTO(entry), nil
}

// ListEntries 一次性读取全部条目。读路径尽力而为：存储故障降级为空列表
func (s *entryServiceImpl) ListEntries(ctx context.Context, userID string) []*dto.EntryDTO {
	entries, err := s.entryRepo.GetByUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "拉取日记列表失败", "user_id", userID, "err", err)
		return []*dto.EntryDTO{}
	}
	return toEntryDTOs(entries)
}

// GetEntriesByDate 按日查询，读故障降级为空列表
func (s *entryServiceImpl) GetEntriesByDate(ctx context.Context, userID string, date string) []*dto.EntryDTO {
	entries, err := s.entryRepo.GetByDate(ctx, userID, date)
	if err != nil {
		log.ErrorContext(ctx, "按日期查询日记失败", "user_id", userID, "date", date, "err", err)
		return []*dto.EntryDTO{}
	}
	return toEntryDTOs(entries)
}

// HasEntryForDate 存在性检查，读故障降级为 false
func (s *entryServiceImpl) HasEntryForDate(ctx context.Context, userID string, date string) bool {
	exists, err := s.entryRepo.ExistsForDate(ctx, userID, date)
	if err != nil {
		log.ErrorContext(ctx, "检查当日日记失败", "user_id", userID, "date", date, "err", err)
		return false
	}
	return exists
}

// GetEntryDatesForRange 全量拉取后在内存里按字典序过滤。
// ISO-8601 日期的字典序即时间序，因此 start <= date <= end 的字符串比较是正确的
func (s *entryServiceImpl) GetEntryDatesForRange(ctx context.Context, userID string, start string, end string) map[string]bool {
	result := make(map[string]bool)

	entries, err := s.entryRepo.GetByUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "拉取日期区间失败", "user_id", userID, "err", err)
		return result
	}

	for _, entry := range entries {
		if entry.Date >= start && entry.Date <= end {
			result[entry.Date] = true
		}
	}
	return result
}

// afterMutation 结构性变更后的收尾：重算心情计数、通知实时订阅方。
// 重算失败记入脏集合，由定时任务补偿重试
func (s *entryServiceImpl) afterMutation(ctx context.Context, userID string) {
	if err := s.moodSvc.RecountUser(ctx, userID); err != nil {
		log.ErrorContext(ctx, "心情计数重算失败，已标脏等待补偿", "user_id", userID, "err", err)
		_ = s.cache.AddToSet(ctx, consts.MoodDirtyKey, userID)
	}

	if err := s.cache.Publish(ctx, consts.JournalFeedKey+userID, "refresh"); err != nil {
		log.WarnContext(ctx, "日记变更广播失败", "user_id", userID, "err", err)
	}
}

func toEntryDTO(entry *model.JournalEntry) *dto.EntryDTO {
	item := &dto.EntryDTO{}
	_ = copier.Copy(item, entry)
	return item
}

func toEntryDTOs(entries []*model.JournalEntry) []*dto.EntryDTO {
	items := make([]*dto.EntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toEntryDTO(entry))
	}
	return items
}
