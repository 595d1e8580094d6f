package service

import (
	"ReflectAI/internal/api/dto"
	"ReflectAI/internal/model"
	"ReflectAI/internal/pkg/llm"
	"ReflectAI/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Completer completion 服务的最小抽象，由 pkg/llm 的 Client 实现
type Completer interface {
	AnalyzeJournal(ctx context.Context, content string) (string, error)
}

type AnalysisService interface {
	AnalyzeEntry(ctx context.Context, userID string, entryID string) (*dto.AnalysisDTO, error)
	GetAnalysis(ctx context.Context, userID string, entryID string) (*dto.AnalysisDTO, error)
}

type analysisServiceImpl struct {
	entryRepo    repository.EntryRepo
	analysisRepo repository.AnalysisRepo
	completer    Completer
}

func NewAnalysisService(
	entryRepo repository.EntryRepo,
	analysisRepo repository.AnalysisRepo,
	completer Completer,
) AnalysisService {
	return &analysisServiceImpl{
		entryRepo:    entryRepo,
		analysisRepo: analysisRepo,
		completer:    completer,
	}
}

// AnalyzeEntry 获取条目的 AI 分析。同一条目最多消耗一次 completion 调用：
// 已有结果直接返回。分析失败不影响已保存的条目
func (s *analysisServiceImpl) AnalyzeEntry(ctx context.Context, userID string, entryID string) (*dto.AnalysisDTO, error) {
	if entryID == "" {
		return nil, ErrEntryIDEmpty
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, errors.Wrap(err, "读取日记失败")
	}
	if entry == nil || entry.UserID != userID {
		return nil, ErrEntryNotFound
	}

	existing, err := s.analysisRepo.GetByEntryID(ctx, entryID)
	if err != nil {
		return nil, errors.Wrap(err, "读取分析记录失败")
	}
	if existing != nil {
		return toAnalysisDTO(existing), nil
	}

	raw, err := s.completer.AnalyzeJournal(ctx, entry.Content)
	if err != nil {
		log.ErrorContext(ctx, "completion服务调用失败", "entry_id", entryID, "err", err)
		// 包一层原因，错误码仍按 ErrAnalysisFailed 解析
		return nil, errors.Wrap(ErrAnalysisFailed, err.Error())
	}

	parsed := llm.ParseAnalysis(raw)
	if parsed.Degraded {
		// 解析降级不是错误：结果仍然返回，只是数值字段取默认值
		log.WarnContext(ctx, "AI分析结果解析降级，按原文回退", "entry_id", entryID)
	}

	analysis := &model.AIAnalysis{
		EntryID:   entryID,
		Sentiment: parsed.Sentiment,
		Emotions:  parsed.Emotions,
		Feedback:  parsed.Feedback,
		CreatedAt: time.Now(),
	}

	if err := s.analysisRepo.Save(ctx, analysis); err != nil {
		return nil, errors.Wrap(err, "保存分析记录失败")
	}

	// 通过条目的更新路径把反馈写回条目本身
	entry.AIAnalysis = parsed.Feedback
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "回写条目分析字段失败")
	}

	return toAnalysisDTO(analysis), nil
}

// GetAnalysis 只读已存在的分析记录，未分析过返回空
func (s *analysisServiceImpl) GetAnalysis(ctx context.Context, userID string, entryID string) (*dto.AnalysisDTO, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, errors.Wrap(err, "读取日记失败")
	}
	if entry == nil || entry.UserID != userID {
		return nil, ErrEntryNotFound
	}

	analysis, err := s.analysisRepo.GetByEntryID(ctx, entryID)
	if err != nil {
		return nil, errors.Wrap(err, "读取分析记录失败")
	}
	if analysis == nil {
		return nil, nil
	}
	return toAnalysisDTO(analysis), nil
}

func toAnalysisDTO(analysis *model.AIAnalysis) *dto.AnalysisDTO {
	item := &dto.AnalysisDTO{}
	_ = copier.Copy(item, analysis)
	return item
}
