package llm

import (
	"context"
	"errors"
	log "log/slog"
)

// AnalyzeJournal 对日记正文执行情感分析，返回模型的原始回复文本，
// 结构化解析交给 ParseAnalysis
func (s *Client) AnalyzeJournal(ctx context.Context, content string) (string, error) {
	resp, err := s.fetchModel(ctx, s.analysisPrompt, content, s.cfg.Temperature)
	if err != nil {
		log.ErrorContext(ctx, "日记分析-AI大模型请求失败", "err", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("日记分析-AI大模型返回数据为空")
	}

	log.InfoContext(ctx, "日记分析-AI大模型请求成功")
	return resp.Choices[0].Content, nil
}
