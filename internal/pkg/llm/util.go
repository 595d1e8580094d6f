package llm

import (
	"context"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
)

func (s *Client) fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.InfoContext(ctx, "正在请求AI大模型")
	return s.model.GenerateContent(ctx, messages,
		llms.WithModel(s.cfg.Model),
		llms.WithTemperature(temp),
		llms.WithMaxTokens(s.cfg.MaxTokens),
	)
}
