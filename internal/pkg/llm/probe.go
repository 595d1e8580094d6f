package llm

import (
	"context"
	log "log/slog"
	"strings"

	"github.com/pkg/errors"
)

// 裸的 chat-completions 请求/响应结构，仅诊断探测使用，
// 正常分析路径走 langchaingo
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// Probe 直连 completion 服务发一次最小请求，验证地址与密钥配置。
// 非 2xx 时把原始错误响应体带回给调用方
func (s *Client) Probe(ctx context.Context) (*ChatCompletionResponse, error) {
	req := &ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []ChatMessage{
			{Role: "user", Content: "Reply with the single word: ok"},
		},
		Temperature: 0,
		MaxTokens:   8,
	}

	var out ChatCompletionResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.ApiKey).
		SetBody(req).
		SetResult(&out).
		Post(strings.TrimSuffix(s.cfg.URL, "/") + "/chat/completions")
	if err != nil {
		log.ErrorContext(ctx, "探测-completion服务请求失败", "err", err)
		return nil, err
	}

	if resp.IsError() {
		return nil, errors.Errorf("completion服务返回 %d: %s", resp.StatusCode(), resp.String())
	}

	return &out, nil
}
