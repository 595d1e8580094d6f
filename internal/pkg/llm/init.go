package llm

import (
	"ReflectAI/internal/api/config"
	log "log/slog"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client AI大模型客户端，显式构造后注入分析服务
type Client struct {
	model          llms.Model
	httpClient     *resty.Client
	cfg            config.LLMConfig
	analysisPrompt string
}

func NewClient(cfg config.LLMConfig) (*Client, error) {
	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}

	return &Client{
		model:          llm,
		httpClient:     resty.New(),
		cfg:            cfg,
		analysisPrompt: readPrompt(cfg.PromptPath),
	}, nil
}

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "err", err)
		return ""
	}
	return string(data)
}
