package handler

import (
	"ReflectAI/internal/pkg/llm"
	"ReflectAI/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type DiagHandler struct {
	llmClient *llm.Client
}

func NewDiagHandler(llmClient *llm.Client) *DiagHandler {
	return &DiagHandler{
		llmClient: llmClient,
	}
}

// ProbeLLM 直连 completion 服务发一次最小请求，返回原始响应，
// 用于上线前验证地址、模型名与密钥
func (s *DiagHandler) ProbeLLM(c *gin.Context) {
	result, err := s.llmClient.Probe(c.Request.Context())
	if err != nil {
		response.Fail(c, response.InternalServerError, err.Error())
		return
	}
	response.Success(c, result)
}
