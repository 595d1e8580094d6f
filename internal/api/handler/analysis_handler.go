package handler

import (
	"ReflectAI/internal/pkg/response"
	"ReflectAI/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisSvc service.AnalysisService
}

func NewAnalysisHandler(analysisSvc service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisSvc: analysisSvc,
	}
}

// AnalyzeEntry 惰性分析：已有结果直接返回，没有才调用 completion 服务
func (s *AnalysisHandler) AnalyzeEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("entry_id")
	analysis, err := s.analysisSvc.AnalyzeEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analysis)
}

func (s *AnalysisHandler) GetAnalysis(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("entry_id")
	analysis, err := s.analysisSvc.GetAnalysis(c.Request.Context(), userID, entryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analysis)
}
