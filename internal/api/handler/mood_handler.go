package handler

import (
	"ReflectAI/internal/pkg/response"
	"ReflectAI/internal/service"

	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	moodSvc service.MoodService
}

func NewMoodHandler(moodSvc service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodSvc: moodSvc,
	}
}

func (s *MoodHandler) GetMoodCounts(c *gin.Context) {
	userID := c.GetString("user_id")
	counts, err := s.moodSvc.GetMoodCounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

// Recount 手动触发一次全量重算，用于补偿或排障
func (s *MoodHandler) Recount(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := s.moodSvc.RecountUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
