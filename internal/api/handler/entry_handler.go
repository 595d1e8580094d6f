package handler

import (
	"ReflectAI/internal/api/dto"
	"ReflectAI/internal/pkg/response"
	"ReflectAI/internal/service"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	entrySvc service.EntryService
}

func NewEntryHandler(entrySvc service.EntryService) *EntryHandler {
	return &EntryHandler{
		entrySvc: entrySvc,
	}
}

func (s *EntryHandler) CreateEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	var upsertDTO dto.EntryUpsertDTO
	if err := c.ShouldBind(&upsertDTO); err != nil {
		response.Error(c, err)
		return
	}
	id, err := s.entrySvc.CreateEntry(c.Request.Context(), userID, &upsertDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"id": id,
	})
}

func (s *EntryHandler) UpdateEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")
	var upsertDTO dto.EntryUpsertDTO
	if err := c.ShouldBind(&upsertDTO); err != nil {
		response.Error(c, err)
		return
	}
	err := s.entrySvc.UpdateEntry(c.Request.Context(), userID, entryID, &upsertDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) DeleteEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")
	err := s.entrySvc.DeleteEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EntryHandler) GetEntry(c *gin.Context) {
	userID := c.GetString("user_id")
	entryID := c.Param("id")
	if entryID == "" {
		response.Error(c, service.ErrEntryIDEmpty)
		return
	}
	entry, err := s.entrySvc.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entry == nil {
		response.Fail(c, response.NotFound, service.ErrEntryNotFound.Error())
		return
	}
	response.Success(c, entry)
}

func (s *EntryHandler) ListEntries(c *gin.Context) {
	userID := c.GetString("user_id")
	entries := s.entrySvc.ListEntries(c.Request.Context(), userID)
	response.Success(c, entries)
}

func (s *EntryHandler) GetEntriesByDate(c *gin.Context) {
	userID := c.GetString("user_id")
	var queryDTO dto.DateQueryDTO
	if err := c.ShouldBindQuery(&queryDTO); err != nil {
		response.Error(c, err)
		return
	}
	entries := s.entrySvc.GetEntriesByDate(c.Request.Context(), userID, queryDTO.Date)
	response.Success(c, entries)
}

func (s *EntryHandler) HasEntryForDate(c *gin.Context) {
	userID := c.GetString("user_id")
	var queryDTO dto.DateQueryDTO
	if err := c.ShouldBindQuery(&queryDTO); err != nil {
		response.Error(c, err)
		return
	}
	exists := s.entrySvc.HasEntryForDate(c.Request.Context(), userID, queryDTO.Date)
	response.Success(c, map[string]bool{
		"exists": exists,
	})
}

func (s *EntryHandler) GetEntryDatesForRange(c *gin.Context) {
	userID := c.GetString("user_id")
	var queryDTO dto.DateRangeQueryDTO
	if err := c.ShouldBindQuery(&queryDTO); err != nil {
		response.Error(c, err)
		return
	}
	if queryDTO.Start > queryDTO.End {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	dates := s.entrySvc.GetEntryDatesForRange(c.Request.Context(), userID, queryDTO.Start, queryDTO.End)
	response.Success(c, dates)
}
