package dto

// EntryUpsertDTO 创建/更新日记的请求体，user_id 一律取自会话而非请求体
type EntryUpsertDTO struct {
	Title   string `json:"title" binding:"max=255"`
	Content string `json:"content" binding:"required"`
	Mood    string `json:"mood" binding:"required,oneof=happy neutral sad"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
}

type EntryDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AIAnalysis string `json:"ai_analysis"`
	Mood       string `json:"mood"`
	Date       string `json:"date"`
	Timestamp  int64  `json:"timestamp"`
}

type DateQueryDTO struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type DateRangeQueryDTO struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}
