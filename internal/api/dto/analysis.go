package dto

import "time"

type AnalysisDTO struct {
	EntryID   string             `json:"entry_id"`
	Sentiment float64            `json:"sentiment"`
	Emotions  map[string]float64 `json:"emotions"`
	Feedback  string             `json:"feedback"`
	CreatedAt time.Time          `json:"created_at"`
}
