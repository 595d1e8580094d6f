package model

import "time"

// AIAnalysis AI分析结果文档，以条目 ID 为主键实现按条目记忆化
type AIAnalysis struct {
	EntryID   string             `bson:"_id" json:"entry_id"`
	Sentiment float64            `bson:"sentiment" json:"sentiment"` // [-1, 1]
	Emotions  map[string]float64 `bson:"emotions" json:"emotions"`
	Feedback  string             `bson:"feedback" json:"feedback"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
