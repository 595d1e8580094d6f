package model

// 心情的合法取值，非法值不会进入统计
const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

// JournalEntry 日记条目文档，全局以条目 ID 为主键，user_id 标识归属
type JournalEntry struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	UserID     string `bson:"user_id" json:"user_id"`
	Title      string `bson:"title" json:"title"`
	Content    string `bson:"content" json:"content"`
	AIAnalysis string `bson:"ai_analysis" json:"ai_analysis"`
	Mood       string `bson:"mood" json:"mood"`
	Date       string `bson:"date" json:"date"`           // ISO-8601 日期 (YYYY-MM-DD)，按日查询的软主键
	Timestamp  int64  `bson:"timestamp" json:"timestamp"` // 毫秒时间戳，仅用于展示排序与同日仲裁
}
