package model

import "time"

// User 用户文档，mood_counts 作为子文档整体覆盖写入
type User struct {
	ID          string     `bson:"_id" json:"id"`
	Username    string     `bson:"username,omitempty" json:"username,omitempty"`
	DisplayName string     `bson:"display_name" json:"display_name"`
	Email       string     `bson:"email" json:"email"`
	Password    *string    `bson:"password,omitempty" json:"-"`
	MoodCounts  MoodCounts `bson:"mood_counts" json:"mood_counts"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}

// MoodCounts 按日去重后的心情计数，由重算任务独占维护
type MoodCounts struct {
	Happy   int `bson:"happy" json:"happy"`
	Neutral int `bson:"neutral" json:"neutral"`
	Sad     int `bson:"sad" json:"sad"`
}

func (s MoodCounts) Total() int {
	return s.Happy + s.Neutral + s.Sad
}
