package models

import "time"

// BehaviorAction 用户行为类型
type BehaviorAction string

const (
	ActionView  BehaviorAction = "view"
	ActionClick BehaviorAction = "click"
	ActionLike  BehaviorAction = "like"
	ActionShare BehaviorAction = "share"
)

// BehaviorEvent 用户行为事件，只追加不修改
type BehaviorEvent struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Action    BehaviorAction `json:"action"`
	ContentID string         `json:"content_id"`
	Duration  int            `json:"duration,omitempty"` // 阅读时长，单位：秒
	Timestamp time.Time      `json:"timestamp"`
}

// BehaviorInsights 用户行为洞察（最近7天）
type BehaviorInsights struct {
	BehaviorStats         map[BehaviorAction]int `json:"behavior_stats"`
	TotalReadingTime      int                    `json:"total_reading_time"`
	AverageReadingTime    float64                `json:"average_reading_time"`
	PreferredContentTypes map[ContentType]int    `json:"preferred_content_types"`
	ActivityScore         int                    `json:"activity_score"`
	EngagementLevel       string                 `json:"engagement_level"`
}
