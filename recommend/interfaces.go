package recommend

import (
	"context"
	"time"

	"energy_recommend/models"
)

// ContentStore 内容库查询接口。
// 所有查询按发布时间倒序返回；tagNames 为空时返回最新内容。
type ContentStore interface {
	// FindByTags 查询命中任一标签的内容，types 非空时限定内容类型
	FindByTags(ctx context.Context, tagNames []string, limit int, types []models.ContentType) ([]*models.Content, error)

	// CountByTags 统计命中任一标签的内容数量
	CountByTags(ctx context.Context, tagNames []string, types []models.ContentType) (int, error)

	// GetByID 按ID获取内容，未找到返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*models.Content, error)
}

// BehaviorStore 行为存储查询接口
type BehaviorStore interface {
	// EventsSince 返回用户自 since 起的全部行为事件
	EventsSince(ctx context.Context, userID string, since time.Time) ([]models.BehaviorEvent, error)
}

// ProfileStore 用户画像存储接口
type ProfileStore interface {
	// GetProfile 获取用户标签画像，不存在返回 (nil, nil)
	GetProfile(ctx context.Context, userID string) (*models.TagProfile, error)

	// EnsureProfile 获取用户标签画像，不存在时创建最小默认画像，
	// 保证引擎不会拿到完全空的输入
	EnsureProfile(ctx context.Context, userID string) (*models.TagProfile, error)
}
