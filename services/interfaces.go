package services

import (
	"context"

	"energy_recommend/config"
	"energy_recommend/models"
)

// RecommendationService 推荐内容服务接口
type RecommendationService interface {
	// 智能分层推荐
	GetSmartRecommendations(ctx context.Context, userID string, limit, skip int) (*models.RecommendResult, error)

	// 按内容类型视图推荐（行情/政策/公告）
	GetRecommendationsByView(ctx context.Context, userID, view string, limit, skip int) (*models.RecommendResult, error)

	// 分级推荐（精准+扩展两列表）
	GetTieredRecommendations(ctx context.Context, userID string, primaryLimit, secondaryLimit int) (*models.TieredResult, error)

	// 热门内容
	GetTrendingContent(ctx context.Context, limit int) ([]*models.Content, error)

	// 相似内容
	GetSimilarContent(ctx context.Context, contentID string, limit int) ([]*models.Content, error)
}

// ProfileService 用户标签画像服务接口
type ProfileService interface {
	// 注册时按城市和能源偏好初始化画像
	InitializeProfileByCity(ctx context.Context, userID, city string, energyTypes []string) (*models.TagProfile, error)

	// 获取用户画像
	GetUserProfile(ctx context.Context, userID string) (*models.TagProfile, error)

	// 全量覆盖用户标签
	UpdateUserTags(ctx context.Context, userID string, tags []models.Tag) (*models.TagProfile, error)

	// 重置画像为默认标签
	ResetUserProfile(ctx context.Context, userID string) (*models.TagProfile, error)
}

// BehaviorService 用户行为服务接口
type BehaviorService interface {
	// 记录用户行为事件
	RecordUserBehavior(ctx context.Context, event *models.BehaviorEvent) error

	// 最近7天行为洞察
	GetBehaviorInsights(ctx context.Context, userID string) (*models.BehaviorInsights, error)
}

// ContentService 内容管理服务接口
type ContentService interface {
	// 录入新内容并尝试立即打标
	IngestContent(ctx context.Context, cfg *config.Config, content *models.Content) error

	// 按ID获取内容
	GetContentByID(ctx context.Context, id string) (*models.Content, error)

	// 分页获取内容列表
	ListContents(ctx context.Context, skip, limit int, types []models.ContentType) ([]*models.Content, error)

	// 关键词搜索标题或正文，返回命中列表与总数
	SearchContents(ctx context.Context, keyword string, skip, limit int, types []models.ContentType) ([]*models.Content, int, error)
}

// TaggingService AI内容打标服务接口
type TaggingService interface {
	// 为单条内容打标
	TagContent(ctx context.Context, cfg *config.Config, content *models.Content) error

	// 为所有未打标内容批量打标
	TagUntaggedContents(cfg *config.Config) error
}
