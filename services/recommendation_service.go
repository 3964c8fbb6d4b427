package services

import (
	"context"
	"fmt"

	"energy_recommend/config"
	"energy_recommend/logger"
	"energy_recommend/models"
	"energy_recommend/recommend"
	"energy_recommend/repository"
)

var (
	contentRepo  = repository.NewContentRepo()
	behaviorRepo = repository.NewBehaviorRepo()
	profileRepo  = repository.NewProfileRepo()

	weightConfig = recommend.DefaultWeightConfig()
	engine       = recommend.NewEngine(contentRepo, behaviorRepo, profileRepo, weightConfig, recommend.DefaultOptions())
)

// InitEngine 按配置重建推荐引擎，在服务启动时调用一次
func InitEngine(cfg *config.Config) {
	opts := recommend.DefaultOptions()
	if cfg.Recommend.BehaviorWindowDays > 0 {
		opts.BehaviorWindowDays = cfg.Recommend.BehaviorWindowDays
	}
	engine = recommend.NewEngine(contentRepo, behaviorRepo, profileRepo, weightConfig, opts)
	logger.Info("Recommendation engine initialized", "behavior_window_days", opts.BehaviorWindowDays)
}

// viewContentTypes 前端视图到内容类型的映射
var viewContentTypes = map[string][]models.ContentType{
	"market":       {models.ContentNews, models.ContentPrice},
	"policy":       {models.ContentPolicy, models.ContentReport},
	"announcement": {models.ContentAnnouncement},
}

// trendingTags 热门内容的筛选标签：重要性标记或核心基础分类
var trendingTags = []string{"国家级", "权威发布", "重要政策", "政策法规", "行业资讯"}

// GetSmartRecommendations 为用户生成智能分层推荐
func GetSmartRecommendations(ctx context.Context, userID string, limit, skip int) (*models.RecommendResult, error) {
	result, err := engine.Recommend(ctx, userID, recommend.Request{Limit: limit, Skip: skip})
	if err != nil {
		logger.Error("Failed to generate recommendations", "user_id", userID, "error", err)
		return nil, err
	}
	if result.Degraded {
		logger.Info("Recommendations degraded to latest content", "user_id", userID, "reason", result.Reason)
	}
	return result, nil
}

// GetRecommendationsByView 按内容类型视图推荐，视图限定候选范围，打分逻辑不变
func GetRecommendationsByView(ctx context.Context, userID, view string, limit, skip int) (*models.RecommendResult, error) {
	types, ok := viewContentTypes[view]
	if !ok {
		return nil, fmt.Errorf("未知的内容视图: %s", view)
	}
	result, err := engine.Recommend(ctx, userID, recommend.Request{Limit: limit, Skip: skip, Types: types})
	if err != nil {
		logger.Error("Failed to generate view recommendations", "user_id", userID, "view", view, "error", err)
		return nil, err
	}
	return result, nil
}

// GetTieredRecommendations 分级推荐：精准（地域+能源）与扩展（其余类别）两个独立列表
func GetTieredRecommendations(ctx context.Context, userID string, primaryLimit, secondaryLimit int) (*models.TieredResult, error) {
	result, err := engine.TieredByCategory(ctx, userID, primaryLimit, secondaryLimit)
	if err != nil {
		logger.Error("Failed to generate tiered recommendations", "user_id", userID, "error", err)
		return nil, err
	}
	return result, nil
}

// GetTrendingContent 获取热门内容，不依赖用户画像
func GetTrendingContent(ctx context.Context, limit int) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 10
	}
	items, err := contentRepo.FindByTags(ctx, trendingTags, limit, nil)
	if err != nil {
		logger.Error("Failed to fetch trending content", "error", err)
		return nil, err
	}
	// 带重要性标记的内容不足时用最新内容补齐
	if len(items) < limit {
		latest, err := contentRepo.FindByTags(ctx, nil, limit, nil)
		if err == nil {
			seen := make(map[string]bool, len(items))
			for _, item := range items {
				seen[item.ID] = true
			}
			for _, item := range latest {
				if len(items) >= limit {
					break
				}
				if seen[item.ID] {
					continue
				}
				items = append(items, item)
			}
		}
	}
	return items, nil
}

// GetSimilarContent 获取与指定内容标签重叠的相似内容
func GetSimilarContent(ctx context.Context, contentID string, limit int) ([]*models.Content, error) {
	return engine.SimilarContent(ctx, contentID, limit)
}
