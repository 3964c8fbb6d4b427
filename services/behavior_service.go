package services

import (
	"context"
	"errors"
	"fmt"

	"energy_recommend/logger"
	"energy_recommend/models"
)

// RecordUserBehavior 记录用户行为事件。
// view行为同时累加内容浏览数；未知行为类型不报错，后续权重调整按view处理
func RecordUserBehavior(ctx context.Context, event *models.BehaviorEvent) error {
	if event.UserID == "" {
		return errors.New("用户ID不能为空")
	}
	if event.ContentID == "" {
		return errors.New("内容ID不能为空")
	}

	content, err := contentRepo.GetByID(ctx, event.ContentID)
	if err != nil {
		logger.Error("Failed to check content for behavior event", "content_id", event.ContentID, "error", err)
		return err
	}
	if content == nil {
		return fmt.Errorf("内容不存在: %s", event.ContentID)
	}

	if err := behaviorRepo.Insert(ctx, event); err != nil {
		logger.Error("Failed to record behavior event", "user_id", event.UserID, "action", event.Action, "error", err)
		return err
	}

	if event.Action == models.ActionView {
		// 浏览计数失败不影响事件记录
		if err := contentRepo.IncrementViewCount(ctx, event.ContentID); err != nil {
			logger.Warn("Failed to increment view count", "content_id", event.ContentID, "error", err)
		}
	}

	logger.Info("Behavior event recorded", "user_id", event.UserID, "action", event.Action, "content_id", event.ContentID)
	return nil
}

// GetBehaviorInsights 获取用户最近7天的行为洞察
func GetBehaviorInsights(ctx context.Context, userID string) (*models.BehaviorInsights, error) {
	insights, err := engine.BehaviorInsights(ctx, userID)
	if err != nil {
		logger.Error("Failed to build behavior insights", "user_id", userID, "error", err)
		return nil, err
	}
	return insights, nil
}
