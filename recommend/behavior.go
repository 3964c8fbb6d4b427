package recommend

import (
	"context"
	"time"

	"energy_recommend/logger"
	"energy_recommend/models"
)

// AdjustWeightsByBehavior 基于行为窗口内的用户行为生成权重调整后的画像副本。
// 只增不减：无行为记录的标签原样保留，有行为的标签权重提升但不超过上限。
// 从不回写存储的画像
func (e *Engine) AdjustWeightsByBehavior(ctx context.Context, userID string, profile *models.TagProfile) *models.TagProfile {
	since := e.now().AddDate(0, 0, -e.opts.BehaviorWindowDays)

	events, err := e.behavior.EventsSince(ctx, userID, since)
	if err != nil {
		// 行为存储不可用不阻断推荐，按原画像继续
		logger.Warn("获取用户行为失败，跳过权重调整", "user_id", userID, "error", err)
		return profile
	}
	if len(events) == 0 {
		return profile
	}

	// 统计每个标签名的加权行为次数
	counts := make(map[string]float64)
	for _, event := range events {
		content, err := e.content.GetByID(ctx, event.ContentID)
		if err != nil || content == nil {
			// 内容缺失或失效的事件直接跳过，不中断整个调整过程
			continue
		}
		multiplier := e.opts.actionMultiplier(event.Action)
		for _, tagName := range content.AllTags() {
			counts[tagName] += multiplier
		}
	}

	adjusted := &models.TagProfile{
		UserID:    profile.UserID,
		Tags:      make([]models.Tag, 0, len(profile.Tags)),
		UpdatedAt: profile.UpdatedAt,
	}
	for _, tag := range profile.Tags {
		newTag := tag
		if count, ok := counts[tag.Name]; ok && count > 0 {
			boost := count * e.opts.BehaviorBoostPerCount
			if boost > e.opts.BehaviorBoostCap {
				boost = e.opts.BehaviorBoostCap
			}
			newWeight := tag.Weight + boost
			if newWeight > e.opts.MaxTagWeight {
				newWeight = e.opts.MaxTagWeight
			}
			newTag.Weight = newWeight
			newTag.Source = models.SourceBehaviorDerived
		}
		adjusted.Tags = append(adjusted.Tags, newTag)
	}
	return adjusted
}

// BehaviorInsights 统计最近7天的行为洞察
func (e *Engine) BehaviorInsights(ctx context.Context, userID string) (*models.BehaviorInsights, error) {
	since := e.now().Add(-7 * 24 * time.Hour)

	events, err := e.behavior.EventsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	stats := map[models.BehaviorAction]int{
		models.ActionView:  0,
		models.ActionClick: 0,
		models.ActionLike:  0,
		models.ActionShare: 0,
	}
	totalReadingTime := 0
	contentTypes := make(map[models.ContentType]int)

	for _, event := range events {
		if _, ok := stats[event.Action]; ok {
			stats[event.Action]++
		}
		totalReadingTime += event.Duration

		content, err := e.content.GetByID(ctx, event.ContentID)
		if err != nil || content == nil {
			continue
		}
		contentTypes[content.Type]++
	}

	activityScore := stats[models.ActionView]*1 +
		stats[models.ActionClick]*2 +
		stats[models.ActionLike]*3 +
		stats[models.ActionShare]*4

	views := stats[models.ActionView]
	if views < 1 {
		views = 1
	}

	return &models.BehaviorInsights{
		BehaviorStats:         stats,
		TotalReadingTime:      totalReadingTime,
		AverageReadingTime:    float64(totalReadingTime) / float64(views),
		PreferredContentTypes: contentTypes,
		ActivityScore:         activityScore,
		EngagementLevel:       engagementLevel(activityScore),
	}, nil
}

// engagementLevel 按活跃度评分划分参与度等级
func engagementLevel(activityScore int) string {
	switch {
	case activityScore >= 100:
		return "high"
	case activityScore >= 50:
		return "medium"
	case activityScore >= 20:
		return "low"
	default:
		return "minimal"
	}
}
