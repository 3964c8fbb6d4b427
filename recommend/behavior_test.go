package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_recommend/models"
)

func behaviorEvent(action models.BehaviorAction, contentID string, daysAgo int) models.BehaviorEvent {
	return models.BehaviorEvent{
		UserID:    "u1",
		Action:    action,
		ContentID: contentID,
		Timestamp: testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestAdjustWeightsBoostsInteractedTags(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "c1", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
	}}
	behavior := &fakeBehaviorStore{events: []models.BehaviorEvent{
		behaviorEvent(models.ActionClick, "c1", 1), // 1.5
		behaviorEvent(models.ActionLike, "c1", 2),  // 2.0
	}}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags: []models.Tag{
			{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0, Source: models.SourcePreset},
			{Category: models.CategoryEnergyType, Name: "电力", Weight: 2.0, Source: models.SourcePreset},
		},
	}

	adjusted := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)

	// boost = (1.5+2.0) * 0.1 = 0.35
	require.Len(t, adjusted.Tags, 2)
	assert.InDelta(t, 3.35, adjusted.Tags[0].Weight, 0.001)
	assert.Equal(t, models.SourceBehaviorDerived, adjusted.Tags[0].Source)

	// 无行为的标签原样保留
	assert.Equal(t, 2.0, adjusted.Tags[1].Weight)
	assert.Equal(t, models.SourcePreset, adjusted.Tags[1].Source)

	// 原画像不被修改
	assert.Equal(t, 3.0, profile.Tags[0].Weight)
}

func TestAdjustWeightsBoostCap(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "c1", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
	}}
	// 100次分享：100*3.0*0.1 = 30，应封顶为2.0
	events := make([]models.BehaviorEvent, 0, 100)
	for i := 0; i < 100; i++ {
		events = append(events, behaviorEvent(models.ActionShare, "c1", 1))
	}
	behavior := &fakeBehaviorStore{events: events}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0}},
	}

	adjusted := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)
	assert.InDelta(t, 5.0, adjusted.Tags[0].Weight, 0.001)
}

func TestAdjustWeightsNeverExceedsMax(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "c1", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
	}}
	behavior := &fakeBehaviorStore{events: []models.BehaviorEvent{
		behaviorEvent(models.ActionShare, "c1", 1),
		behaviorEvent(models.ActionShare, "c1", 1),
		behaviorEvent(models.ActionShare, "c1", 1),
		behaviorEvent(models.ActionShare, "c1", 1),
		behaviorEvent(models.ActionShare, "c1", 1),
		behaviorEvent(models.ActionShare, "c1", 1),
		behaviorEvent(models.ActionShare, "c1", 1),
	}}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 9.5}},
	}

	adjusted := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)
	assert.Equal(t, 10.0, adjusted.Tags[0].Weight)
}

func TestAdjustWeightsStoreErrorReturnsOriginal(t *testing.T) {
	content := &fakeContentStore{}
	behavior := &fakeBehaviorStore{err: errors.New("db down")}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0}},
	}

	adjusted := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)
	assert.Same(t, profile, adjusted)
}

func TestAdjustWeightsSkipsMissingContent(t *testing.T) {
	// 事件指向已删除的内容，跳过不报错
	content := &fakeContentStore{}
	behavior := &fakeBehaviorStore{events: []models.BehaviorEvent{
		behaviorEvent(models.ActionLike, "deleted", 1),
	}}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0}},
	}

	adjusted := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)
	assert.Equal(t, 3.0, adjusted.Tags[0].Weight)
}

func TestAdjustWeightsIdempotentOnSameWindow(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "c1", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
	}}
	behavior := &fakeBehaviorStore{events: []models.BehaviorEvent{
		behaviorEvent(models.ActionShare, "c1", 1),
	}}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags: []models.Tag{
			{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0, Source: models.SourcePreset},
		},
	}

	first := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)
	second := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)

	// 同一事件窗口重复调整结果一致，且始终基于原始权重
	require.Len(t, second.Tags, 1)
	assert.Equal(t, first.Tags[0].Weight, second.Tags[0].Weight)
	assert.InDelta(t, 3.3, second.Tags[0].Weight, 0.001)
}

func TestAdjustWeightsIgnoresEventsOutsideWindow(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "c1", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
	}}
	behavior := &fakeBehaviorStore{events: []models.BehaviorEvent{
		behaviorEvent(models.ActionShare, "c1", 45), // 超出30天窗口
	}}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	profile := &models.TagProfile{
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0}},
	}

	adjusted := engine.AdjustWeightsByBehavior(context.Background(), "u1", profile)
	assert.Equal(t, 3.0, adjusted.Tags[0].Weight)
}

func TestBehaviorInsights(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "c1", Type: models.ContentNews, PublishTime: publishedDaysAgo(1)},
		{ID: "c2", Type: models.ContentPolicy, PublishTime: publishedDaysAgo(2)},
	}}
	view1 := behaviorEvent(models.ActionView, "c1", 1)
	view1.Duration = 60
	view2 := behaviorEvent(models.ActionView, "c1", 2)
	view2.Duration = 30
	behavior := &fakeBehaviorStore{events: []models.BehaviorEvent{
		view1,
		view2,
		behaviorEvent(models.ActionClick, "c2", 1),
		behaviorEvent(models.ActionLike, "c2", 3),
		behaviorEvent(models.ActionShare, "c1", 30), // 超出7天窗口
	}}
	engine := newTestEngine(content, behavior, &fakeProfileStore{})

	insights, err := engine.BehaviorInsights(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, insights.BehaviorStats[models.ActionView])
	assert.Equal(t, 1, insights.BehaviorStats[models.ActionClick])
	assert.Equal(t, 1, insights.BehaviorStats[models.ActionLike])
	assert.Equal(t, 0, insights.BehaviorStats[models.ActionShare])

	assert.Equal(t, 90, insights.TotalReadingTime)
	assert.InDelta(t, 45.0, insights.AverageReadingTime, 0.001)

	assert.Equal(t, 2, insights.PreferredContentTypes[models.ContentNews])
	assert.Equal(t, 2, insights.PreferredContentTypes[models.ContentPolicy])

	// 2*1 + 1*2 + 1*3 = 7
	assert.Equal(t, 7, insights.ActivityScore)
	assert.Equal(t, "minimal", insights.EngagementLevel)
}

func TestEngagementLevels(t *testing.T) {
	assert.Equal(t, "high", engagementLevel(120))
	assert.Equal(t, "high", engagementLevel(100))
	assert.Equal(t, "medium", engagementLevel(60))
	assert.Equal(t, "low", engagementLevel(20))
	assert.Equal(t, "minimal", engagementLevel(5))
}

func TestUnknownActionCountsAsView(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 1.0, opts.actionMultiplier(models.BehaviorAction("bookmark")))
	assert.Equal(t, 3.0, opts.actionMultiplier(models.ActionShare))
}
