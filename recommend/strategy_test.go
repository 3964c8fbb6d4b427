package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_recommend/models"
)

// fakeContentStore 内存内容库，按标签倒排索引
type fakeContentStore struct {
	contents []*models.Content
	findErr  error
	getErr   error
}

func (f *fakeContentStore) matches(c *models.Content, tagNames []string, types []models.ContentType) bool {
	if len(types) > 0 {
		typeOK := false
		for _, t := range types {
			if c.Type == t {
				typeOK = true
				break
			}
		}
		if !typeOK {
			return false
		}
	}
	if len(tagNames) == 0 {
		return true
	}
	for _, name := range tagNames {
		for _, tag := range c.AllTags() {
			if tag == name {
				return true
			}
		}
	}
	return false
}

func (f *fakeContentStore) FindByTags(ctx context.Context, tagNames []string, limit int, types []models.ContentType) ([]*models.Content, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := make([]*models.Content, 0)
	for _, c := range f.contents {
		if f.matches(c, tagNames, types) {
			result = append(result, c)
		}
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

func (f *fakeContentStore) CountByTags(ctx context.Context, tagNames []string, types []models.ContentType) (int, error) {
	items, err := f.FindByTags(ctx, tagNames, len(f.contents), types)
	return len(items), err
}

func (f *fakeContentStore) GetByID(ctx context.Context, id string) (*models.Content, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, c := range f.contents {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// fakeBehaviorStore 内存行为存储
type fakeBehaviorStore struct {
	events []models.BehaviorEvent
	err    error
}

func (f *fakeBehaviorStore) EventsSince(ctx context.Context, userID string, since time.Time) ([]models.BehaviorEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]models.BehaviorEvent, 0)
	for _, e := range f.events {
		if e.UserID == userID && !e.Timestamp.Before(since) {
			result = append(result, e)
		}
	}
	return result, nil
}

// fakeProfileStore 内存画像存储
type fakeProfileStore struct {
	profiles map[string]*models.TagProfile
	err      error
}

func (f *fakeProfileStore) GetProfile(ctx context.Context, userID string) (*models.TagProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func (f *fakeProfileStore) EnsureProfile(ctx context.Context, userID string) (*models.TagProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	p := &models.TagProfile{
		UserID: userID,
		Tags: []models.Tag{
			{Category: models.CategoryEnergyType, Name: "天然气", Weight: 1.0, Source: models.SourcePreset},
			{Category: models.CategoryEnergyType, Name: "电力", Weight: 1.0, Source: models.SourcePreset},
		},
	}
	if f.profiles == nil {
		f.profiles = make(map[string]*models.TagProfile)
	}
	f.profiles[userID] = p
	return p, nil
}

func newTestEngine(content *fakeContentStore, behavior *fakeBehaviorStore, profiles *fakeProfileStore) *Engine {
	if behavior == nil {
		behavior = &fakeBehaviorStore{}
	}
	return NewEngine(content, behavior, profiles, DefaultWeightConfig(), DefaultOptions()).WithClock(testClock)
}

func shanghaiLNGProfile() *models.TagProfile {
	return &models.TagProfile{
		UserID: "u1",
		Tags: []models.Tag{
			{Category: models.CategoryCity, Name: "上海", Weight: 5.0},
			{Category: models.CategoryEnergyType, Name: "液化天然气(LNG)", Weight: 5.0},
			{Category: models.CategoryEnergyType, Name: "天然气", Weight: 3.0},
			{Category: models.CategoryBasicInfo, Name: "行业资讯", Weight: 1.0},
		},
	}
}

func TestRecommendOrdersByRelevance(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "best", RegionTags: []string{"上海"}, EnergyTypeTags: []string{"液化天然气(LNG)"}, PublishTime: publishedDaysAgo(1)},
		{ID: "mid", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(2)},
		{ID: "weak", BasicInfoTags: []string{"行业资讯"}, PublishTime: publishedDaysAgo(3)},
	}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": shanghaiLNGProfile()}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 10})
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	require.Len(t, result.Entries, 3)

	assert.Equal(t, "best", result.Entries[0].Content.ID)
	assert.Equal(t, "mid", result.Entries[1].Content.ID)
	assert.Equal(t, "weak", result.Entries[2].Content.ID)

	// 分数严格降序且已回填
	assert.Greater(t, result.Entries[0].RelevanceScore, result.Entries[1].RelevanceScore)
	assert.Greater(t, result.Entries[1].RelevanceScore, result.Entries[2].RelevanceScore)
}

func TestRecommendDeduplicatesAcrossTiers(t *testing.T) {
	// 同一条内容命中多个标签，只应出现一次
	shared := &models.Content{
		ID:             "shared",
		RegionTags:     []string{"上海"},
		EnergyTypeTags: []string{"液化天然气(LNG)", "天然气"},
		PublishTime:    publishedDaysAgo(1),
	}
	content := &fakeContentStore{contents: []*models.Content{shared}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": shanghaiLNGProfile()}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "shared", result.Entries[0].Content.ID)
}

func TestRecommendBackfillsWithLatest(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "match", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
		{ID: "filler1", EnergyTypeTags: []string{"煤炭"}, PublishTime: publishedDaysAgo(2)},
		{ID: "filler2", EnergyTypeTags: []string{"原油"}, PublishTime: publishedDaysAgo(3)},
	}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": {
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 5.0}},
	}}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 3})
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)
	assert.False(t, result.Degraded)

	// 相关内容排在兜底内容之前
	assert.Equal(t, "match", result.Entries[0].Content.ID)
	assert.Equal(t, models.TierFallback, result.Entries[1].Tier)
	assert.Equal(t, models.TierFallback, result.Entries[2].Tier)
}

func TestRecommendHighTierItemSurvivesTightLimit(t *testing.T) {
	// 高权重层发现的内容不会被低层或兜底候选挤出结果集，
	// 即使它比新内容陈旧、而候选总数超过limit
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "stale-gas", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(60)},
		{ID: "fresh-1", BasicInfoTags: []string{"行业资讯"}, PublishTime: publishedDaysAgo(1)},
		{ID: "fresh-2", BasicInfoTags: []string{"行业资讯"}, PublishTime: publishedDaysAgo(1)},
		{ID: "fresh-3", BasicInfoTags: []string{"行业资讯"}, PublishTime: publishedDaysAgo(1)},
		{ID: "fresh-4", BasicInfoTags: []string{"行业资讯"}, PublishTime: publishedDaysAgo(1)},
	}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{
		"u1": {UserID: "u1", Tags: []models.Tag{
			{Category: models.CategoryEnergyType, Name: "天然气", Weight: 5.0},
			{Category: models.CategoryBasicInfo, Name: "行业资讯", Weight: 1.0},
		}},
	}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 3})
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	// 高权重命中重新打分后仍排第一：12.5×2.1 + (0.9-1.0)×2.0
	assert.Equal(t, "stale-gas", result.Entries[0].Content.ID)
	assert.Equal(t, models.TierPrimary, result.Entries[0].Tier)
	assert.InDelta(t, 26.05, result.Entries[0].RelevanceScore, 0.001)
}

func TestRecommendEmptyProfileDegrades(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "latest", PublishTime: publishedDaysAgo(1)},
	}}
	// EnsureProfile建出的画像仍没有任何标签
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{
		"u1": {UserID: "u1"},
	}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 5})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, models.DegradeEmptyProfile, result.Reason)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, models.TierFallback, result.Entries[0].Tier)
	assert.Zero(t, result.Entries[0].RelevanceScore)
}

func TestRecommendProfileStoreErrorDegradesAsStoreError(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "latest", PublishTime: publishedDaysAgo(1)},
	}}
	// 画像存储整体不可用：降级原因必须可与空画像区分
	profiles := &fakeProfileStore{err: errors.New("db down")}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 5})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, models.DegradeStoreError, result.Reason)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, models.TierFallback, result.Entries[0].Tier)
}

func TestRecommendStoreErrorDegrades(t *testing.T) {
	content := &fakeContentStore{
		contents: []*models.Content{{ID: "latest", PublishTime: publishedDaysAgo(1)}},
		findErr:  errors.New("query failed"),
	}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": shanghaiLNGProfile()}}
	engine := newTestEngine(content, nil, profiles)

	// 标签查询和兜底查询都失败，错误向上传递
	_, err := engine.Recommend(context.Background(), "u1", Request{Limit: 5})
	assert.Error(t, err)

	// 只有标签查询失败时降级为最新内容
	content.findErr = nil
	contentFlaky := &flakyContentStore{inner: content, failTagged: true}
	engine = NewEngine(contentFlaky, &fakeBehaviorStore{}, profiles, DefaultWeightConfig(), DefaultOptions()).WithClock(testClock)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 5})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, models.DegradeStoreError, result.Reason)
}

// flakyContentStore 标签查询失败、最新内容查询正常
type flakyContentStore struct {
	inner      *fakeContentStore
	failTagged bool
}

func (f *flakyContentStore) FindByTags(ctx context.Context, tagNames []string, limit int, types []models.ContentType) ([]*models.Content, error) {
	if f.failTagged && len(tagNames) > 0 {
		return nil, errors.New("tag query failed")
	}
	return f.inner.FindByTags(ctx, tagNames, limit, types)
}

func (f *flakyContentStore) CountByTags(ctx context.Context, tagNames []string, types []models.ContentType) (int, error) {
	return f.inner.CountByTags(ctx, tagNames, types)
}

func (f *flakyContentStore) GetByID(ctx context.Context, id string) (*models.Content, error) {
	return f.inner.GetByID(ctx, id)
}

func TestRecommendSkipAndLimit(t *testing.T) {
	contents := make([]*models.Content, 0, 6)
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		contents = append(contents, &models.Content{
			ID:          id,
			PublishTime: publishedDaysAgo(1),
		})
	}
	content := &fakeContentStore{contents: contents}
	profiles := &fakeProfileStore{}
	engine := newTestEngine(content, nil, profiles)

	first, err := engine.Recommend(context.Background(), "u1", Request{Limit: 2})
	require.NoError(t, err)
	second, err := engine.Recommend(context.Background(), "u1", Request{Limit: 2, Skip: 2})
	require.NoError(t, err)

	require.Len(t, first.Entries, 2)
	require.Len(t, second.Entries, 2)
	assert.NotEqual(t, first.Entries[0].Content.ID, second.Entries[0].Content.ID)
}

func TestRecommendTypeFilter(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "news", Type: models.ContentNews, EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
		{ID: "policy", Type: models.ContentPolicy, EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
	}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": {
		UserID: "u1",
		Tags:   []models.Tag{{Category: models.CategoryEnergyType, Name: "天然气", Weight: 5.0}},
	}}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.Recommend(context.Background(), "u1", Request{Limit: 10, Types: []models.ContentType{models.ContentPolicy}})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "policy", result.Entries[0].Content.ID)
}

func TestTieredByCategorySplitsLists(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "both", RegionTags: []string{"上海"}, EnergyTypeTags: []string{"液化天然气(LNG)"}, PublishTime: publishedDaysAgo(1)},
		{ID: "geo", RegionTags: []string{"上海"}, PublishTime: publishedDaysAgo(1)},
		{ID: "biz", BusinessFieldTags: []string{"交易"}, PublishTime: publishedDaysAgo(1)},
	}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": {
		UserID: "u1",
		Tags: []models.Tag{
			{Category: models.CategoryCity, Name: "上海", Weight: 5.0},
			{Category: models.CategoryEnergyType, Name: "液化天然气(LNG)", Weight: 5.0},
			{Category: models.CategoryBusinessField, Name: "交易", Weight: 2.0},
		},
	}}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.TieredByCategory(context.Background(), "u1", 6, 4)
	require.NoError(t, err)

	require.Len(t, result.Primary, 2)
	require.Len(t, result.Secondary, 1)
	assert.Equal(t, "biz", result.Secondary[0].Content.ID)

	// 地域+能源双命中享受1.5倍加成：(5*3 + 5*2.5)*1.5 = 41.25 > 单命中 15
	assert.Equal(t, "both", result.Primary[0].Content.ID)
	assert.InDelta(t, 41.25, result.Primary[0].RelevanceScore, 0.001)
	assert.Equal(t, "geo", result.Primary[1].Content.ID)
	assert.InDelta(t, 15.0, result.Primary[1].RelevanceScore, 0.001)

	// 扩展列表分数不超过上限且低于精准列表
	assert.LessOrEqual(t, result.Secondary[0].RelevanceScore, DefaultOptions().SecondaryScoreCap)
}

func TestTieredByCategoryDedupsAcrossLists(t *testing.T) {
	// 同时命中主要和次要标签的内容只进精准列表
	shared := &models.Content{
		ID:                "shared",
		RegionTags:        []string{"上海"},
		BusinessFieldTags: []string{"交易"},
		PublishTime:       publishedDaysAgo(1),
	}
	content := &fakeContentStore{contents: []*models.Content{shared}}
	profiles := &fakeProfileStore{profiles: map[string]*models.TagProfile{"u1": {
		UserID: "u1",
		Tags: []models.Tag{
			{Category: models.CategoryCity, Name: "上海", Weight: 5.0},
			{Category: models.CategoryBusinessField, Name: "交易", Weight: 2.0},
		},
	}}}
	engine := newTestEngine(content, nil, profiles)

	result, err := engine.TieredByCategory(context.Background(), "u1", 6, 4)
	require.NoError(t, err)
	require.Len(t, result.Primary, 1)
	assert.Empty(t, result.Secondary)
}

func TestSimilarContentExcludesSelf(t *testing.T) {
	content := &fakeContentStore{contents: []*models.Content{
		{ID: "origin", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(1)},
		{ID: "sibling", EnergyTypeTags: []string{"天然气"}, PublishTime: publishedDaysAgo(2)},
	}}
	engine := newTestEngine(content, nil, &fakeProfileStore{})

	similar, err := engine.SimilarContent(context.Background(), "origin", 5)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "sibling", similar[0].ID)
}

func TestSimilarContentMissingOrigin(t *testing.T) {
	engine := newTestEngine(&fakeContentStore{}, nil, &fakeProfileStore{})

	similar, err := engine.SimilarContent(context.Background(), "ghost", 5)
	require.NoError(t, err)
	assert.Empty(t, similar)
}

func TestSplitTagsByWeight(t *testing.T) {
	tags := []models.Tag{
		{Name: "low", Weight: 0.5},
		{Name: "high", Weight: 5.0},
		{Name: "mid", Weight: 3.0},
		{Name: "edge-high", Weight: 4.0},
		{Name: "edge-mid", Weight: 2.0},
	}

	high, mid, low := splitTagsByWeight(tags, 4.0, 2.0)

	assert.Equal(t, []string{"high", "edge-high"}, tagNames(high))
	assert.Equal(t, []string{"mid", "edge-mid"}, tagNames(mid))
	assert.Equal(t, []string{"low"}, tagNames(low))
}
