package recommend

import (
	"context"
	"sort"
	"time"

	"energy_recommend/logger"
	"energy_recommend/models"
)

// Engine 分层推荐引擎。无内部可变状态，每次请求是独立计算，并发安全
type Engine struct {
	content  ContentStore
	behavior BehaviorStore
	profiles ProfileStore
	weights  *WeightConfig
	opts     Options
	scorer   *Scorer
	now      func() time.Time
}

// NewEngine 创建推荐引擎，权重配置与参数在构造时注入
func NewEngine(content ContentStore, behavior BehaviorStore, profiles ProfileStore, weights *WeightConfig, opts Options) *Engine {
	return &Engine{
		content:  content,
		behavior: behavior,
		profiles: profiles,
		weights:  weights,
		opts:     opts,
		scorer:   NewScorer(weights, opts),
		now:      time.Now,
	}
}

// WithClock 替换时钟，用于确定性测试
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	e.scorer.WithClock(now)
	return e
}

// Request 单次推荐请求参数
type Request struct {
	Limit int
	Skip  int
	Types []models.ContentType // 非空时限定内容类型（按类型推荐视图）
}

// Recommend 智能分层推荐：高权重层 -> 中权重层 -> 低权重层 -> 最新内容兜底，
// 全程按内容ID去重，最后用完整画像重新打分并整体排序
func (e *Engine) Recommend(ctx context.Context, userID string, req Request) (*models.RecommendResult, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}

	profile, err := e.profiles.GetProfile(ctx, userID)
	if err == nil && (profile == nil || len(profile.Tags) == 0) {
		profile, err = e.profiles.EnsureProfile(ctx, userID)
	}
	if err != nil {
		// 画像存储不可用与画像为空是两种降级原因，调用方需要区分
		logger.Warn("获取用户画像失败，降级为最新内容", "user_id", userID, "error", err)
		return e.latestFallback(ctx, req, models.DegradeStoreError)
	}
	if profile == nil || len(profile.Tags) == 0 {
		return e.latestFallback(ctx, req, models.DegradeEmptyProfile)
	}

	adjusted := e.AdjustWeightsByBehavior(ctx, userID, profile)

	target := req.Skip + req.Limit
	selected := make([]models.RecommendEntry, 0, target)
	seen := make(map[string]bool)
	var storeErr error

	collect := func(items []*models.Content, tier models.Tier) {
		for _, item := range items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			selected = append(selected, models.RecommendEntry{Content: item, Tier: tier})
		}
	}

	// 按权重降序逐层取候选。层内单标签候选不足时不向其他标签转移，
	// 缺口统一由最新内容兜底补齐
	high, mid, low := splitTagsByWeight(adjusted.Tags, e.opts.HighWeightThreshold, e.opts.MidWeightThreshold)

	for _, tag := range high {
		items, err := e.content.FindByTags(ctx, []string{tag.Name}, e.opts.HighTierPerTag, req.Types)
		if err != nil {
			storeErr = err
			continue
		}
		collect(items, models.TierPrimary)
	}

	for _, tag := range mid {
		if len(selected) >= target {
			break
		}
		items, err := e.content.FindByTags(ctx, []string{tag.Name}, e.opts.MidTierPerTag, req.Types)
		if err != nil {
			storeErr = err
			continue
		}
		collect(items, models.TierSecondary)
	}

	for _, tag := range low {
		if len(selected) >= target {
			break
		}
		items, err := e.content.FindByTags(ctx, []string{tag.Name}, e.opts.LowTierPerTag, req.Types)
		if err != nil {
			storeErr = err
			continue
		}
		collect(items, models.TierSecondary)
	}

	// 内容查询后端整体不可用时降级为最新内容列表
	if len(selected) == 0 && storeErr != nil {
		logger.Error("标签候选查询全部失败，降级为最新内容", "user_id", userID, "error", storeErr)
		return e.latestFallback(ctx, req, models.DegradeStoreError)
	}

	// 最新内容兜底补齐缺口
	if len(selected) < target {
		latest, err := e.content.FindByTags(ctx, nil, target+len(selected), req.Types)
		if err != nil {
			if len(selected) == 0 {
				return nil, err
			}
			logger.Warn("兜底查询失败，返回已有候选", "user_id", userID, "error", err)
		} else {
			for _, item := range latest {
				if len(selected) >= target {
					break
				}
				if seen[item.ID] {
					continue
				}
				seen[item.ID] = true
				selected = append(selected, models.RecommendEntry{Content: item, Tier: models.TierFallback})
			}
		}
	}

	// 用完整画像重新打分，层级只决定候选发现，不决定最终展示顺序
	for i := range selected {
		score := e.scorer.Score(adjusted, selected[i].Content)
		selected[i].RelevanceScore = score
		selected[i].Content.RelevanceScore = score
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].RelevanceScore > selected[j].RelevanceScore
	})

	// 排序后再做一次幂等去重兜底
	entries := dedupeEntries(selected)

	if req.Skip > 0 {
		if req.Skip >= len(entries) {
			entries = []models.RecommendEntry{}
		} else {
			entries = entries[req.Skip:]
		}
	}
	if len(entries) > req.Limit {
		entries = entries[:req.Limit]
	}

	return &models.RecommendResult{Entries: entries}, nil
}

// TieredByCategory 分级推荐：画像一次性拆为主要类别（地域+能源）与次要类别，
// 各自独立取候选、按类别受限公式打分，返回两个不合并的有序列表
func (e *Engine) TieredByCategory(ctx context.Context, userID string, primaryLimit, secondaryLimit int) (*models.TieredResult, error) {
	if primaryLimit <= 0 {
		primaryLimit = 6
	}
	if secondaryLimit <= 0 {
		secondaryLimit = 4
	}

	profile, err := e.profiles.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	adjusted := e.AdjustWeightsByBehavior(ctx, userID, profile)

	var primaryTags, secondaryTags []models.Tag
	for _, tag := range adjusted.Tags {
		if isPrimaryCategory(tag.Category) {
			primaryTags = append(primaryTags, tag)
		} else {
			secondaryTags = append(secondaryTags, tag)
		}
	}

	result := &models.TieredResult{
		Primary:           []models.RecommendEntry{},
		Secondary:         []models.RecommendEntry{},
		PrimaryTagsUsed:   tagNames(primaryTags),
		SecondaryTagsUsed: tagNames(secondaryTags),
	}

	seen := make(map[string]bool)

	if len(primaryTags) > 0 {
		candidates, err := e.content.FindByTags(ctx, tagNames(primaryTags), primaryLimit*3, nil)
		if err != nil {
			return nil, err
		}
		entries := make([]models.RecommendEntry, 0, len(candidates))
		for _, item := range candidates {
			if seen[item.ID] {
				continue
			}
			score := e.primaryScore(primaryTags, item)
			if score <= 0 {
				continue
			}
			seen[item.ID] = true
			item.RelevanceScore = score
			entries = append(entries, models.RecommendEntry{
				Content:        item,
				RelevanceScore: score,
				Tier:           models.TierPrimary,
			})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].RelevanceScore > entries[j].RelevanceScore
		})
		if len(entries) > primaryLimit {
			entries = entries[:primaryLimit]
		}
		result.Primary = entries
	}

	if len(secondaryTags) > 0 {
		candidates, err := e.content.FindByTags(ctx, tagNames(secondaryTags), secondaryLimit*3, nil)
		if err != nil {
			return nil, err
		}
		entries := make([]models.RecommendEntry, 0, len(candidates))
		for _, item := range candidates {
			if seen[item.ID] {
				continue
			}
			score := e.secondaryScore(secondaryTags, item)
			if score <= 0 {
				continue
			}
			seen[item.ID] = true
			item.RelevanceScore = score
			entries = append(entries, models.RecommendEntry{
				Content:        item,
				RelevanceScore: score,
				Tier:           models.TierSecondary,
			})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].RelevanceScore > entries[j].RelevanceScore
		})
		if len(entries) > secondaryLimit {
			entries = entries[:secondaryLimit]
		}
		result.Secondary = entries
	}

	return result, nil
}

// primaryScore 精准列表打分：地域命中权重×3.0，能源命中权重×2.5，
// 同一条内容两者都命中时整体再×1.5
func (e *Engine) primaryScore(tags []models.Tag, content *models.Content) float64 {
	geoScore := 0.0
	energyScore := 0.0
	for _, tag := range tags {
		if !containsTag(content.TagSet(tag.Category), tag.Name) {
			continue
		}
		if tag.Category == models.CategoryEnergyType {
			energyScore += tag.Weight * e.opts.PrimaryEnergyMultiplier
		} else {
			geoScore += tag.Weight * e.opts.PrimaryGeoMultiplier
		}
	}
	score := geoScore + energyScore
	if geoScore > 0 && energyScore > 0 {
		score *= e.opts.PrimaryBothMatchBonus
	}
	return score
}

// secondaryScore 扩展列表打分：其余类别的加权平铺求和，封顶保持低于精准列表
func (e *Engine) secondaryScore(tags []models.Tag, content *models.Content) float64 {
	score := 0.0
	for _, tag := range tags {
		if !containsTag(content.TagSet(tag.Category), tag.Name) {
			continue
		}
		score += tag.Weight * e.weights.CategoryMultiplier(tag.Category)
	}
	if score > e.opts.SecondaryScoreCap {
		score = e.opts.SecondaryScoreCap
	}
	return score
}

// latestFallback 返回无相关性分数的最新内容列表
func (e *Engine) latestFallback(ctx context.Context, req Request, reason models.DegradeReason) (*models.RecommendResult, error) {
	items, err := e.content.FindByTags(ctx, nil, req.Skip+req.Limit, req.Types)
	if err != nil {
		return nil, err
	}
	if req.Skip > 0 {
		if req.Skip >= len(items) {
			items = nil
		} else {
			items = items[req.Skip:]
		}
	}
	entries := make([]models.RecommendEntry, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		entries = append(entries, models.RecommendEntry{Content: item, Tier: models.TierFallback})
	}
	return &models.RecommendResult{
		Entries:  entries,
		Degraded: true,
		Reason:   reason,
	}, nil
}

// SimilarContent 相似内容：用原始内容的全部标签检索，剔除自身
func (e *Engine) SimilarContent(ctx context.Context, contentID string, limit int) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 5
	}
	original, err := e.content.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return []*models.Content{}, nil
	}
	allTags := original.AllTags()
	if len(allTags) == 0 {
		return []*models.Content{}, nil
	}
	// 多取一条，结果中可能包含原始内容自身
	candidates, err := e.content.FindByTags(ctx, allTags, limit+1, nil)
	if err != nil {
		return nil, err
	}
	similar := make([]*models.Content, 0, limit)
	for _, item := range candidates {
		if item.ID == contentID {
			continue
		}
		similar = append(similar, item)
		if len(similar) >= limit {
			break
		}
	}
	return similar, nil
}

// splitTagsByWeight 按权重阈值把画像标签拆为高/中/低三层，各层内按权重降序
func splitTagsByWeight(tags []models.Tag, highThreshold, midThreshold float64) (high, mid, low []models.Tag) {
	sorted := make([]models.Tag, len(tags))
	copy(sorted, tags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	for _, tag := range sorted {
		switch {
		case tag.Weight >= highThreshold:
			high = append(high, tag)
		case tag.Weight >= midThreshold:
			mid = append(mid, tag)
		default:
			low = append(low, tag)
		}
	}
	return high, mid, low
}

// dedupeEntries 按内容ID去重，保持顺序
func dedupeEntries(entries []models.RecommendEntry) []models.RecommendEntry {
	seen := make(map[string]bool, len(entries))
	result := make([]models.RecommendEntry, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.Content.ID] {
			continue
		}
		seen[entry.Content.ID] = true
		result = append(result, entry)
	}
	return result
}

func isPrimaryCategory(category models.TagCategory) bool {
	switch category {
	case models.CategoryCity, models.CategoryProvince, models.CategoryRegion, models.CategoryEnergyType:
		return true
	}
	return false
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
