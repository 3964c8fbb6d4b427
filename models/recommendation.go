package models

// Tier 候选内容的发现层级
type Tier string

const (
	TierPrimary   Tier = "primary"   // 高权重标签命中
	TierSecondary Tier = "secondary" // 中低权重标签命中
	TierFallback  Tier = "fallback"  // 最新内容兜底
)

// RecommendEntry 单条推荐结果，按请求构建，不落库
type RecommendEntry struct {
	Content        *Content `json:"content"`
	RelevanceScore float64  `json:"relevance_score"`
	Tier           Tier     `json:"tier"`
}

// DegradeReason 推荐降级原因
type DegradeReason string

const (
	DegradeNone         DegradeReason = ""
	DegradeEmptyProfile DegradeReason = "empty_profile" // 画像为空或无法解析
	DegradeStoreError   DegradeReason = "store_error"   // 内容查询后端不可用
)

// RecommendResult 推荐结果。Degraded 为 true 时 Entries 为无相关性分数的最新内容，
// 调用方通过 Reason 区分"无匹配"与"后端不可用"，不依赖异常分支
type RecommendResult struct {
	Entries  []RecommendEntry `json:"entries"`
	Degraded bool             `json:"degraded"`
	Reason   DegradeReason    `json:"reason,omitempty"`
}

// TieredResult 分级推荐结果：精准推荐与扩展推荐两个独立列表，不合并
type TieredResult struct {
	Primary           []RecommendEntry `json:"primary_recommendations"`
	Secondary         []RecommendEntry `json:"secondary_recommendations"`
	PrimaryTagsUsed   []string         `json:"primary_tags_used"`
	SecondaryTagsUsed []string         `json:"secondary_tags_used"`
}
