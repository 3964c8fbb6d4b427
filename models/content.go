package models

import "time"

// ContentType 内容类型
type ContentType string

const (
	ContentNews         ContentType = "news"         // 行业资讯
	ContentPolicy       ContentType = "policy"       // 政策法规
	ContentReport       ContentType = "report"       // 研究报告
	ContentAnnouncement ContentType = "announcement" // 交易公告
	ContentPrice        ContentType = "price"        // 调价公告
)

// Content 内容条目。推荐引擎只读，生命周期归内容存储管理
type Content struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Body        string      `json:"content"`
	Type        ContentType `json:"type"`
	Source      string      `json:"source,omitempty"` // 来源机构
	Link        string      `json:"link,omitempty"`
	PublishTime string      `json:"publish_time"` // 原始发布时间串，可能无法解析
	CreatedAt   time.Time   `json:"created_at"`

	// 7大类标签字段
	BasicInfoTags     []string `json:"basic_info_tags"`
	RegionTags        []string `json:"region_tags"` // 城市/省份/区域统一存放
	EnergyTypeTags    []string `json:"energy_type_tags"`
	BusinessFieldTags []string `json:"business_field_tags"`
	BeneficiaryTags   []string `json:"beneficiary_tags"`
	PolicyMeasureTags []string `json:"policy_measure_tags"`
	ImportanceTags    []string `json:"importance_tags"`

	ViewCount int `json:"view_count"`

	// 推荐相关字段，仅在返回推荐结果时填充
	RelevanceScore float64 `json:"relevance_score,omitempty"`
}

// TagSet 返回指定类别对应的内容标签集合。
// 城市/省份/区域三类画像标签统一匹配地域标签字段。
func (c *Content) TagSet(category TagCategory) []string {
	switch category {
	case CategoryBasicInfo:
		return c.BasicInfoTags
	case CategoryCity, CategoryProvince, CategoryRegion:
		return c.RegionTags
	case CategoryEnergyType:
		return c.EnergyTypeTags
	case CategoryBusinessField:
		return c.BusinessFieldTags
	case CategoryBeneficiary:
		return c.BeneficiaryTags
	case CategoryPolicyMeasure:
		return c.PolicyMeasureTags
	case CategoryImportance:
		return c.ImportanceTags
	default:
		return nil
	}
}

// AllTags 汇总内容的全部标签名称
func (c *Content) AllTags() []string {
	all := make([]string, 0,
		len(c.BasicInfoTags)+len(c.RegionTags)+len(c.EnergyTypeTags)+
			len(c.BusinessFieldTags)+len(c.BeneficiaryTags)+
			len(c.PolicyMeasureTags)+len(c.ImportanceTags))
	all = append(all, c.BasicInfoTags...)
	all = append(all, c.RegionTags...)
	all = append(all, c.EnergyTypeTags...)
	all = append(all, c.BusinessFieldTags...)
	all = append(all, c.BeneficiaryTags...)
	all = append(all, c.PolicyMeasureTags...)
	all = append(all, c.ImportanceTags...)
	return all
}

// HasTagSets 判断内容是否已有任何标签（调度器批量补标时使用）
func (c *Content) HasTagSets() bool {
	return len(c.AllTags()) > 0
}
