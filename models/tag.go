package models

import "time"

// TagCategory 标签类别（封闭枚举，未知类别在校验时报错而不是默默降级）
type TagCategory string

const (
	CategoryBasicInfo     TagCategory = "basic_info"     // 基础分类
	CategoryCity          TagCategory = "city"           // 城市
	CategoryProvince      TagCategory = "province"       // 省份
	CategoryRegion        TagCategory = "region"         // 区域
	CategoryEnergyType    TagCategory = "energy_type"    // 能源类型
	CategoryBusinessField TagCategory = "business_field" // 业务领域
	CategoryBeneficiary   TagCategory = "beneficiary"    // 受益主体
	CategoryPolicyMeasure TagCategory = "policy_measure" // 政策措施
	CategoryImportance    TagCategory = "importance"     // 重要性
)

// AllTagCategories 全部标签类别，按打分遍历顺序排列
var AllTagCategories = []TagCategory{
	CategoryBasicInfo,
	CategoryCity,
	CategoryProvince,
	CategoryRegion,
	CategoryEnergyType,
	CategoryBusinessField,
	CategoryBeneficiary,
	CategoryPolicyMeasure,
	CategoryImportance,
}

// IsValid 判断是否为已知标签类别
func (c TagCategory) IsValid() bool {
	for _, known := range AllTagCategories {
		if c == known {
			return true
		}
	}
	return false
}

// TagSource 标签来源
type TagSource string

const (
	SourcePreset          TagSource = "preset"           // 注册时预置
	SourceManual          TagSource = "manual"           // 用户手动添加
	SourceAIGenerated     TagSource = "ai_generated"     // AI自动打标
	SourceRegionAuto      TagSource = "region_auto"      // 地域自动派生
	SourceBehaviorDerived TagSource = "behavior_derived" // 行为调整派生
)

// Tag 用户兴趣标签
type Tag struct {
	Category  TagCategory `json:"category"`
	Name      string      `json:"name"`
	Weight    float64     `json:"weight"` // 取值范围 [0,10]
	Source    TagSource   `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
}

// TagProfile 用户标签画像
type TagProfile struct {
	UserID    string    `json:"user_id"`
	Tags      []Tag     `json:"tags"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagsByCategory 按类别分组返回标签
func (p *TagProfile) TagsByCategory(category TagCategory) []Tag {
	result := make([]Tag, 0)
	for _, tag := range p.Tags {
		if tag.Category == category {
			result = append(result, tag)
		}
	}
	return result
}

// TagNames 返回画像中全部标签名称
func (p *TagProfile) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return names
}
