package recommend

import "energy_recommend/models"

// 能源产品分层权重：大类3.0，具体产品5.0
const (
	EnergyFamilyWeight   = 3.0
	EnergySpecificWeight = 5.0
)

// WeightConfig 标签权重配置，构造后不可变，打分引擎与分层策略持有同一份注入实例
type WeightConfig struct {
	// 各标签类别的打分增强系数
	CategoryMultipliers map[models.TagCategory]float64

	// 能源产品层级：大类 -> 具体产品列表
	EnergyHierarchy map[string][]string

	// 未分类能源产品的默认权重（从不为零，避免悄悄丢弃用户意图）
	DefaultEnergyWeight float64

	// 由 EnergyHierarchy 反查构建：具体产品 -> 大类
	productFamily map[string]string
}

// DefaultWeightConfig 返回默认权重配置。
// 地域类权重最高，重要性/受益主体最低。
func DefaultWeightConfig() *WeightConfig {
	cfg := &WeightConfig{
		CategoryMultipliers: map[models.TagCategory]float64{
			models.CategoryCity:          3.0,
			models.CategoryProvince:      3.0,
			models.CategoryRegion:        3.0,
			models.CategoryEnergyType:    2.5,
			models.CategoryBasicInfo:     1.0,
			models.CategoryBusinessField: 0.8,
			models.CategoryPolicyMeasure: 0.8,
			models.CategoryBeneficiary:   0.6,
			models.CategoryImportance:    0.6,
		},
		EnergyHierarchy: map[string][]string{
			"天然气": {
				"液化天然气(LNG)", "管道天然气(PNG)", "压缩天然气(CNG)", "液化石油气(LPG)",
			},
			"原油": {
				"汽油", "柴油", "航空煤油", "沥青", "石油焦", "润滑油", "石脑油", "燃料油",
			},
			"电力": {
				"火力发电", "水力发电", "风力发电", "太阳能发电", "核能发电", "地热发电",
			},
			"煤炭": {
				"动力煤", "炼焦煤", "喷吹煤", "无烟煤", "褐煤", "焦炭",
			},
			"可再生能源": {
				"生物柴油", "生物乙醇", "生物质能", "氢能", "甲醇", "氨能",
			},
			"化工能源": {
				"重烃", "乙烯", "丙烯", "苯", "甲苯", "二甲苯",
			},
			"核能": {
				"铀燃料", "核发电", "核供热",
			},
		},
		DefaultEnergyWeight: EnergyFamilyWeight,
	}
	cfg.buildIndex()
	return cfg
}

// NewWeightConfig 使用自定义表构造权重配置（单元测试注入替代权重表）
func NewWeightConfig(multipliers map[models.TagCategory]float64, hierarchy map[string][]string, defaultEnergyWeight float64) *WeightConfig {
	cfg := &WeightConfig{
		CategoryMultipliers: multipliers,
		EnergyHierarchy:     hierarchy,
		DefaultEnergyWeight: defaultEnergyWeight,
	}
	cfg.buildIndex()
	return cfg
}

func (w *WeightConfig) buildIndex() {
	w.productFamily = make(map[string]string)
	for family, products := range w.EnergyHierarchy {
		for _, product := range products {
			w.productFamily[product] = family
		}
	}
}

// CategoryMultiplier 返回类别的打分增强系数，未知类别返回1.0
func (w *WeightConfig) CategoryMultiplier(category models.TagCategory) float64 {
	if m, ok := w.CategoryMultipliers[category]; ok {
		return m
	}
	return 1.0
}

// EnergyWeight 解析能源产品权重：具体产品5.0，大类3.0，
// 未识别的字符串给默认中档权重，从不报错
func (w *WeightConfig) EnergyWeight(name string) float64 {
	if _, ok := w.EnergyHierarchy[name]; ok {
		return EnergyFamilyWeight
	}
	if _, ok := w.productFamily[name]; ok {
		return EnergySpecificWeight
	}
	return w.DefaultEnergyWeight
}

// EnergyFamily 返回能源产品所属大类；大类本身返回自己；未识别返回 ("", false)
func (w *WeightConfig) EnergyFamily(name string) (string, bool) {
	if _, ok := w.EnergyHierarchy[name]; ok {
		return name, true
	}
	if family, ok := w.productFamily[name]; ok {
		return family, true
	}
	return "", false
}

// IsEnergyFamily 判断是否为能源大类
func (w *WeightConfig) IsEnergyFamily(name string) bool {
	_, ok := w.EnergyHierarchy[name]
	return ok
}

// FamilyProducts 返回大类下的具体产品列表
func (w *WeightConfig) FamilyProducts(family string) []string {
	return w.EnergyHierarchy[family]
}

// AllFamilies 返回全部能源大类
func (w *WeightConfig) AllFamilies() []string {
	families := make([]string, 0, len(w.EnergyHierarchy))
	for family := range w.EnergyHierarchy {
		families = append(families, family)
	}
	return families
}
