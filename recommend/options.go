package recommend

import "energy_recommend/models"

// Options 推荐引擎的可调参数。
// 阈值与各层候选数量是沿用已上线配置的手调常量，调整前先离线回放验证。
type Options struct {
	// 权重分层阈值
	HighWeightThreshold float64 // 高权重层下界
	MidWeightThreshold  float64 // 中权重层下界

	// 精准加成：能源标签权重达到阈值且精确命中时的额外加分
	PrecisionBonusThreshold float64
	PrecisionBonusFactor    float64
	SuperBonusThreshold     float64
	SuperBonusFactor        float64

	// 各层单标签候选数量上限
	HighTierPerTag int
	MidTierPerTag  int
	LowTierPerTag  int

	// 行为权重调整
	BehaviorWindowDays    int
	BehaviorBoostPerCount float64
	BehaviorBoostCap      float64
	MaxTagWeight          float64
	ActionMultipliers     map[models.BehaviorAction]float64

	// 分级推荐（精准/扩展两列表模式）
	PrimaryGeoMultiplier    float64 // 地域命中权重系数
	PrimaryEnergyMultiplier float64 // 能源命中权重系数
	PrimaryBothMatchBonus   float64 // 地域与能源同时命中的额外系数
	SecondaryScoreCap       float64 // 扩展列表分数上限，保持低于精准列表
}

// DefaultOptions 返回默认引擎参数
func DefaultOptions() Options {
	return Options{
		HighWeightThreshold: 4.0,
		MidWeightThreshold:  2.0,

		PrecisionBonusThreshold: 4.0,
		PrecisionBonusFactor:    0.8,
		SuperBonusThreshold:     5.0,
		SuperBonusFactor:        0.3,

		HighTierPerTag: 3,
		MidTierPerTag:  2,
		LowTierPerTag:  1,

		BehaviorWindowDays:    30,
		BehaviorBoostPerCount: 0.1,
		BehaviorBoostCap:      2.0,
		MaxTagWeight:          10.0,
		ActionMultipliers: map[models.BehaviorAction]float64{
			models.ActionView:  1.0,
			models.ActionClick: 1.5,
			models.ActionLike:  2.0,
			models.ActionShare: 3.0,
		},

		PrimaryGeoMultiplier:    3.0,
		PrimaryEnergyMultiplier: 2.5,
		PrimaryBothMatchBonus:   1.5,
		SecondaryScoreCap:       20.0,
	}
}

// actionMultiplier 未知行为按view处理
func (o Options) actionMultiplier(action models.BehaviorAction) float64 {
	if m, ok := o.ActionMultipliers[action]; ok {
		return m
	}
	return 1.0
}
