package recommend

import (
	"time"

	"energy_recommend/models"
)

// Scorer 相关性打分器：加权标签重合 + 发布时效衰减。
// 无副作用，注入时钟保证同一快照下打分确定
type Scorer struct {
	weights *WeightConfig
	opts    Options
	now     func() time.Time
}

// NewScorer 创建打分器
func NewScorer(weights *WeightConfig, opts Options) *Scorer {
	return &Scorer{
		weights: weights,
		opts:    opts,
		now:     time.Now,
	}
}

// WithClock 替换时钟，用于确定性测试
func (s *Scorer) WithClock(now func() time.Time) *Scorer {
	s.now = now
	return s
}

// Score 计算一条内容对一份画像的相关性分数，非负
func (s *Scorer) Score(profile *models.TagProfile, content *models.Content) float64 {
	if profile == nil || len(profile.Tags) == 0 {
		return 0
	}

	totalScore := 0.0
	highestTagWeight := 0.0
	matched := 0

	for _, tag := range profile.Tags {
		if !containsTag(content.TagSet(tag.Category), tag.Name) {
			continue
		}
		matched++
		tagScore := tag.Weight * s.weights.CategoryMultiplier(tag.Category)
		totalScore += tagScore
		if tag.Weight > highestTagWeight {
			highestTagWeight = tag.Weight
		}

		// 精准加成：高权重能源标签精确命中时额外加分，
		// 避免明确声明具体产品兴趣的用户被宽泛新鲜内容淹没
		if tag.Category == models.CategoryEnergyType && tag.Weight >= s.opts.PrecisionBonusThreshold {
			totalScore += s.opts.PrecisionBonusFactor * tagScore
			if tag.Weight >= s.opts.SuperBonusThreshold {
				totalScore += s.opts.SuperBonusFactor * tagScore
			}
		}
	}

	if matched == 0 {
		return 0
	}

	// 时效衰减按最高命中权重分档融合
	var final float64
	switch {
	case highestTagWeight >= s.opts.HighWeightThreshold:
		// 高精准兴趣主导，时效只做小幅加减
		final = totalScore + (s.lightTimeFactor(content.PublishTime)-1.0)*2.0
	case highestTagWeight >= s.opts.MidWeightThreshold:
		final = totalScore * (0.8 + 0.2*s.timeFactor(content.PublishTime))
	default:
		// 弱兴趣画像，时效主导
		final = totalScore * s.timeFactor(content.PublishTime)
	}

	if final < 0 {
		return 0
	}
	return final
}

// timeFactor 标准时效因子：7天内满分，30天内每天降权2%，更旧给基础分。
// 发布时间无法解析时给默认值0.8，不让整条打分失败
func (s *Scorer) timeFactor(publishTime string) float64 {
	days, ok := s.ageInDays(publishTime)
	if !ok {
		return 0.8
	}
	switch {
	case days <= 7:
		return 1.0
	case days <= 30:
		return 1.0 - float64(days-7)*0.02
	default:
		return 0.5
	}
}

// lightTimeFactor 轻量时效因子，仅高精准分支使用：3天内有小幅加成
func (s *Scorer) lightTimeFactor(publishTime string) float64 {
	days, ok := s.ageInDays(publishTime)
	if !ok {
		return 1.0
	}
	switch {
	case days <= 3:
		return 1.1
	case days <= 7:
		return 1.0
	case days <= 30:
		return 0.95
	default:
		return 0.9
	}
}

// ageInDays 解析发布时间并返回距今天数
func (s *Scorer) ageInDays(publishTime string) (int, bool) {
	t, ok := ParsePublishTime(publishTime)
	if !ok {
		return 0, false
	}
	diff := s.now().Sub(t)
	if diff < 0 {
		return 0, true
	}
	return int(diff.Hours() / 24), true
}

// publishTimeLayouts 内容发布时间的已知格式
var publishTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePublishTime 尽力解析发布时间串
func ParsePublishTime(value string) (time.Time, bool) {
	for _, layout := range publishTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func containsTag(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
