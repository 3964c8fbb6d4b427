package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"energy_recommend/logger"
	"energy_recommend/models"
	"energy_recommend/region"
)

// 画像初始化的地域权重：城市最精确，范围越大权重越低
const (
	cityTagWeight     = 5.0
	provinceTagWeight = 1.5
	regionTagWeight   = 1.0
	nationalTagWeight = 0.5
)

// 画像标签数量上限
const (
	maxProfileTags     = 50
	maxTagsPerCategory = 10
)

var (
	ErrUnsupportedCity = errors.New("不支持的注册城市")
	ErrTooManyTags     = errors.New("标签数量超限")
)

// InitializeProfileByCity 注册时按城市和能源偏好初始化用户画像。
// 城市自动派生省份、经济区域和全国兜底标签；选择具体能源产品时自动补充其所属大类
func InitializeProfileByCity(ctx context.Context, userID, city string, energyTypes []string) (*models.TagProfile, error) {
	loc, ok := region.Resolve(city)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCity, city)
	}

	now := time.Now()
	tags := []models.Tag{
		{Category: models.CategoryCity, Name: loc.City, Weight: cityTagWeight, Source: models.SourceRegionAuto, CreatedAt: now},
		{Category: models.CategoryProvince, Name: loc.Province, Weight: provinceTagWeight, Source: models.SourceRegionAuto, CreatedAt: now},
	}
	if loc.Region != "" {
		tags = append(tags, models.Tag{Category: models.CategoryRegion, Name: loc.Region, Weight: regionTagWeight, Source: models.SourceRegionAuto, CreatedAt: now})
	}
	tags = append(tags, models.Tag{Category: models.CategoryRegion, Name: "全国", Weight: nationalTagWeight, Source: models.SourceRegionAuto, CreatedAt: now})

	// 能源标签按层级体系取权重：大类3.0，具体产品5.0，未收录的按默认大类权重
	seen := make(map[string]bool)
	for _, name := range energyTypes {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, models.Tag{
			Category:  models.CategoryEnergyType,
			Name:      name,
			Weight:    weightConfig.EnergyWeight(name),
			Source:    models.SourcePreset,
			CreatedAt: now,
		})
		// 选择具体产品时自动补充所属大类，保证泛化召回
		if family, ok := weightConfig.EnergyFamily(name); ok && !seen[family] {
			seen[family] = true
			tags = append(tags, models.Tag{
				Category:  models.CategoryEnergyType,
				Name:      family,
				Weight:    weightConfig.EnergyWeight(family),
				Source:    models.SourceRegionAuto,
				CreatedAt: now,
			})
		}
	}

	profile := &models.TagProfile{
		UserID:    userID,
		Tags:      tags,
		UpdatedAt: now,
	}
	if err := profileRepo.SaveProfile(ctx, profile); err != nil {
		logger.Error("Failed to save initialized profile", "user_id", userID, "error", err)
		return nil, err
	}

	logger.Info("Profile initialized by city", "user_id", userID, "city", city, "tag_count", len(tags))
	return profile, nil
}

// GetUserProfile 获取用户画像，不存在时返回默认画像并落库
func GetUserProfile(ctx context.Context, userID string) (*models.TagProfile, error) {
	return profileRepo.EnsureProfile(ctx, userID)
}

// UpdateUserTags 全量覆盖用户标签，写入前做数量与类别校验
func UpdateUserTags(ctx context.Context, userID string, tags []models.Tag) (*models.TagProfile, error) {
	if len(tags) > maxProfileTags {
		return nil, fmt.Errorf("%w: 最多%d个，收到%d个", ErrTooManyTags, maxProfileTags, len(tags))
	}

	now := time.Now()
	perCategory := make(map[models.TagCategory]int)
	for i := range tags {
		tag := &tags[i]
		if !tag.Category.IsValid() {
			return nil, fmt.Errorf("未知标签类别: %s", tag.Category)
		}
		if tag.Name == "" {
			return nil, errors.New("标签名称不能为空")
		}
		perCategory[tag.Category]++
		if perCategory[tag.Category] > maxTagsPerCategory {
			return nil, fmt.Errorf("%w: 类别%s最多%d个", ErrTooManyTags, tag.Category, maxTagsPerCategory)
		}
		// 权重收敛到合法区间
		if tag.Weight < 0 {
			tag.Weight = 0
		}
		if tag.Weight > 10.0 {
			tag.Weight = 10.0
		}
		if tag.Source == "" {
			tag.Source = models.SourceManual
		}
		if tag.CreatedAt.IsZero() {
			tag.CreatedAt = now
		}
	}

	profile := &models.TagProfile{
		UserID:    userID,
		Tags:      tags,
		UpdatedAt: now,
	}
	if err := profileRepo.SaveProfile(ctx, profile); err != nil {
		logger.Error("Failed to update user tags", "user_id", userID, "error", err)
		return nil, err
	}

	logger.Info("User tags updated", "user_id", userID, "tag_count", len(tags))
	return profile, nil
}

// EnergyHierarchy 返回能源层级体系（大类到具体产品），供注册页展示可选能源类型
func EnergyHierarchy() map[string][]string {
	result := make(map[string][]string)
	for _, family := range weightConfig.AllFamilies() {
		result[family] = weightConfig.FamilyProducts(family)
	}
	return result
}

// ResetUserProfile 删除现有画像并重建默认画像
func ResetUserProfile(ctx context.Context, userID string) (*models.TagProfile, error) {
	if err := profileRepo.DeleteProfile(ctx, userID); err != nil {
		logger.Error("Failed to delete profile", "user_id", userID, "error", err)
		return nil, err
	}
	return profileRepo.EnsureProfile(ctx, userID)
}
