package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"energy_recommend/db"
	"energy_recommend/logger"
	"energy_recommend/models"
)

// ProfileRepo 用户标签画像的MySQL实现，标签集合整体存一个JSON列
type ProfileRepo struct{}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{}
}

// GetProfile 获取用户标签画像，不存在返回 (nil, nil)
func (r *ProfileRepo) GetProfile(ctx context.Context, userID string) (*models.TagProfile, error) {
	row := db.DB.QueryRowContext(ctx,
		`SELECT user_id, tags, updated_at FROM user_tag_profiles WHERE user_id = ?`, userID)

	p := &models.TagProfile{}
	var tagsJSON string
	if err := row.Scan(&p.UserID, &tagsJSON, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
		// 画像数据损坏按缺失处理，后续由 EnsureProfile 重建
		logger.Warn("解析用户画像标签失败", "user_id", userID, "error", err)
		return nil, nil
	}
	return p, nil
}

// SaveProfile 写入或覆盖用户标签画像
func (r *ProfileRepo) SaveProfile(ctx context.Context, profile *models.TagProfile) error {
	tagsJSON, err := json.Marshal(profile.Tags)
	if err != nil {
		return err
	}
	_, err = db.DB.ExecContext(ctx, `
		INSERT INTO user_tag_profiles (user_id, tags, updated_at, created_at)
		VALUES (?, CAST(? AS JSON), NOW(), NOW())
		ON DUPLICATE KEY UPDATE tags=VALUES(tags), updated_at=NOW()
	`, profile.UserID, string(tagsJSON))
	return err
}

// EnsureProfile 获取用户画像，缺失时创建最小默认画像：
// 两个低权重的能源大类兜底兴趣标签，保证引擎不会拿到不可恢复的空输入
func (r *ProfileRepo) EnsureProfile(ctx context.Context, userID string) (*models.TagProfile, error) {
	existing, err := r.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && len(existing.Tags) > 0 {
		return existing, nil
	}

	now := time.Now()
	profile := &models.TagProfile{
		UserID: userID,
		Tags: []models.Tag{
			{
				Category:  models.CategoryEnergyType,
				Name:      "天然气",
				Weight:    1.0,
				Source:    models.SourcePreset,
				CreatedAt: now,
			},
			{
				Category:  models.CategoryEnergyType,
				Name:      "电力",
				Weight:    1.0,
				Source:    models.SourcePreset,
				CreatedAt: now,
			},
		},
		UpdatedAt: now,
	}
	if err := r.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	logger.Info("为用户创建默认标签画像", "user_id", userID, "tags", len(profile.Tags))
	return profile, nil
}

// DeleteProfile 删除用户画像（重置为注册配置前调用）
func (r *ProfileRepo) DeleteProfile(ctx context.Context, userID string) error {
	_, err := db.DB.ExecContext(ctx, `DELETE FROM user_tag_profiles WHERE user_id = ?`, userID)
	return err
}
