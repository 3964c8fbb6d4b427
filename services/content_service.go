package services

import (
	"context"
	"errors"
	"strings"

	"energy_recommend/config"
	"energy_recommend/logger"
	"energy_recommend/models"
	"energy_recommend/utils"
)

// IngestContent 录入新内容并尝试立即打标。
// 打标失败不阻断录入，未打标内容由每日批量打标任务兜底
func IngestContent(ctx context.Context, cfg *config.Config, content *models.Content) error {
	content.Title = utils.FilterSpecialSymbols(content.Title)
	if content.Title == "" {
		return errors.New("内容标题不能为空")
	}
	if content.Type == "" {
		content.Type = models.ContentNews
	}

	if err := contentRepo.Insert(ctx, content); err != nil {
		logger.Error("Failed to insert content", "title", content.Title, "error", err)
		return err
	}
	logger.Info("Content ingested", "content_id", content.ID, "type", content.Type)

	if !content.HasTagSets() {
		if err := TagContent(ctx, cfg, content); err != nil {
			logger.Warn("Immediate tagging failed, will retry in daily batch", "content_id", content.ID, "error", err)
		}
	}
	return nil
}

// GetContentByID 获取单条内容，不存在时返回 (nil, nil)
func GetContentByID(ctx context.Context, id string) (*models.Content, error) {
	return contentRepo.GetByID(ctx, id)
}

// ListContents 分页获取内容列表，可按类型过滤
func ListContents(ctx context.Context, skip, limit int, types []models.ContentType) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 20
	}
	return contentRepo.List(ctx, skip, limit, types)
}

// SearchContents 按关键词搜索标题或正文，返回命中列表与总数
func SearchContents(ctx context.Context, keyword string, skip, limit int, types []models.ContentType) ([]*models.Content, int, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, 0, errors.New("搜索关键词不能为空")
	}
	if limit <= 0 {
		limit = 20
	}

	items, err := contentRepo.Search(ctx, keyword, skip, limit, types)
	if err != nil {
		logger.Error("Content search failed", "keyword", keyword, "error", err)
		return nil, 0, err
	}
	total, err := contentRepo.CountSearch(ctx, keyword, types)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
