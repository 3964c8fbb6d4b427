package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"energy_recommend/config"
	"energy_recommend/logger"
	"energy_recommend/models"
	"energy_recommend/region"
	"energy_recommend/utils"
)

// 打标时送入模型的正文长度上限（按字符数），超长内容截断
const taggingBodyLimit = 2000

const taggingSystemPrompt = `你是能源行业内容标签专家。请分析给定的内容，严格按JSON格式输出以下7类标签：
{
  "basic_info_tags": ["政策法规"或"行业资讯"等基础分类],
  "region_tags": [涉及的城市、省份、经济区域，如"上海"、"广东省"、"华东地区"、"全国"],
  "energy_type_tags": [涉及的能源类型，如"天然气"、"液化天然气(LNG)"、"电力"、"煤炭"],
  "business_field_tags": [业务领域，如"交易"、"储运"、"发电"],
  "beneficiary_tags": [受益主体，如"发电企业"、"城燃公司"、"工业用户"],
  "policy_measure_tags": [政策措施，如"价格改革"、"市场准入"、"补贴"],
  "importance_tags": [重要性标记，如"国家级"、"权威发布"、"重要政策"]
}
只输出JSON，不要输出其他内容。没有对应标签的类别输出空数组。`

// taggingResult 模型打标输出的JSON结构
type taggingResult struct {
	BasicInfoTags     []string `json:"basic_info_tags"`
	RegionTags        []string `json:"region_tags"`
	EnergyTypeTags    []string `json:"energy_type_tags"`
	BusinessFieldTags []string `json:"business_field_tags"`
	BeneficiaryTags   []string `json:"beneficiary_tags"`
	PolicyMeasureTags []string `json:"policy_measure_tags"`
	ImportanceTags    []string `json:"importance_tags"`
}

// newLLMClient 创建OpenAI兼容客户端，支持自定义BaseURL（SiliconFlow等）
func newLLMClient(cfg *config.Config) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientConfig.BaseURL = cfg.LLM.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// TagContent 为单条内容打标并落库。
// 模型调用失败时回退到关键词匹配打标，保证内容不会长期无标签
func TagContent(ctx context.Context, cfg *config.Config, content *models.Content) error {
	result, err := classifyWithLLM(ctx, cfg, content)
	if err != nil {
		logger.Warn("LLM tagging failed, falling back to keyword tagging", "content_id", content.ID, "error", err)
		result = classifyByKeywords(content)
	}

	content.BasicInfoTags = utils.DeduplicateSlice(result.BasicInfoTags)
	content.RegionTags = utils.DeduplicateSlice(result.RegionTags)
	content.EnergyTypeTags = utils.DeduplicateSlice(result.EnergyTypeTags)
	content.BusinessFieldTags = utils.DeduplicateSlice(result.BusinessFieldTags)
	content.BeneficiaryTags = utils.DeduplicateSlice(result.BeneficiaryTags)
	content.PolicyMeasureTags = utils.DeduplicateSlice(result.PolicyMeasureTags)
	content.ImportanceTags = utils.DeduplicateSlice(result.ImportanceTags)

	if err := contentRepo.UpdateTagSets(ctx, content); err != nil {
		logger.Error("Failed to save content tags", "content_id", content.ID, "error", err)
		return err
	}

	logger.Info("Content tagged", "content_id", content.ID, "tag_count", len(content.AllTags()))
	return nil
}

// classifyWithLLM 调用大模型为内容打标
func classifyWithLLM(ctx context.Context, cfg *config.Config, content *models.Content) (*taggingResult, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("LLM API key not configured")
	}

	body := utils.TruncateRunes(content.Body, taggingBodyLimit)
	userPrompt := fmt.Sprintf("标题：%s\n类型：%s\n正文：%s", content.Title, content.Type, body)

	client := newLLMClient(cfg)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: float32(cfg.LLM.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: taggingSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	// 部分模型会把JSON包在代码块里
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var result taggingResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse tagging response: %w", err)
	}
	return &result, nil
}

// classifyByKeywords 关键词匹配兜底打标：能源层级体系和地域表直接在文本中查找
func classifyByKeywords(content *models.Content) *taggingResult {
	text := content.Title + " " + content.Body
	result := &taggingResult{}

	for _, family := range weightConfig.AllFamilies() {
		if strings.Contains(text, family) {
			result.EnergyTypeTags = append(result.EnergyTypeTags, family)
		}
		for _, product := range weightConfig.FamilyProducts(family) {
			if strings.Contains(text, product) {
				result.EnergyTypeTags = append(result.EnergyTypeTags, product)
			}
		}
	}

	for _, city := range region.AllCities() {
		if strings.Contains(text, city) {
			if loc, ok := region.Resolve(city); ok {
				result.RegionTags = append(result.RegionTags, loc.City, loc.Province)
				if loc.Region != "" {
					result.RegionTags = append(result.RegionTags, loc.Region)
				}
			}
		}
	}
	if strings.Contains(text, "全国") {
		result.RegionTags = append(result.RegionTags, "全国")
	}

	switch content.Type {
	case models.ContentPolicy:
		result.BasicInfoTags = append(result.BasicInfoTags, "政策法规")
	case models.ContentNews, models.ContentReport:
		result.BasicInfoTags = append(result.BasicInfoTags, "行业资讯")
	}

	return result
}

// TagUntaggedContents 并发为所有未打标内容打标，每天由调度器触发
func TagUntaggedContents(cfg *config.Config) error {
	ctx := context.Background()

	contents, err := contentRepo.ListUntagged(ctx, 500)
	if err != nil {
		logger.Error("Failed to list untagged contents", "error", err)
		return err
	}
	if len(contents) == 0 {
		logger.Info("No untagged contents found")
		return nil
	}
	logger.Info("Untagged contents found", "count", len(contents))

	concurrency := cfg.Scheduler.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)

	var mu sync.Mutex
	processed, failed := 0, 0

	for _, content := range contents {
		wg.Add(1)
		semaphore <- struct{}{} // acquire semaphore

		go func(item *models.Content) {
			defer wg.Done()
			defer func() { <-semaphore }() // release semaphore

			tagCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
			defer cancel()

			err := TagContent(tagCtx, cfg, item)
			mu.Lock()
			defer mu.Unlock()
			processed++
			if err != nil {
				failed++
				logger.Error("内容打标失败", "content_id", item.ID, "error", err)
			}
		}(content)
	}

	wg.Wait()
	logger.Info("批量打标完成", "processed", processed, "failed", failed)
	return nil
}
