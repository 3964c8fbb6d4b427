package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"energy_recommend/db"
	"energy_recommend/logger"
	"energy_recommend/models"
)

// contentColumns 内容表查询列，与 scanContent 保持一致
const contentColumns = `id, title, body, type, source, link, publish_time, created_at,
	basic_info_tags, region_tags, energy_type_tags, business_field_tags,
	beneficiary_tags, policy_measure_tags, importance_tags, view_count`

// tagColumns 七大类标签对应的JSON列
var tagColumns = []string{
	"basic_info_tags", "region_tags", "energy_type_tags", "business_field_tags",
	"beneficiary_tags", "policy_measure_tags", "importance_tags",
}

// ContentRepo 内容库的MySQL实现，标签集合存JSON列，
// 候选查询用 JSON_OVERLAPS 命中任一标签
type ContentRepo struct{}

func NewContentRepo() *ContentRepo {
	return &ContentRepo{}
}

// FindByTags 查询命中任一标签的内容，按发布时间倒序。
// tagNames 为空时返回最新内容
func (r *ContentRepo) FindByTags(ctx context.Context, tagNames []string, limit int, types []models.ContentType) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 20
	}

	where, args := buildTagQuery(tagNames, types)
	query := fmt.Sprintf(`SELECT %s FROM contents %s ORDER BY publish_time DESC LIMIT ?`,
		contentColumns, where)
	args = append(args, limit)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContents(rows)
}

// CountByTags 统计命中任一标签的内容数量
func (r *ContentRepo) CountByTags(ctx context.Context, tagNames []string, types []models.ContentType) (int, error) {
	where, args := buildTagQuery(tagNames, types)
	query := fmt.Sprintf(`SELECT COUNT(1) FROM contents %s`, where)

	var count int
	err := db.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// GetByID 按ID获取内容，未找到返回 (nil, nil)
func (r *ContentRepo) GetByID(ctx context.Context, id string) (*models.Content, error) {
	query := fmt.Sprintf(`SELECT %s FROM contents WHERE id = ?`, contentColumns)
	rows, err := db.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents, err := scanContents(rows)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, nil
	}
	return contents[0], nil
}

// List 分页列出内容，types 非空时限定类型
func (r *ContentRepo) List(ctx context.Context, skip, limit int, types []models.ContentType) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 20
	}
	where, args := buildTagQuery(nil, types)
	query := fmt.Sprintf(`SELECT %s FROM contents %s ORDER BY publish_time DESC LIMIT ? OFFSET ?`,
		contentColumns, where)
	args = append(args, limit, skip)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContents(rows)
}

// Search 按关键词搜索标题或正文，按发布时间倒序分页。
// MySQL默认排序规则下LIKE不区分大小写
func (r *ContentRepo) Search(ctx context.Context, keyword string, skip, limit int, types []models.ContentType) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 20
	}
	where, args := buildSearchQuery(keyword, types)
	query := fmt.Sprintf(`SELECT %s FROM contents %s ORDER BY publish_time DESC LIMIT ? OFFSET ?`,
		contentColumns, where)
	args = append(args, limit, skip)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContents(rows)
}

// CountSearch 统计关键词搜索结果总数
func (r *ContentRepo) CountSearch(ctx context.Context, keyword string, types []models.ContentType) (int, error) {
	where, args := buildSearchQuery(keyword, types)
	query := fmt.Sprintf(`SELECT COUNT(1) FROM contents %s`, where)

	var count int
	err := db.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// ListUntagged 列出尚无任何标签的内容（调度器批量打标使用）
func (r *ContentRepo) ListUntagged(ctx context.Context, limit int) ([]*models.Content, error) {
	if limit <= 0 {
		limit = 50
	}
	conditions := make([]string, 0, len(tagColumns))
	for _, col := range tagColumns {
		conditions = append(conditions, fmt.Sprintf("(%s IS NULL OR JSON_LENGTH(%s) = 0)", col, col))
	}
	query := fmt.Sprintf(`SELECT %s FROM contents WHERE %s ORDER BY created_at DESC LIMIT ?`,
		contentColumns, strings.Join(conditions, " AND "))

	rows, err := db.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContents(rows)
}

// Insert 写入新内容，ID为空时自动生成
func (r *ContentRepo) Insert(ctx context.Context, content *models.Content) error {
	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now()
	}

	_, err := db.DB.ExecContext(ctx, `
		INSERT INTO contents (id, title, body, type, source, link, publish_time, created_at,
			basic_info_tags, region_tags, energy_type_tags, business_field_tags,
			beneficiary_tags, policy_measure_tags, importance_tags, view_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?,
			CAST(? AS JSON), CAST(? AS JSON), CAST(? AS JSON), CAST(? AS JSON),
			CAST(? AS JSON), CAST(? AS JSON), CAST(? AS JSON), ?)
	`, content.ID, content.Title, content.Body, string(content.Type), content.Source,
		content.Link, content.PublishTime, content.CreatedAt,
		marshalTags(content.BasicInfoTags), marshalTags(content.RegionTags),
		marshalTags(content.EnergyTypeTags), marshalTags(content.BusinessFieldTags),
		marshalTags(content.BeneficiaryTags), marshalTags(content.PolicyMeasureTags),
		marshalTags(content.ImportanceTags), content.ViewCount)
	return err
}

// UpdateTagSets 更新内容的七类标签（AI打标完成后回写）
func (r *ContentRepo) UpdateTagSets(ctx context.Context, content *models.Content) error {
	_, err := db.DB.ExecContext(ctx, `
		UPDATE contents SET
			basic_info_tags = CAST(? AS JSON),
			region_tags = CAST(? AS JSON),
			energy_type_tags = CAST(? AS JSON),
			business_field_tags = CAST(? AS JSON),
			beneficiary_tags = CAST(? AS JSON),
			policy_measure_tags = CAST(? AS JSON),
			importance_tags = CAST(? AS JSON)
		WHERE id = ?
	`, marshalTags(content.BasicInfoTags), marshalTags(content.RegionTags),
		marshalTags(content.EnergyTypeTags), marshalTags(content.BusinessFieldTags),
		marshalTags(content.BeneficiaryTags), marshalTags(content.PolicyMeasureTags),
		marshalTags(content.ImportanceTags), content.ID)
	return err
}

// IncrementViewCount 浏览次数+1
func (r *ContentRepo) IncrementViewCount(ctx context.Context, id string) error {
	_, err := db.DB.ExecContext(ctx, `UPDATE contents SET view_count = view_count + 1 WHERE id = ?`, id)
	return err
}

// buildTagQuery 构建标签命中查询条件：任一标签列与给定标签集有交集即命中
func buildTagQuery(tagNames []string, types []models.ContentType) (string, []interface{}) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, len(tagColumns)+len(types))

	if len(tagNames) > 0 {
		tagsJSON := marshalTags(tagNames)
		overlaps := make([]string, 0, len(tagColumns))
		for _, col := range tagColumns {
			overlaps = append(overlaps, fmt.Sprintf("JSON_OVERLAPS(%s, CAST(? AS JSON))", col))
			args = append(args, tagsJSON)
		}
		conditions = append(conditions, "("+strings.Join(overlaps, " OR ")+")")
	}

	if len(types) > 0 {
		placeholders := make([]string, 0, len(types))
		for _, t := range types {
			placeholders = append(placeholders, "?")
			args = append(args, string(t))
		}
		conditions = append(conditions, fmt.Sprintf("type IN (%s)", strings.Join(placeholders, ", ")))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func buildSearchQuery(keyword string, types []models.ContentType) (string, []interface{}) {
	pattern := "%" + escapeLike(keyword) + "%"
	conditions := []string{"(title LIKE ? OR body LIKE ?)"}
	args := []interface{}{pattern, pattern}

	if len(types) > 0 {
		placeholders := make([]string, 0, len(types))
		for _, t := range types {
			placeholders = append(placeholders, "?")
			args = append(args, string(t))
		}
		conditions = append(conditions, fmt.Sprintf("type IN (%s)", strings.Join(placeholders, ", ")))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike 转义LIKE模式中的通配符，关键词按字面匹配
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// scanContents 扫描查询结果并解析JSON标签列
func scanContents(rows *sql.Rows) ([]*models.Content, error) {
	contents := make([]*models.Content, 0)
	for rows.Next() {
		c := &models.Content{}
		var source, link sql.NullString
		var basicInfo, region, energyType, businessField, beneficiary, policyMeasure, importance sql.NullString

		if err := rows.Scan(&c.ID, &c.Title, &c.Body, &c.Type, &source, &link,
			&c.PublishTime, &c.CreatedAt,
			&basicInfo, &region, &energyType, &businessField,
			&beneficiary, &policyMeasure, &importance, &c.ViewCount); err != nil {
			logger.Warn("扫描内容记录失败", "error", err)
			continue
		}
		c.Source = source.String
		c.Link = link.String
		c.BasicInfoTags = unmarshalTags(basicInfo)
		c.RegionTags = unmarshalTags(region)
		c.EnergyTypeTags = unmarshalTags(energyType)
		c.BusinessFieldTags = unmarshalTags(businessField)
		c.BeneficiaryTags = unmarshalTags(beneficiary)
		c.PolicyMeasureTags = unmarshalTags(policyMeasure)
		c.ImportanceTags = unmarshalTags(importance)
		contents = append(contents, c)
	}
	return contents, rows.Err()
}

func marshalTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

func unmarshalTags(val sql.NullString) []string {
	if !val.Valid || val.String == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(val.String), &tags); err != nil {
		return []string{}
	}
	return tags
}
