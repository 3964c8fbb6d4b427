package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_recommend/models"
)

func TestBuildSearchQuery(t *testing.T) {
	where, args := buildSearchQuery("天然气", nil)

	assert.Equal(t, "WHERE (title LIKE ? OR body LIKE ?)", where)
	require.Len(t, args, 2)
	assert.Equal(t, "%天然气%", args[0])
	assert.Equal(t, "%天然气%", args[1])
}

func TestBuildSearchQueryWithTypeFilter(t *testing.T) {
	where, args := buildSearchQuery("电价", []models.ContentType{models.ContentPolicy, models.ContentNews})

	assert.Equal(t, "WHERE (title LIKE ? OR body LIKE ?) AND type IN (?, ?)", where)
	require.Len(t, args, 4)
	assert.Equal(t, "policy", args[2])
	assert.Equal(t, "news", args[3])
}

func TestBuildSearchQueryEscapesWildcards(t *testing.T) {
	// 关键词中的通配符按字面匹配
	_, args := buildSearchQuery(`50%_折扣\`, nil)

	require.Len(t, args, 2)
	assert.Equal(t, `%50\%\_折扣\\%`, args[0])
}

func TestBuildTagQueryEmpty(t *testing.T) {
	where, args := buildTagQuery(nil, nil)

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildTagQueryCoversAllTagColumns(t *testing.T) {
	where, args := buildTagQuery([]string{"上海", "液化天然气(LNG)"}, nil)

	// 七个标签列各占一个 JSON_OVERLAPS 条件和一个参数
	assert.Contains(t, where, "JSON_OVERLAPS(basic_info_tags, CAST(? AS JSON))")
	assert.Contains(t, where, "JSON_OVERLAPS(importance_tags, CAST(? AS JSON))")
	require.Len(t, args, len(tagColumns))
	assert.JSONEq(t, `["上海","液化天然气(LNG)"]`, args[0].(string))
}
