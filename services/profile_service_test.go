package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_recommend/models"
)

func TestUpdateUserTagsRejectsTooManyTags(t *testing.T) {
	tags := make([]models.Tag, 0, 51)
	for i := 0; i < 51; i++ {
		tags = append(tags, models.Tag{Category: models.CategoryBasicInfo, Name: "标签", Weight: 1.0})
	}

	_, err := UpdateUserTags(context.Background(), "u1", tags)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyTags)
}

func TestUpdateUserTagsRejectsPerCategoryOverflow(t *testing.T) {
	tags := make([]models.Tag, 0, 11)
	for i := 0; i < 11; i++ {
		tags = append(tags, models.Tag{Category: models.CategoryEnergyType, Name: "天然气", Weight: 1.0})
	}

	_, err := UpdateUserTags(context.Background(), "u1", tags)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyTags)
}

func TestUpdateUserTagsRejectsUnknownCategory(t *testing.T) {
	tags := []models.Tag{{Category: "mystery", Name: "x", Weight: 1.0}}

	_, err := UpdateUserTags(context.Background(), "u1", tags)
	assert.Error(t, err)
}

func TestUpdateUserTagsRejectsEmptyName(t *testing.T) {
	tags := []models.Tag{{Category: models.CategoryCity, Name: "", Weight: 1.0}}

	_, err := UpdateUserTags(context.Background(), "u1", tags)
	assert.Error(t, err)
}

func TestEnergyHierarchyExposesAllFamilies(t *testing.T) {
	hierarchy := EnergyHierarchy()

	assert.Len(t, hierarchy, 7)
	assert.Contains(t, hierarchy, "天然气")
	assert.Contains(t, hierarchy["天然气"], "液化天然气(LNG)")
}
