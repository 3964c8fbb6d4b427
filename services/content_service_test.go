package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchContentsRejectsEmptyKeyword(t *testing.T) {
	// 关键词校验在任何数据库访问之前
	for _, keyword := range []string{"", "   ", "\t"} {
		_, _, err := SearchContents(context.Background(), keyword, 0, 20, nil)
		assert.Error(t, err)
	}
}
