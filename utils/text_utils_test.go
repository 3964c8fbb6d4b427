package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateSlice(t *testing.T) {
	input := []string{"天然气", " 电力 ", "天然气", "", "电力", "煤炭"}
	assert.Equal(t, []string{"天然气", "电力", "煤炭"}, DeduplicateSlice(input))
	assert.Empty(t, DeduplicateSlice(nil))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "天然气", TruncateRunes("天然气价格", 3))
	assert.Equal(t, "abc", TruncateRunes("abc", 10))
	assert.Equal(t, "", TruncateRunes("", 5))
}

func TestFilterSpecialSymbols(t *testing.T) {
	assert.Equal(t, "上海LNG价格上调，详见公告。", FilterSpecialSymbols("上海LNG✨价格上调，详见公告。🔥"))
	assert.Equal(t, "abc 123", FilterSpecialSymbols("abc★ 123"))
}
