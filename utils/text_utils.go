package utils

import "strings"

// DeduplicateSlice 去重字符串切片，剔除空白项并保持顺序
func DeduplicateSlice(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, val := range input {
		val = strings.TrimSpace(val)
		if val != "" && !seen[val] {
			result = append(result, val)
			seen[val] = true
		}
	}

	return result
}

// TruncateRunes 按字符数截断文本，用于控制送入模型的正文长度
func TruncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// FilterSpecialSymbols 过滤文本中的特殊符号，只保留常见标点符号和正常内容
func FilterSpecialSymbols(text string) string {
	// 定义要保留的常见标点符号
	commonPunctuation := map[rune]bool{
		'，': true, '。': true, '！': true, '？': true, '：': true, '；': true,
		'、': true, '（': true, '）': true,
		'【': true, '】': true, '《': true, '》': true, '—': true,
		',': true, '.': true, '!': true, '?': true, ':': true, ';': true,
		'"': true, '\'': true, '(': true, ')': true, '[': true, ']': true,
		'{': true, '}': true, '<': true, '>': true, '-': true, '_': true,
		'+': true, '=': true, '/': true, '\\': true, '|': true, ' ': true,
		'\n': true, '\r': true, '\t': true,
	}

	var result strings.Builder
	for _, r := range []rune(text) {
		// 保留中文字符、英文字母、数字和常见标点符号
		if (r >= '一' && r <= '龥') || // 中文字符
			(r >= 'A' && r <= 'Z') || // 大写英文字母
			(r >= 'a' && r <= 'z') || // 小写英文字母
			(r >= '0' && r <= '9') || // 数字
			commonPunctuation[r] { // 常见标点符号
			result.WriteRune(r)
		}
	}

	return result.String()
}
