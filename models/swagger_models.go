package models

// APIResponse 通用API响应
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// BehaviorRequest 行为记录请求体
type BehaviorRequest struct {
	Action    BehaviorAction `json:"action" example:"click"` // view / click / like / share
	ContentID string         `json:"content_id" example:"7f9c24e5-1a2b-4c3d-9e8f-0a1b2c3d4e5f"`
	Duration  int            `json:"duration,omitempty" example:"45"` // 阅读时长（秒），仅view行为
}

// ProfileInitRequest 画像初始化请求体
type ProfileInitRequest struct {
	City        string   `json:"city" example:"上海"`
	EnergyTypes []string `json:"energy_types" example:"液化天然气(LNG),电力"`
}

// TagUpdateRequest 标签更新请求体
type TagUpdateRequest struct {
	Tags []Tag `json:"tags"`
}

// RecommendationResponse 推荐内容响应
type RecommendationResponse struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message" example:"success"`
	Data    []RecommendEntry `json:"data"`
}
