package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"energy_recommend/models"
	"energy_recommend/services"
	"energy_recommend/utils"
)

// RecordBehaviorHandler godoc
// @Summary 记录用户行为事件
// @Description 记录浏览/点击/点赞/分享行为，行为在推荐时转化为临时权重加成，不回写画像
// @Tags 用户行为
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param request body models.BehaviorRequest true "行为参数"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/behavior/{user_id} [post]
func RecordBehaviorHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req models.BehaviorRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if req.ContentID == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{"param": "content_id"})
		return
	}

	event := &models.BehaviorEvent{
		UserID:    userID,
		Action:    req.Action,
		ContentID: req.ContentID,
		Duration:  req.Duration,
	}
	if err := services.RecordUserBehavior(r.Context(), event); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{"event_id": event.ID})
}

// BehaviorInsightsHandler godoc
// @Summary 获取用户行为洞察
// @Description 统计最近7天的行为分布、阅读时长、偏好内容类型和活跃度
// @Tags 用户行为
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/behavior/{user_id}/insights [get]
func BehaviorInsightsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	insights, err := services.GetBehaviorInsights(r.Context(), userID)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, insights)
}
