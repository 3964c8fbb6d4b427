package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"energy_recommend/models"
	"energy_recommend/services"
	"energy_recommend/utils"
)

// InitProfileHandler godoc
// @Summary 初始化用户标签画像
// @Description 根据注册城市和能源偏好初始化画像，自动派生省份、经济区域和能源大类标签
// @Tags 用户画像
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param request body models.ProfileInitRequest true "初始化参数"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/profile/{user_id}/init [post]
func InitProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req models.ProfileInitRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}
	if req.City == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{"param": "city"})
		return
	}

	profile, err := services.InitializeProfileByCity(r.Context(), userID, req.City, req.EnergyTypes)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedCity) {
			utils.WriteCustomErrorResponse(w, models.CodeUnsupportedCity, err.Error(), map[string]interface{}{})
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeProfileInitError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, profile)
}

// GetProfileHandler godoc
// @Summary 获取用户标签画像
// @Description 获取用户的标签画像，不存在时返回默认画像
// @Tags 用户画像
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/profile/{user_id} [get]
func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	profile, err := services.GetUserProfile(r.Context(), userID)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeNoUserProfile)
		return
	}

	utils.WriteSuccessResponse(w, profile)
}

// UpdateTagsHandler godoc
// @Summary 全量更新用户标签
// @Description 覆盖式更新用户的全部标签，总数上限50个，单类别上限10个
// @Tags 用户画像
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param request body models.TagUpdateRequest true "标签列表"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/profile/{user_id}/tags [put]
func UpdateTagsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	var req models.TagUpdateRequest
	if !utils.DecodeJSONBody(w, r, &req) {
		return
	}

	profile, err := services.UpdateUserTags(r.Context(), userID, req.Tags)
	if err != nil {
		if errors.Is(err, services.ErrTooManyTags) {
			utils.WriteCustomErrorResponse(w, models.CodeTooManyTags, err.Error(), map[string]interface{}{})
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, profile)
}

// ResetProfileHandler godoc
// @Summary 重置用户标签画像
// @Description 删除现有画像并重建默认画像（天然气+电力，权重1.0）
// @Tags 用户画像
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/profile/{user_id}/reset [post]
func ResetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	profile, err := services.ResetUserProfile(r.Context(), userID)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, profile)
}
