package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"energy_recommend/config"
	"energy_recommend/models"
	"energy_recommend/services"
	"energy_recommend/utils"
)

// SmartRecommendHandler godoc
// @Summary 获取智能推荐内容
// @Description 基于用户标签画像的分层加权推荐，画像为空或存储异常时降级为最新内容
// @Tags 推荐内容
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param limit query int false "返回条数，默认10"
// @Param skip query int false "跳过条数，用于分页"
// @Success 200 {object} models.RecommendationResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/recommend/{user_id} [get]
func SmartRecommendHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	limit := utils.QueryInt(r, "limit", cfg.Recommend.DefaultLimit)
	skip := utils.QueryInt(r, "skip", 0)

	result, err := services.GetSmartRecommendations(r.Context(), userID, limit, skip)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeRecommendError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"items":    result.Entries,
		"degraded": result.Degraded,
		"reason":   result.Reason,
	})
}

// ViewRecommendHandler godoc
// @Summary 按内容类型视图获取推荐
// @Description 限定候选内容类型的推荐：market（行情+调价）、policy（政策+报告）、announcement（交易公告）
// @Tags 推荐内容
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param view path string true "内容视图" Enums(market, policy, announcement)
// @Param limit query int false "返回条数，默认10"
// @Param skip query int false "跳过条数，用于分页"
// @Success 200 {object} models.RecommendationResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/recommend/{user_id}/view/{view} [get]
func ViewRecommendHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}
	view := chi.URLParam(r, "view")

	limit := utils.QueryInt(r, "limit", cfg.Recommend.DefaultLimit)
	skip := utils.QueryInt(r, "skip", 0)

	result, err := services.GetRecommendationsByView(r.Context(), userID, view, limit, skip)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"view":     view,
		"items":    result.Entries,
		"degraded": result.Degraded,
	})
}

// TieredRecommendHandler godoc
// @Summary 获取分级推荐内容
// @Description 返回精准（地域+能源标签）与扩展（其余类别标签）两个独立的推荐列表
// @Tags 推荐内容
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param primary_limit query int false "精准列表条数，默认6"
// @Param secondary_limit query int false "扩展列表条数，默认4"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/recommend/{user_id}/tiered [get]
func TieredRecommendHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	userID := chi.URLParam(r, "user_id")
	if !utils.ValidateUserID(w, userID) {
		return
	}

	primaryLimit := utils.QueryInt(r, "primary_limit", cfg.Recommend.PrimaryLimit)
	secondaryLimit := utils.QueryInt(r, "secondary_limit", cfg.Recommend.SecondaryLimit)

	result, err := services.GetTieredRecommendations(r.Context(), userID, primaryLimit, secondaryLimit)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeRecommendError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, result)
}

// TrendingHandler godoc
// @Summary 获取热门内容
// @Description 不依赖用户画像，返回带重要性标记的内容，不足时用最新内容补齐
// @Tags 推荐内容
// @Accept json
// @Produce json
// @Param limit query int false "返回条数，默认10"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/recommend/trending [get]
func TrendingHandler(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 10)

	items, err := services.GetTrendingContent(r.Context(), limit)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, items)
}

// SimilarContentHandler godoc
// @Summary 获取相似内容
// @Description 根据标签重叠度返回与指定内容相似的其他内容
// @Tags 推荐内容
// @Accept json
// @Produce json
// @Param content_id path string true "内容ID"
// @Param limit query int false "返回条数，默认5"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 404 {object} models.APIResponse "内容不存在"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/content/{content_id}/similar [get]
func SimilarContentHandler(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")
	limit := utils.QueryInt(r, "limit", 5)

	items, err := services.GetSimilarContent(r.Context(), contentID, limit)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, items)
}
