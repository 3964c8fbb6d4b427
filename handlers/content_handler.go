package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"energy_recommend/config"
	"energy_recommend/models"
	"energy_recommend/services"
	"energy_recommend/utils"
)

// IngestContentHandler godoc
// @Summary 录入内容
// @Description 录入新内容并立即尝试AI打标，打标失败时由每日批量任务兜底
// @Tags 内容管理
// @Accept json
// @Produce json
// @Param request body models.Content true "内容"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "参数错误"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/content [post]
func IngestContentHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	var content models.Content
	if !utils.DecodeJSONBody(w, r, &content) {
		return
	}

	if err := services.IngestContent(r.Context(), cfg, &content); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, content)
}

// GetContentHandler godoc
// @Summary 获取单条内容
// @Tags 内容管理
// @Accept json
// @Produce json
// @Param content_id path string true "内容ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 404 {object} models.APIResponse "内容不存在"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/content/{content_id} [get]
func GetContentHandler(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")

	content, err := services.GetContentByID(r.Context(), contentID)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}
	if content == nil {
		utils.WriteErrorResponse(w, models.CodeContentNotFound, map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, content)
}

// ListContentHandler godoc
// @Summary 分页获取内容列表
// @Tags 内容管理
// @Accept json
// @Produce json
// @Param limit query int false "返回条数，默认20"
// @Param skip query int false "跳过条数"
// @Param type query string false "内容类型过滤" Enums(news, policy, report, announcement, price)
// @Success 200 {object} models.APIResponse "成功"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/content [get]
func ListContentHandler(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 20)
	skip := utils.QueryInt(r, "skip", 0)

	var types []models.ContentType
	if t := r.URL.Query().Get("type"); t != "" {
		types = []models.ContentType{models.ContentType(t)}
	}

	items, err := services.ListContents(r.Context(), skip, limit, types)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, items)
}

// SearchContentHandler godoc
// @Summary 关键词搜索内容
// @Description 在标题和正文中搜索关键词，支持类型过滤和分页
// @Tags 内容管理
// @Accept json
// @Produce json
// @Param keyword query string true "搜索关键词"
// @Param limit query int false "返回条数，默认20"
// @Param skip query int false "跳过条数"
// @Param type query string false "内容类型过滤" Enums(news, policy, report, announcement, price)
// @Success 200 {object} models.APIResponse "成功"
// @Failure 400 {object} models.APIResponse "缺少关键词"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/content/search [get]
func SearchContentHandler(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{"param": "keyword"})
		return
	}
	limit := utils.QueryInt(r, "limit", 20)
	skip := utils.QueryInt(r, "skip", 0)

	var types []models.ContentType
	if t := r.URL.Query().Get("type"); t != "" {
		types = []models.ContentType{models.ContentType(t)}
	}

	items, total, err := services.SearchContents(r.Context(), keyword, skip, limit, types)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"total": total,
		"items": items,
	})
}

// RetagContentHandler godoc
// @Summary 手动触发单条内容重新打标
// @Tags 内容管理
// @Accept json
// @Produce json
// @Param content_id path string true "内容ID"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 404 {object} models.APIResponse "内容不存在"
// @Failure 500 {object} models.APIResponse "服务器错误"
// @Router /api/content/{content_id}/retag [post]
func RetagContentHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	contentID := chi.URLParam(r, "content_id")

	content, err := services.GetContentByID(r.Context(), contentID)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}
	if content == nil {
		utils.WriteErrorResponse(w, models.CodeContentNotFound, map[string]interface{}{})
		return
	}

	if err := services.TagContent(r.Context(), cfg, content); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeTaggingError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, content)
}
