package handlers

import (
	"net/http"

	"energy_recommend/region"
	"energy_recommend/services"
	"energy_recommend/utils"
)

// SupportedCitiesHandler godoc
// @Summary 获取支持的注册城市
// @Description 按省份分组返回可用于画像初始化的城市列表
// @Tags 元数据
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/meta/cities [get]
func SupportedCitiesHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, region.ProvinceCities())
}

// EnergyTypesHandler godoc
// @Summary 获取能源层级体系
// @Description 返回能源大类及其具体产品，供注册时选择能源偏好
// @Tags 元数据
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "成功"
// @Router /api/meta/energy-types [get]
func EnergyTypesHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, services.EnergyHierarchy())
}
