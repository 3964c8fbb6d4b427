package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"energy_recommend/config"
	_ "energy_recommend/docs" // 导入 swagger 文档
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	// 推荐
	r.Get("/api/recommend/trending", TrendingHandler)
	r.Get("/api/recommend/{user_id}", func(w http.ResponseWriter, r *http.Request) {
		SmartRecommendHandler(w, r, cfg)
	})
	r.Get("/api/recommend/{user_id}/view/{view}", func(w http.ResponseWriter, r *http.Request) {
		ViewRecommendHandler(w, r, cfg)
	})
	r.Get("/api/recommend/{user_id}/tiered", func(w http.ResponseWriter, r *http.Request) {
		TieredRecommendHandler(w, r, cfg)
	})

	// 用户画像
	r.Post("/api/profile/{user_id}/init", InitProfileHandler)
	r.Get("/api/profile/{user_id}", GetProfileHandler)
	r.Put("/api/profile/{user_id}/tags", UpdateTagsHandler)
	r.Post("/api/profile/{user_id}/reset", ResetProfileHandler)

	// 用户行为
	r.Post("/api/behavior/{user_id}", RecordBehaviorHandler)
	r.Get("/api/behavior/{user_id}/insights", BehaviorInsightsHandler)

	// 内容
	r.Post("/api/content", func(w http.ResponseWriter, r *http.Request) {
		IngestContentHandler(w, r, cfg)
	})
	r.Get("/api/content", ListContentHandler)
	r.Get("/api/content/search", SearchContentHandler)
	r.Get("/api/content/{content_id}", GetContentHandler)
	r.Get("/api/content/{content_id}/similar", SimilarContentHandler)
	r.Post("/api/content/{content_id}/retag", func(w http.ResponseWriter, r *http.Request) {
		RetagContentHandler(w, r, cfg)
	})

	// 元数据
	r.Get("/api/meta/cities", SupportedCitiesHandler)
	r.Get("/api/meta/energy-types", EnergyTypesHandler)
}
