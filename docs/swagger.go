package docs

// @title 能源内容推荐服务 API
// @version 1.0
// @description 基于用户标签画像的能源行业内容推荐系统，支持分层加权推荐、分级推荐和行为权重调整
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
