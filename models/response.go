package models

// 响应码定义
const (
	// 成功
	CodeSuccess = 0

	// 客户端错误 (1000-1999)
	CodeInvalidParams   = 1000 // 无效的参数
	CodeMissingParams   = 1001 // 缺少必要参数
	CodeUserNotFound    = 1002 // 用户不存在
	CodeNoUserProfile   = 1003 // 用户没有标签画像
	CodeContentNotFound = 1004 // 内容不存在
	CodeTooManyTags     = 1005 // 标签数量超限
	CodeInvalidCategory = 1006 // 未知标签类别
	CodeUnsupportedCity = 1007 // 不支持的注册城市

	// 服务端错误 (2000-2999)
	CodeServerError      = 2000 // 服务器内部错误
	CodeDatabaseError    = 2001 // 数据库错误
	CodeProfileInitError = 2002 // 画像初始化错误
	CodeRecommendError   = 2003 // 推荐生成错误
	CodeTaggingError     = 2004 // AI打标错误
)

// 错误码对应的消息
var CodeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeInvalidParams:    "无效的参数",
	CodeMissingParams:    "缺少必要参数",
	CodeUserNotFound:     "用户不存在",
	CodeNoUserProfile:    "用户没有标签画像",
	CodeContentNotFound:  "内容不存在",
	CodeTooManyTags:      "标签数量超限",
	CodeInvalidCategory:  "未知标签类别",
	CodeUnsupportedCity:  "不支持的注册城市",
	CodeServerError:      "服务器内部错误",
	CodeDatabaseError:    "数据库错误",
	CodeProfileInitError: "画像初始化错误",
	CodeRecommendError:   "推荐生成错误",
	CodeTaggingError:     "AI打标错误",
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "未知错误"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse 创建自定义错误消息的响应
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
