package constants

// 通用错误消息
const (
	// 认证相关错误
	ErrUnauthorized       = "未授权，请先登录"
	ErrInvalidToken       = "无效的Token"
	ErrInvalidCredentials = "用户名或密码错误"

	// 参数相关错误
	ErrInvalidParams  = "参数错误"
	ErrInvalidRequest = "无效请求格式"

	// 资源相关错误
	ErrPostNotFound         = "文章不存在"
	ErrCategoryNotFound     = "分类不存在"
	ErrContactNotFound      = "留言不存在"
	ErrAnnouncementNotFound = "公告不存在"

	// 系统错误
	ErrInternalServer = "服务器内部错误"
)

// 成功消息
const (
	SuccessLogin    = "登录成功"
	SuccessCreate   = "创建成功"
	SuccessUpdate   = "更新成功"
	SuccessDelete   = "删除成功"
	SuccessGet      = "获取成功"
	SuccessDismiss  = "已关闭"
	CategoryExists  = "分类已存在"
	SuccessContact  = "留言已发送"
	SuccessVerified = "令牌有效"
)
