package admin

import (
	"github.com/gin-gonic/gin"
)

// Handlers 管理员API处理器集合
type Handlers struct {
	Posts         *PostAdminHandler
	Categories    *CategoryAdminHandler
	Contacts      *ContactAdminHandler
	Announcements *AnnouncementAdminHandler
	Dashboard     *DashboardHandler
}

// RegisterAdminRoutes 注册管理员API路由，router 应已挂载认证中间件
func RegisterAdminRoutes(router *gin.RouterGroup, h Handlers) {
	// 文章管理路由
	posts := router.Group("/posts")
	{
		posts.POST("", h.Posts.CreatePost)
		posts.PUT("/:id", h.Posts.UpdatePost)
		posts.DELETE("/:id", h.Posts.DeletePost)
		posts.DELETE("", h.Posts.DeleteAllPosts)
	}

	// 分类管理路由
	categories := router.Group("/categories")
	{
		categories.POST("", h.Categories.CreateCategory)
		categories.DELETE("/:name", h.Categories.DeleteCategory)
		categories.DELETE("", h.Categories.DeleteAllCategories)
	}

	// 留言管理路由
	contacts := router.Group("/contacts")
	{
		contacts.GET("", h.Contacts.ListContacts)
		contacts.PUT("/:id", h.Contacts.UpdateContact)
		contacts.POST("/:id/read", h.Contacts.MarkRead)
		contacts.DELETE("/:id", h.Contacts.DeleteContact)
		contacts.DELETE("", h.Contacts.DeleteAllContacts)
	}

	// 公告管理路由
	announcements := router.Group("/announcements")
	{
		announcements.GET("", h.Announcements.GetAdminAnnouncements)
		announcements.GET("/:id", h.Announcements.GetAdminAnnouncementByID)
		announcements.POST("", h.Announcements.CreateAnnouncement)
		announcements.PUT("/:id", h.Announcements.UpdateAnnouncement)
		announcements.DELETE("/:id", h.Announcements.DeleteAnnouncement)
		announcements.DELETE("", h.Announcements.DeleteAllAnnouncements)
	}

	router.GET("/dashboard", h.Dashboard.GetDashboard)
}
