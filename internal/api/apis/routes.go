package apis

import (
	"fgblog/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Handlers 公开API处理器集合
type Handlers struct {
	Auth          *handler.AuthHandler
	Posts         *handler.PostHandler
	Categories    *handler.CategoryHandler
	Contacts      *handler.ContactHandler
	Announcements *handler.AnnouncementHandler
	Sitemap       *handler.SitemapHandler
	System        *handler.SystemHandler
}

// RegisterPublicRoutes 注册不需要认证的路由
func RegisterPublicRoutes(v1 *gin.RouterGroup, h Handlers) {
	v1.POST("/login", h.Auth.Login)
	v1.GET("/verify", h.Auth.Verify)

	v1.GET("/posts", h.Posts.ListPosts)
	v1.GET("/posts/:id", h.Posts.GetPost)
	v1.POST("/posts/:id/view", h.Posts.IncrementView)

	v1.GET("/categories", h.Categories.ListCategories)
	v1.POST("/contacts", h.Contacts.CreateContact)

	RegisterAnnouncementRoutes(v1, h.Announcements)

	v1.GET("/sitemap.xml", h.Sitemap.Sitemap)
	v1.GET("/health", h.System.Health)
}
