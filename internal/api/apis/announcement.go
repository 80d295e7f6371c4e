package apis

import (
	"fgblog/internal/api/handler"
	"fgblog/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAnnouncementRoutes 注册公告相关路由，横幅接口需要访客标识
func RegisterAnnouncementRoutes(router *gin.RouterGroup, announcementHandler *handler.AnnouncementHandler) {
	router.GET("/announcements", announcementHandler.GetAnnouncements)

	bannerGroup := router.Group("/announcements/banner", middleware.Visitor())
	{
		bannerGroup.GET("", announcementHandler.GetBanner)
		bannerGroup.POST("/dismiss", announcementHandler.DismissBanner)
	}
}
