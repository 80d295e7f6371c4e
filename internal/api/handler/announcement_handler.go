package handler

import (
	"net/http"

	"fgblog/internal/constants"
	"fgblog/internal/middleware"
	"fgblog/internal/service"
	"fgblog/internal/types"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler 公告处理器
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler 创建公告处理器实例
func NewAnnouncementHandler(announcementService *service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// GetAnnouncements 获取公告列表
// @Summary 获取公告列表
// @Description activeOnly=true 时只返回当前时间窗口内的启用公告
// @Tags 公告
// @Produce json
// @Param activeOnly query bool false "只返回生效中的公告"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/announcements [get]
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		announcements interface{}
		err           error
	)
	if c.Query("activeOnly") == "true" {
		announcements, err = h.announcementService.ListActive(ctx)
	} else {
		announcements, err = h.announcementService.List(ctx)
	}
	if err != nil {
		ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "获取公告列表")
		return
	}

	OK(c, constants.SuccessGet, announcements)
}

// GetBanner 获取当前访客应看到的横幅，没有时 data 为 null
// @Summary 获取横幅公告
// @Tags 公告
// @Produce json
// @Param dismissed query string false "客户端保存的已关闭公告ID，优先于服务端记录"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/announcements/banner [get]
func (h *AnnouncementHandler) GetBanner(c *gin.Context) {
	var dismissed *string
	if id, ok := c.GetQuery("dismissed"); ok {
		dismissed = &id
	}

	current, err := h.announcementService.Banner(c.Request.Context(), middleware.VisitorID(c), dismissed)
	if err != nil {
		ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "获取横幅公告")
		return
	}

	OK(c, constants.SuccessGet, current)
}

// DismissBanner 关闭横幅公告
// @Summary 关闭横幅公告
// @Tags 公告
// @Accept json
// @Produce json
// @Param body body types.DismissRequest true "公告ID"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/announcements/banner/dismiss [post]
func (h *AnnouncementHandler) DismissBanner(c *gin.Context) {
	var req types.DismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
		return
	}

	if err := h.announcementService.Dismiss(c.Request.Context(), middleware.VisitorID(c), req.ID); err != nil {
		ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "关闭横幅")
		return
	}

	OK(c, constants.SuccessDismiss, gin.H{"id": req.ID})
}
