package admin

import (
	"net/http"

	"fgblog/internal/api/handler"
	"fgblog/internal/constants"
	"fgblog/internal/model"
	"fgblog/internal/service"
	"fgblog/internal/types"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AnnouncementAdminHandler 公告管理处理器
type AnnouncementAdminHandler struct {
	announcementService *service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementAdminHandler 创建公告管理处理器实例
func NewAnnouncementAdminHandler(announcementService *service.AnnouncementService, logger *logger.Logger) *AnnouncementAdminHandler {
	return &AnnouncementAdminHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// CreateAnnouncement 创建公告
// @Summary 创建公告
// @Description 未提供的字段取默认值：启用、横幅展示、优先级0、accent主题、无结束时间
// @Tags 公告管理
// @Accept json
// @Produce json
// @Param announcement body types.CreateAnnouncementRequest true "公告信息"
// @Success 201 {object} map[string]interface{} "成功"
// @Router /api/v1/admin/announcements [post]
func (h *AnnouncementAdminHandler) CreateAnnouncement(c *gin.Context) {
	var req types.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("创建公告参数绑定失败", "error", err)
		handler.Fail(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}

	a := req.Announcement()
	if err := h.announcementService.Create(c.Request.Context(), &a); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "创建公告")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "msg": constants.SuccessCreate, "data": a})
}

// GetAdminAnnouncements 获取全部公告（含未启用）
func (h *AnnouncementAdminHandler) GetAdminAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "获取公告列表")
		return
	}
	handler.OK(c, constants.SuccessGet, model.PaginatedAnnouncements{
		Total: int64(len(announcements)),
		Items: announcements,
	})
}

// GetAdminAnnouncementByID 获取单个公告
func (h *AnnouncementAdminHandler) GetAdminAnnouncementByID(c *gin.Context) {
	a, err := h.announcementService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "获取公告")
		return
	}
	handler.OK(c, constants.SuccessGet, a)
}

// UpdateAnnouncement 部分更新公告
// @Summary 更新公告
// @Description 只修改请求中出现且类型正确的字段，null 和类型错误的字段保持原值
// @Tags 公告管理
// @Accept json
// @Produce json
// @Param id path string true "公告ID"
// @Param announcement body model.AnnouncementPatch true "要修改的字段"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/admin/announcements/{id} [put]
func (h *AnnouncementAdminHandler) UpdateAnnouncement(c *gin.Context) {
	var p model.AnnouncementPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		handler.Fail(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}

	a, err := h.announcementService.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "更新公告")
		return
	}
	handler.OK(c, constants.SuccessUpdate, a)
}

// DeleteAnnouncement 删除公告
func (h *AnnouncementAdminHandler) DeleteAnnouncement(c *gin.Context) {
	if err := h.announcementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "删除公告")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}

// DeleteAllAnnouncements 删除全部公告
func (h *AnnouncementAdminHandler) DeleteAllAnnouncements(c *gin.Context) {
	if err := h.announcementService.DeleteAll(c.Request.Context()); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrAnnouncementNotFound, "清空公告")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}
