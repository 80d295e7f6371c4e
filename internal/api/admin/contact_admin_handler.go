package admin

import (
	"net/http"

	"fgblog/internal/api/handler"
	"fgblog/internal/constants"
	"fgblog/internal/model"
	"fgblog/internal/service"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ContactAdminHandler 留言管理处理器
type ContactAdminHandler struct {
	contactService *service.ContactService
	logger         *logger.Logger
}

// NewContactAdminHandler 创建留言管理处理器实例
func NewContactAdminHandler(contactService *service.ContactService, logger *logger.Logger) *ContactAdminHandler {
	return &ContactAdminHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// ListContacts 获取全部留言
func (h *ContactAdminHandler) ListContacts(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrContactNotFound, "获取留言列表")
		return
	}
	handler.OK(c, constants.SuccessGet, messages)
}

// UpdateContact 部分更新留言
func (h *ContactAdminHandler) UpdateContact(c *gin.Context) {
	var p model.ContactPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		handler.Fail(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}

	m, err := h.contactService.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrContactNotFound, "更新留言")
		return
	}
	handler.OK(c, constants.SuccessUpdate, m)
}

// MarkRead 标记留言已读
func (h *ContactAdminHandler) MarkRead(c *gin.Context) {
	m, err := h.contactService.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrContactNotFound, "标记已读")
		return
	}
	handler.OK(c, constants.SuccessUpdate, m)
}

// DeleteContact 删除留言
func (h *ContactAdminHandler) DeleteContact(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrContactNotFound, "删除留言")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}

// DeleteAllContacts 删除全部留言
func (h *ContactAdminHandler) DeleteAllContacts(c *gin.Context) {
	if err := h.contactService.DeleteAll(c.Request.Context()); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrContactNotFound, "清空留言")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}
