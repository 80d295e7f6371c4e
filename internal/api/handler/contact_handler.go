package handler

import (
	"net/http"

	"fgblog/internal/constants"
	"fgblog/internal/service"
	"fgblog/internal/types"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ContactHandler 联系表单处理器
type ContactHandler struct {
	contactService *service.ContactService
	logger         *logger.Logger
}

// NewContactHandler 创建联系表单处理器实例
func NewContactHandler(contactService *service.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// CreateContact 提交留言
// @Summary 提交留言
// @Description 访客提交联系表单，启用极验时需要携带 captcha 参数
// @Tags 留言
// @Accept json
// @Produce json
// @Param body body types.CreateContactRequest true "留言内容"
// @Success 201 {object} map[string]interface{} "成功"
// @Router /api/v1/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req types.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "姓名、邮箱和留言内容不能为空")
		return
	}

	m := req.ContactMessage()
	if err := h.contactService.Create(c.Request.Context(), &m, req.Captcha); err != nil {
		ServiceError(c, h.logger, err, constants.ErrContactNotFound, "提交留言")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code": http.StatusCreated,
		"msg":  constants.SuccessContact,
		"data": m,
	})
}
