package admin

import (
	"net/http"

	"fgblog/internal/api/handler"
	"fgblog/internal/constants"
	"fgblog/internal/service"
	"fgblog/internal/types"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CategoryAdminHandler 分类管理处理器
type CategoryAdminHandler struct {
	categoryService *service.CategoryService
	logger          *logger.Logger
}

// NewCategoryAdminHandler 创建分类管理处理器实例
func NewCategoryAdminHandler(categoryService *service.CategoryService, logger *logger.Logger) *CategoryAdminHandler {
	return &CategoryAdminHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// CreateCategory 创建分类，已存在时返回200
func (h *CategoryAdminHandler) CreateCategory(c *gin.Context) {
	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Fail(c, http.StatusBadRequest, "分类名不能为空")
		return
	}

	created, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrCategoryNotFound, "创建分类")
		return
	}
	if !created {
		handler.OK(c, constants.CategoryExists, gin.H{"name": req.Name})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "msg": constants.SuccessCreate, "data": gin.H{"name": req.Name}})
}

// DeleteCategory 删除分类
func (h *CategoryAdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("name")); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrCategoryNotFound, "删除分类")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}

// DeleteAllCategories 删除全部分类
func (h *CategoryAdminHandler) DeleteAllCategories(c *gin.Context) {
	if err := h.categoryService.DeleteAll(c.Request.Context()); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrCategoryNotFound, "清空分类")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}
