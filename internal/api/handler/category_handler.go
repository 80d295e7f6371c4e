package handler

import (
	"fgblog/internal/constants"
	"fgblog/internal/service"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *logger.Logger
}

// NewCategoryHandler 创建分类处理器实例
func NewCategoryHandler(categoryService *service.CategoryService, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// ListCategories 获取全部分类名
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	names, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		ServiceError(c, h.logger, err, constants.ErrCategoryNotFound, "获取分类列表")
		return
	}
	OK(c, constants.SuccessGet, names)
}
