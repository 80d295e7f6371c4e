package handler

import (
	"fgblog/internal/constants"
	"fgblog/internal/service"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PostHandler 文章处理器
type PostHandler struct {
	postService *service.PostService
	logger      *logger.Logger
}

// NewPostHandler 创建文章处理器实例
func NewPostHandler(postService *service.PostService, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// ListPosts 获取文章列表
// @Summary 获取文章列表
// @Tags 文章
// @Produce json
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		ServiceError(c, h.logger, err, constants.ErrPostNotFound, "获取文章列表")
		return
	}
	OK(c, constants.SuccessGet, posts)
}

// GetPost 获取文章详情
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, h.logger, err, constants.ErrPostNotFound, "获取文章")
		return
	}
	OK(c, constants.SuccessGet, post)
}

// IncrementView 文章浏览量加一
// @Summary 增加浏览量
// @Tags 文章
// @Produce json
// @Param id path string true "文章ID"
// @Success 200 {object} map[string]interface{} "成功，data.viewCount 为新的浏览量"
// @Router /api/v1/posts/{id}/view [post]
func (h *PostHandler) IncrementView(c *gin.Context) {
	count, err := h.postService.IncrementView(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, h.logger, err, constants.ErrPostNotFound, "增加浏览量")
		return
	}
	OK(c, constants.SuccessUpdate, gin.H{"viewCount": count})
}
