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

// PostAdminHandler 文章管理处理器
type PostAdminHandler struct {
	postService *service.PostService
	logger      *logger.Logger
}

// NewPostAdminHandler 创建文章管理处理器实例
func NewPostAdminHandler(postService *service.PostService, logger *logger.Logger) *PostAdminHandler {
	return &PostAdminHandler{
		postService: postService,
		logger:      logger,
	}
}

// CreatePost 创建文章
// @Summary 创建文章
// @Tags 文章管理
// @Accept json
// @Produce json
// @Param post body types.CreatePostRequest true "文章信息"
// @Success 201 {object} map[string]interface{} "成功"
// @Router /api/v1/admin/posts [post]
func (h *PostAdminHandler) CreatePost(c *gin.Context) {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Fail(c, http.StatusBadRequest, constants.ErrInvalidParams+"："+err.Error())
		return
	}

	post := req.Post()
	if err := h.postService.Create(c.Request.Context(), &post); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrPostNotFound, "创建文章")
		return
	}

	h.logger.Info("文章已创建", "id", post.ID, "admin", c.GetString("admin"))
	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "msg": constants.SuccessCreate, "data": post})
}

// UpdatePost 部分更新文章，只修改请求中出现的字段
// @Summary 更新文章
// @Tags 文章管理
// @Accept json
// @Produce json
// @Param id path string true "文章ID"
// @Param post body model.PostPatch true "要修改的字段"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/admin/posts/{id} [put]
func (h *PostAdminHandler) UpdatePost(c *gin.Context) {
	var p model.PostPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		handler.Fail(c, http.StatusBadRequest, constants.ErrInvalidRequest)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrPostNotFound, "更新文章")
		return
	}
	handler.OK(c, constants.SuccessUpdate, post)
}

// DeletePost 删除文章
func (h *PostAdminHandler) DeletePost(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrPostNotFound, "删除文章")
		return
	}
	handler.OK(c, constants.SuccessDelete, nil)
}

// DeleteAllPosts 删除全部文章
func (h *PostAdminHandler) DeleteAllPosts(c *gin.Context) {
	if err := h.postService.DeleteAll(c.Request.Context()); err != nil {
		handler.ServiceError(c, h.logger, err, constants.ErrPostNotFound, "清空文章")
		return
	}
	h.logger.Warn("已清空全部文章", "admin", c.GetString("admin"))
	handler.OK(c, constants.SuccessDelete, nil)
}
