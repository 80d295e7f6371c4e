package admin

import (
	"net/http"

	"fgblog/internal/api/handler"
	"fgblog/internal/constants"
	"fgblog/internal/service"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 后台概览处理器
type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler 创建后台概览处理器实例
func NewDashboardHandler(dashboardService *service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard 获取统计数据和最新文章
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dash, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		h.logger.Error("获取后台概览失败", "error", err)
		handler.Fail(c, http.StatusInternalServerError, constants.ErrInternalServer)
		return
	}
	handler.OK(c, constants.SuccessGet, dash)
}
