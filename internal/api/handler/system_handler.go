package handler

import (
	"context"
	"net/http"
	"time"

	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// SystemHandler 系统状态处理器
type SystemHandler struct {
	db          *sqlx.DB
	redisClient *redis.Client
	logger      *logger.Logger
}

// NewSystemHandler 创建系统状态处理器实例
func NewSystemHandler(db *sqlx.DB, redisClient *redis.Client, logger *logger.Logger) *SystemHandler {
	return &SystemHandler{
		db:          db,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Health 健康检查，数据库不可用时返回 503
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "disabled"}
	code := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("数据库健康检查失败", "error", err)
		status["database"] = "down"
		code = http.StatusServiceUnavailable
	}
	if h.redisClient != nil {
		status["redis"] = "ok"
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			// 缓存不可用不影响服务
			h.logger.Warn("Redis健康检查失败", "error", err)
			status["redis"] = "down"
		}
	}

	c.JSON(code, gin.H{"code": code, "msg": http.StatusText(code), "data": status})
}
