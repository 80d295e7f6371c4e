package middleware

import (
	"net/http"
	"time"

	"fgblog/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitorCookie 访客标识Cookie名
const VisitorCookie = "fg_visitor"

const visitorKey = "visitor_id"

// Logger 日志中间件
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// 处理请求
		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("访问日志",
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
		)
	}
}

// Recovery 恢复中间件
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("服务器错误", "panic", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "msg": "服务器内部错误"})
			}
		}()
		c.Next()
	}
}

// CORS 跨域中间件
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "Cache-Control", "X-Requested-With"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

// Visitor 读取访客Cookie，没有时签发新的 uuid
func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(VisitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, id, 365*24*3600, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

// VisitorID 返回 Visitor 中间件设置的访客标识
func VisitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}
