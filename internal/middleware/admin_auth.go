package middleware

import (
	"net/http"

	"fgblog/internal/constants"
	"fgblog/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminAuth 管理员认证中间件，校验 Authorization: Bearer <token>
func AdminAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "msg": constants.ErrUnauthorized})
			return
		}

		claims, err := authService.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "msg": constants.ErrInvalidToken})
			return
		}

		// 将管理员用户名存储到上下文中
		c.Set("admin", claims.Username)
		c.Next()
	}
}
