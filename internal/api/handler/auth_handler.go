package handler

import (
	"net/http"

	"fgblog/internal/constants"
	"fgblog/internal/service"
	"fgblog/internal/types"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler 管理员登录处理器
type AuthHandler struct {
	authService *service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler 创建登录处理器实例
func NewAuthHandler(authService *service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body types.LoginRequest true "用户名和密码"
// @Success 200 {object} map[string]interface{} "成功，data.token 为令牌"
// @Router /api/v1/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "用户名和密码不能为空")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warn("管理员登录失败", "username", req.Username, "client_ip", c.ClientIP())
		Fail(c, http.StatusUnauthorized, constants.ErrInvalidCredentials)
		return
	}

	OK(c, constants.SuccessLogin, gin.H{"token": token})
}

// Verify 校验令牌
// @Summary 校验令牌
// @Tags 认证
// @Produce json
// @Param Authorization header string true "Bearer 令牌"
// @Success 200 {object} map[string]interface{} "成功"
// @Router /api/v1/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		Fail(c, http.StatusUnauthorized, constants.ErrUnauthorized)
		return
	}

	claims, err := h.authService.Verify(token)
	if err != nil {
		Fail(c, http.StatusUnauthorized, constants.ErrInvalidToken)
		return
	}

	OK(c, constants.SuccessVerified, gin.H{"valid": true, "user": claims})
}
