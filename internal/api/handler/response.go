package handler

import (
	"errors"
	"net/http"

	"fgblog/internal/constants"
	"fgblog/internal/patch"
	"fgblog/internal/service"
	"fgblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OK 以统一格式返回成功响应
func OK(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code": http.StatusOK,
		"msg":  msg,
		"data": data,
	})
}

// Fail 以统一格式返回错误响应，HTTP状态码与 code 一致
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"code": status,
		"msg":  msg,
	})
}

// ServiceError 把服务层错误映射为响应：
// 校验错误 400，记录不存在 404，其余 500 并记录日志
func ServiceError(c *gin.Context, log *logger.Logger, err error, notFoundMsg, action string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		Fail(c, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, service.ErrValidation):
		Fail(c, http.StatusBadRequest, constants.ErrInvalidParams)
	case errors.Is(err, patch.ErrNotFound):
		Fail(c, http.StatusNotFound, notFoundMsg)
	default:
		log.Error(action+"失败", "error", err, "path", c.Request.URL.Path)
		Fail(c, http.StatusInternalServerError, action+"失败")
	}
}
