package service

import (
	"errors"

	"k8s.io/apimachinery/pkg/util/rand"
)

// ErrValidation 请求数据不合法
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken 令牌无效或已过期
var ErrInvalidToken = errors.New("invalid token")

// ValidationError 带有面向用户提示的校验错误，errors.Is(err, ErrValidation) 为真
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is 与 ErrValidation 匹配
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// newID 生成9位随机记录ID
func newID() string {
	return rand.String(9)
}
