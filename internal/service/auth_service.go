package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"fgblog/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// Claims 管理员令牌载荷
type Claims struct {
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
	jwt.RegisteredClaims
}

// AuthService 管理员认证服务
type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService 创建认证服务实例，明文密码会在此处哈希
func NewAuthService(cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	hash := []byte(cfg.AdminPassword)
	if _, err := bcrypt.Cost(hash); err != nil {
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("哈希管理员密码失败: %w", err)
		}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		secret:       []byte(cfg.JWTSecret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// WithClock 替换时间来源
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Login 校验管理员凭据并签发令牌
func (s *AuthService) Login(username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := Claims{
		Username:  username,
		Timestamp: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("签发令牌失败: %w", err)
	}
	return token, nil
}

// Verify 解析并校验令牌，支持带 "Bearer " 前缀
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Username != s.username {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
