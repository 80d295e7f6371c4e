package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	APIPort  int            `yaml:"api_port"`
	LogLevel string         `yaml:"log_level"`
	LogFile  LogFileConfig  `yaml:"log_file"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Notify   NotifyConfig   `yaml:"notify"`
	Geetest  GeetestConfig  `yaml:"geetest"`
	Site     SiteConfig     `yaml:"site"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Cron     CronConfig     `yaml:"cron"`
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`    // 单个文件最大大小，单位MB
	MaxBackups int    `yaml:"max_backups"` // 最大保留旧文件数量
	MaxAge     int    `yaml:"max_age"`     // 最大保留天数
	Compress   bool   `yaml:"compress"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // mysql | postgres | sqlite
	DSN      string `yaml:"dsn"`    // 设置后忽略下面的分项
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"db_name"`
}

// RedisConfig Redis配置，Host为空时不启用缓存
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig 管理员认证配置
type AuthConfig struct {
	AdminUsername string        `yaml:"admin_username"`
	AdminPassword string        `yaml:"admin_password"` // 明文或bcrypt哈希
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
}

// NotifyConfig 新留言通知配置
type NotifyConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	From           string `yaml:"from"`
	FromName       string `yaml:"from_name"`
	AdminEmail     string `yaml:"admin_email"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

// GeetestConfig 极验验证配置，CaptchaID为空时不校验
type GeetestConfig struct {
	CaptchaID  string `yaml:"captcha_id"`
	CaptchaKey string `yaml:"captcha_key"`
	APIServer  string `yaml:"api_server"`
}

// SiteConfig 站点配置
type SiteConfig struct {
	BaseURL string `yaml:"base_url"` // 为空时按请求头推断
}

// TracingConfig 链路追踪配置
type TracingConfig struct {
	Exporter    string `yaml:"exporter"` // "" | stdout
	ServiceName string `yaml:"service_name"`
}

// CronConfig 定时任务配置
type CronConfig struct {
	WarmAnnouncements string `yaml:"warm_announcements"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		APIPort:  8080,
		LogLevel: "info",
		LogFile: LogFileConfig{
			Path:       "logs/app.log",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		Database: DatabaseConfig{
			Driver: "mysql",
			Host:   "127.0.0.1",
			Port:   3306,
		},
		Redis: RedisConfig{Port: 6379},
		Auth: AuthConfig{
			AdminUsername: "admin",
			TokenTTL:      7 * 24 * time.Hour,
		},
		Notify:  NotifyConfig{FromName: "FG Blog"},
		Tracing: TracingConfig{ServiceName: "fgblog"},
		Cron:    CronConfig{WarmAnnouncements: "@every 1m"},
	}
}

// Load 加载配置：默认值 < YAML文件 < 环境变量
func Load() (*Config, error) {
	// .env 文件可选
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.Auth.AdminPassword == "" {
		return nil, errors.New("ADMIN_PASSWORD is required")
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setInt(&c.APIPort, "API_PORT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setBool(&c.LogFile.Enabled, "LOG_FILE_ENABLED")
	setString(&c.LogFile.Path, "LOG_FILE_PATH")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.DSN, "DB_DSN")
	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")

	setString(&c.Redis.Host, "REDIS_HOST")
	setInt(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setInt(&c.Redis.DB, "REDIS_DB")

	setString(&c.Auth.AdminUsername, "ADMIN_USERNAME")
	setString(&c.Auth.AdminPassword, "ADMIN_PASSWORD")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Auth.TokenTTL = d
		}
	}

	setString(&c.Notify.SendGridAPIKey, "SENDGRID_API_KEY")
	setString(&c.Notify.From, "NOTIFY_FROM")
	setString(&c.Notify.FromName, "NOTIFY_FROM_NAME")
	setString(&c.Notify.AdminEmail, "NOTIFY_ADMIN_EMAIL")
	setString(&c.Notify.TelegramToken, "TELEGRAM_TOKEN")
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Notify.TelegramChatID = id
		}
	}

	setString(&c.Geetest.CaptchaID, "GEETEST_CAPTCHA_ID")
	setString(&c.Geetest.CaptchaKey, "GEETEST_CAPTCHA_KEY")
	setString(&c.Geetest.APIServer, "GEETEST_API_SERVER")

	setString(&c.Site.BaseURL, "SITE_BASE_URL")
	setString(&c.Tracing.Exporter, "TRACING_EXPORTER")
	setString(&c.Cron.WarmAnnouncements, "CRON_WARM_ANNOUNCEMENTS")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		*dst = v
	}
}
