package api

import (
	"fgblog/config"
	"fgblog/internal/api/admin"
	"fgblog/internal/api/apis"
	"fgblog/internal/api/handler"
	"fgblog/internal/banner"
	"fgblog/internal/middleware"
	"fgblog/internal/repository"
	"fgblog/internal/service"
	"fgblog/pkg/async"
	"fgblog/pkg/geetest"
	"fgblog/pkg/logger"
	"fgblog/pkg/notify"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps 路由及服务的外部依赖
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       *sqlx.DB
	Redis    *redis.Client // 为 nil 时不启用缓存，横幅关闭记录保存在进程内
	Worker   *async.Worker
	Notifier notify.Notifier
	Captcha  *geetest.Client
}

// Services 业务服务集合
type Services struct {
	Posts         *service.PostService
	Categories    *service.CategoryService
	Contacts      *service.ContactService
	Announcements *service.AnnouncementService
	Auth          *service.AuthService
	Dashboard     *service.DashboardService
}

// NewServices 初始化存储库和服务
func NewServices(deps Deps) (*Services, error) {
	// 初始化存储库
	postRepo := repository.NewPostRepository(deps.DB)
	categoryRepo := repository.NewCategoryRepository(deps.DB)
	contactRepo := repository.NewContactRepository(deps.DB)
	announcementRepo := repository.NewAnnouncementRepository(deps.DB)
	statsRepo := repository.NewStatsRepository(deps.DB)

	var dismissalStore banner.KeyValue = banner.NewMemoryStore()
	if deps.Redis != nil {
		dismissalStore = banner.NewRedisStore(deps.Redis)
	}

	authService, err := service.NewAuthService(deps.Config.Auth)
	if err != nil {
		return nil, err
	}

	return &Services{
		Posts:         service.NewPostService(postRepo, deps.Redis, deps.Logger),
		Categories:    service.NewCategoryService(categoryRepo, deps.Redis, deps.Logger),
		Contacts:      service.NewContactService(contactRepo, deps.Worker, deps.Notifier, deps.Captcha, deps.Logger),
		Announcements: service.NewAnnouncementService(announcementRepo, banner.NewDismissals(dismissalStore), deps.Redis, deps.Logger),
		Auth:          authService,
		Dashboard:     service.NewDashboardService(statsRepo, postRepo, deps.Logger),
	}, nil
}

// SetupRouter 设置API路由
func SetupRouter(deps Deps, services *Services) *gin.Engine {
	// 创建Gin引擎
	if deps.Config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 使用中间件
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(otelgin.Middleware(deps.Config.Tracing.ServiceName))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.CORS())

	// 初始化处理器
	public := apis.Handlers{
		Auth:          handler.NewAuthHandler(services.Auth, deps.Logger),
		Posts:         handler.NewPostHandler(services.Posts, deps.Logger),
		Categories:    handler.NewCategoryHandler(services.Categories, deps.Logger),
		Contacts:      handler.NewContactHandler(services.Contacts, deps.Logger),
		Announcements: handler.NewAnnouncementHandler(services.Announcements, deps.Logger),
		Sitemap:       handler.NewSitemapHandler(services.Posts, deps.Config.Site.BaseURL, deps.Logger),
		System:        handler.NewSystemHandler(deps.DB, deps.Redis, deps.Logger),
	}

	// 初始化管理员处理器
	adminHandlers := admin.Handlers{
		Posts:         admin.NewPostAdminHandler(services.Posts, deps.Logger),
		Categories:    admin.NewCategoryAdminHandler(services.Categories, deps.Logger),
		Contacts:      admin.NewContactAdminHandler(services.Contacts, deps.Logger),
		Announcements: admin.NewAnnouncementAdminHandler(services.Announcements, deps.Logger),
		Dashboard:     admin.NewDashboardHandler(services.Dashboard, deps.Logger),
	}

	// 健康检查
	router.GET("/health", public.System.Health)

	// API版本v1
	v1 := router.Group("/api/v1")
	apis.RegisterPublicRoutes(v1, public)

	// 注册管理员API路由
	adminRouter := v1.Group("/admin")
	adminRouter.Use(middleware.AdminAuth(services.Auth))
	admin.RegisterAdminRoutes(adminRouter, adminHandlers)

	return router
}
